package config

import "yizhan/pkg/config"

func init() {
	config.Add("queue", func() map[string]interface{} {
		return map[string]interface{}{
			// 入队限流：每秒任务数与突发上限
			"rate_limit": config.Env("QUEUE_RATE_LIMIT", 100),
			"rate_burst": config.Env("QUEUE_RATE_BURST", 200),

			// 落库工作器
			"worker_count": config.Env("QUEUE_WORKER_COUNT", 4),
			"retry_times":  config.Env("QUEUE_RETRY_TIMES", 3),
			"retry_delay":  config.Env("QUEUE_RETRY_DELAY", 1),
		}
	})
}
