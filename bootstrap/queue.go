package bootstrap

import (
	"time"

	"yizhan/app/repositories"
	"yizhan/pkg/config"
	"yizhan/pkg/logger"
	"yizhan/pkg/queue"
	"yizhan/pkg/redis"
)

// SetupQueue 启动占卜记录落库工作器组
// 返回队列服务供出卦流程入队使用
func SetupQueue() *queue.QueueService {
	if redis.Manager == nil {
		logger.ErrorString("Queue", "Setup", "Redis manager not initialized")
		return nil
	}

	queueService := queue.NewQueueService()

	worker := queue.NewWorker(queueService, repositories.NewRecordRepository(), queue.WorkerConfig{
		WorkerCount:     config.GetInt("queue.worker_count", 4),
		MaxRetries:      config.GetInt("queue.retry_times", 3),
		RetryInterval:   time.Duration(config.GetInt("queue.retry_delay", 1)) * time.Second,
		ShutdownTimeout: 30 * time.Second,
		BatchSize:       10,
	})

	go worker.Start()

	logger.InfoString("Queue", "Setup", "队列服务启动成功")
	return queueService
}
