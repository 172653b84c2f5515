package config

import "yizhan/pkg/config"

func init() {
	config.Add("app", func() map[string]interface{} {
		return map[string]interface{}{

			// 应用名称
			"name": config.Env("APP_NAME", "Yizhan"),

			// 当前环境，用以区分多环境，一般为 local, stage, production, test
			"env": config.Env("APP_ENV", "production"),

			// 是否进入调试模式
			"debug": config.Env("APP_DEBUG", false),

			// 应用服务端口
			"port": config.Env("APP_PORT", "3000"),

			// 设置时区，占卜的"当日"与时辰判定都依赖这里
			"timezone": config.Env("TIMEZONE", "Asia/Taipei"),

			// 免费用户每日问事上限
			"free_daily_limit": config.Env("FREE_DAILY_LIMIT", 3),

			// 废弃会话的保留时长（分钟）
			"session_ttl_minutes": config.Env("SESSION_TTL_MINUTES", 30),

			// 摇卦仪式展示的太极图
			"taiji_image_url": config.Env("TAIJI_IMAGE_URL", ""),
		}
	})
}
