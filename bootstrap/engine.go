package bootstrap

import (
	"time"

	controller "yizhan/app/http/controllers/api/v1/divination"
	"yizhan/app/repositories"
	"yizhan/app/services/divination"
	"yizhan/pkg/config"
	"yizhan/pkg/line"
	"yizhan/pkg/logger"
	"yizhan/pkg/queue"
)

// SetupEngine 装配占卜引擎与 LINE 客户端，返回 webhook 控制器
func SetupEngine(queueService *queue.QueueService) *controller.WebhookController {
	lineClient := line.NewClient(&line.Config{
		ChannelSecret: config.GetString("line.channel_secret"),
		ChannelToken:  config.GetString("line.channel_token"),
		APIBase:       config.GetString("line.api_base"),
		Timeout:       time.Duration(config.GetInt("line.timeout", 10)) * time.Second,
		MaxRetries:    config.GetInt("line.max_retries", 2),
	})
	if lineClient == nil {
		logger.FatalString("Engine", "Setup", "LINE 渠道配置不完整，请检查 line.channel_secret / line.channel_token")
	}

	sessionTTL := time.Duration(config.GetInt("app.session_ttl_minutes", 30)) * time.Minute

	engine := divination.NewEngine(divination.Config{
		Users:          repositories.NewUserRepository(),
		Usage:          repositories.NewUsageRepository(),
		Locks:          repositories.NewLockRepository(),
		Recorder:       queueService,
		Sessions:       divination.NewMemoryStore(sessionTTL),
		Clock:          divination.NewClock(),
		FreeDailyLimit: config.GetInt("app.free_daily_limit", 3),
		TaijiImageURL:  config.GetString("app.taiji_image_url"),
	})

	return controller.NewWebhookController(engine, lineClient)
}
