package routes

import (
	"github.com/gin-gonic/gin"

	"yizhan/app/http/controllers/api/v1/divination"
	"yizhan/app/http/middlewares"
)

// 路由限流配置
const (
	// 全局限流：每小时每IP 30000 请求
	GlobalRateLimit = "30000-H"
	// webhook 限流：每分钟每IP 600 请求（LINE 平台来源集中，上限放宽）
	WebhookRateLimit = "600-M"
)

// RegisterAPIRoutes 注册所有 API 路由
// 对外只暴露 LINE 事件入口与健康检查，占卜记录只写不读
func RegisterAPIRoutes(r *gin.Engine, wc *divination.WebhookController) {
	v1 := r.Group("/v1")

	v1.Use(
		middlewares.Recovery(),
		middlewares.SecurityHeaders(),
		middlewares.LimitIP(GlobalRateLimit),
		middlewares.Cors(),
	)

	// LINE 事件入口
	// POST /v1/webhook
	v1.POST("/webhook",
		middlewares.LimitIP(WebhookRateLimit),
		wc.Webhook,
	)

	// 健康检查
	// GET /v1/health
	v1.GET("/health", wc.HealthCheck)
}
