// Package divination LINE webhook 入口控制器
package divination

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"

	"yizhan/app/requests"
	divsvc "yizhan/app/services/divination"
	"yizhan/pkg/line"
	"yizhan/pkg/logger"
	"yizhan/pkg/response"
)

// WebhookController 处理 LINE 平台推送的事件
type WebhookController struct {
	engine     *divsvc.Engine
	lineClient *line.Client
}

// NewWebhookController 创建控制器实例
func NewWebhookController(engine *divsvc.Engine, client *line.Client) *WebhookController {
	return &WebhookController{
		engine:     engine,
		lineClient: client,
	}
}

// Webhook 接收 LINE 事件
// 签名校验失败一律 400；引擎处理失败返回 500 交由平台重试
func (wc *WebhookController) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Abort400(c, "读取请求体失败")
		return
	}

	signature := c.GetHeader("X-Line-Signature")
	if !wc.lineClient.ValidateSignature(body, signature) {
		logger.WarnString("Webhook", "Signature", "签名校验失败 ip="+c.ClientIP())
		response.Abort400(c, "签名校验失败")
		return
	}

	req, err := requests.ParseWebhook(body)
	if err != nil {
		response.BadRequest(c, err, "webhook 请求格式错误")
		return
	}

	ctx := c.Request.Context()
	for _, event := range req.Events {
		messages, err := wc.dispatch(ctx, event)
		if err != nil {
			logger.ErrorString("Webhook", "Dispatch", err.Error())
			response.Abort500(c, "事件处理失败")
			return
		}
		if len(messages) == 0 || event.ReplyToken == "" {
			continue
		}
		if err := wc.lineClient.Reply(ctx, event.ReplyToken, messages); err != nil {
			// 回复令牌一次性有效，失败无法重试，只记录
			logger.ErrorString("Webhook", "Reply", err.Error())
		}
	}

	response.Data(c, gin.H{"message": "ok"})
}

// dispatch 按事件类型分发到会话引擎
func (wc *WebhookController) dispatch(ctx context.Context, event line.Event) ([]divsvc.Message, error) {
	userID := event.Source.UserID
	if userID == "" {
		return nil, nil
	}

	switch event.Type {
	case "follow":
		return wc.engine.OnFollow(ctx, userID)
	case "message":
		if event.Message.Type != "text" {
			return nil, nil
		}
		return wc.engine.OnText(ctx, userID, event.Message.Text)
	case "postback":
		return wc.engine.OnPostback(ctx, userID, event.Postback.Data)
	}
	return nil, nil
}

// HealthCheck 健康检查端点，固定返回 OK
// 占卜核心流程走 gorm，记录队列本身就是可降级的旁路，
// 不把依赖探测挂在存活检查上
func (wc *WebhookController) HealthCheck(c *gin.Context) {
	response.Data(c, gin.H{"status": "ok"})
}
