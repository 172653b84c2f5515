// Package line 与 LINE Messaging API 的交互
package line

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"yizhan/app/services/divination"
	"yizhan/pkg/logger"
)

// 回复接口地址
const defaultAPIBase = "https://api.line.me"

// Config 客户端配置
type Config struct {
	ChannelSecret string        // 签名校验密钥
	ChannelToken  string        // 调用回复接口的访问令牌
	APIBase       string        // 接口地址，留空使用官方地址
	Timeout       time.Duration // 单次请求超时
	MaxRetries    int           // 请求重试次数
}

// Client LINE 回复客户端
type Client struct {
	channelSecret string
	client        *resty.Client
}

// NewClient 创建客户端实例，配置不完整时返回 nil
func NewClient(config *Config) *Client {
	if config == nil || config.ChannelSecret == "" || config.ChannelToken == "" {
		return nil
	}

	base := config.APIBase
	if base == "" {
		base = defaultAPIBase
	}

	restyClient := resty.New().
		SetBaseURL(base).
		SetTimeout(config.Timeout).
		SetRetryCount(config.MaxRetries).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(3 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(config.ChannelToken)

	return &Client{
		channelSecret: config.ChannelSecret,
		client:        restyClient,
	}
}

// ValidateSignature 校验 webhook 签名
// LINE 对请求体做 HMAC-SHA256 后 base64，与 X-Line-Signature 头比对
func (c *Client) ValidateSignature(body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.channelSecret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Reply 回复消息
// 将引擎产出的内容块序列转换为 LINE 消息对象后一次性投递
func (c *Client) Reply(ctx context.Context, replyToken string, messages []divination.Message) error {
	if len(messages) == 0 {
		return nil
	}

	req := ReplyRequest{
		ReplyToken: replyToken,
		Messages:   convertMessages(messages),
	}

	var errResp ErrorResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetError(&errResp).
		Post("/v2/bot/message/reply")
	if err != nil {
		return fmt.Errorf("回复消息请求失败: %w", err)
	}
	if resp.IsError() {
		logger.ErrorString("LINE", "Reply",
			fmt.Sprintf("status=%d message=%s", resp.StatusCode(), errResp.Message))
		return fmt.Errorf("回复消息被拒绝: %s", errResp.Message)
	}
	return nil
}

// convertMessages 引擎内容块转 LINE 消息对象
func convertMessages(messages []divination.Message) []ReplyMessage {
	out := make([]ReplyMessage, 0, len(messages))
	for _, m := range messages {
		switch m.Type {
		case divination.MessageImage:
			out = append(out, ReplyMessage{
				Type:               "image",
				OriginalContentURL: m.ImageURL,
				PreviewImageURL:    m.ImageURL,
			})
		default:
			msg := ReplyMessage{
				Type: "text",
				Text: m.Text,
			}
			if len(m.QuickReplies) > 0 {
				items := make([]QuickReplyItem, 0, len(m.QuickReplies))
				for _, a := range m.QuickReplies {
					items = append(items, QuickReplyItem{
						Type: "action",
						Action: PostbackAction{
							Type:  "postback",
							Label: a.Label,
							Data:  a.Data,
						},
					})
				}
				msg.QuickReply = &QuickReply{Items: items}
			}
			out = append(out, msg)
		}
	}
	return out
}
