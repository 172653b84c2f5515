package requests

import (
	"encoding/json"
	"fmt"

	"github.com/thedevsaddam/govalidator"

	"yizhan/pkg/line"
)

// WebhookRequest LINE webhook 入站请求体
type WebhookRequest struct {
	Destination string       `json:"destination" valid:"destination"`
	Events      []line.Event `json:"events"`
}

// ParseWebhook 解析并验证 webhook 请求体
// 签名校验在控制器对原始字节完成，这里只负责结构与字段验证
func ParseWebhook(body []byte) (*WebhookRequest, error) {
	var req WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("解析 webhook 请求失败: %w", err)
	}

	rules := govalidator.MapData{
		"destination": []string{"required"},
	}
	messages := govalidator.MapData{
		"destination": []string{"required:destination 不能为空"},
	}

	if err := ValidateStruct(&req, rules, messages); err != nil {
		return nil, err
	}
	return &req, nil
}
