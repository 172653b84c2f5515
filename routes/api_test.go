package routes

import (
	"testing"

	"github.com/gin-gonic/gin"

	"yizhan/app/http/controllers/api/v1/divination"
)

// 对外只暴露 webhook 与健康检查；占卜记录只写不读，
// 绝不提供按用户 ID 翻阅提问历史的查询面
func TestRegisterAPIRoutesSurface(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterAPIRoutes(r, divination.NewWebhookController(nil, nil))

	got := make(map[string]bool, len(r.Routes()))
	for _, route := range r.Routes() {
		got[route.Method+" "+route.Path] = true
	}

	want := []string{
		"POST /v1/webhook",
		"GET /v1/health",
	}
	for _, w := range want {
		if !got[w] {
			t.Errorf("缺少路由 %s，实际 %v", w, got)
		}
	}
	if len(got) != len(want) {
		t.Errorf("只应注册 %d 条路由，实际 %d: %v", len(want), len(got), got)
	}
}
