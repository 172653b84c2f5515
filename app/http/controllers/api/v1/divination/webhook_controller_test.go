package divination

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// 健康检查固定返回 OK，不探测任何下游依赖：
// 记录队列是可降级的旁路，redis 故障不应把存活检查打挂
func TestHealthCheckAlwaysOK(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/health", nil)

	// 完全不装配引擎、LINE 客户端与队列，健康检查也必须成功
	wc := NewWebhookController(nil, nil)
	wc.HealthCheck(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("body = %s, 应包含固定的 ok", w.Body.String())
	}
}
