package line

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"yizhan/app/services/divination"
)

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestNewClientRequiresCredentials(t *testing.T) {
	if c := NewClient(nil); c != nil {
		t.Error("nil 配置应返回 nil")
	}
	if c := NewClient(&Config{ChannelSecret: "s"}); c != nil {
		t.Error("缺少访问令牌应返回 nil")
	}
	if c := NewClient(&Config{ChannelSecret: "s", ChannelToken: "t"}); c == nil {
		t.Error("配置完整应返回客户端")
	}
}

func TestValidateSignature(t *testing.T) {
	c := NewClient(&Config{ChannelSecret: "secret", ChannelToken: "token"})
	body := []byte(`{"destination":"xxx","events":[]}`)

	if !c.ValidateSignature(body, signBody("secret", body)) {
		t.Error("正确签名应通过校验")
	}
	if c.ValidateSignature(body, signBody("wrong", body)) {
		t.Error("错误密钥的签名不应通过")
	}
	if c.ValidateSignature(body, "") {
		t.Error("空签名不应通过")
	}
	if c.ValidateSignature([]byte("tampered"), signBody("secret", body)) {
		t.Error("被篡改的请求体不应通过")
	}
}

func TestConvertMessages(t *testing.T) {
	msgs := convertMessages([]divination.Message{
		divination.Image("https://example.com/taiji.png"),
		divination.Text("hello"),
		divination.TextWithQuickReplies("pick", []divination.QuickReplyAction{
			{Label: "💼 事業", Data: "category:career"},
		}),
	})

	if len(msgs) != 3 {
		t.Fatalf("len = %d, want 3", len(msgs))
	}
	if msgs[0].Type != "image" || msgs[0].OriginalContentURL == "" || msgs[0].PreviewImageURL == "" {
		t.Errorf("图片消息转换不完整: %+v", msgs[0])
	}
	if msgs[1].Type != "text" || msgs[1].Text != "hello" || msgs[1].QuickReply != nil {
		t.Errorf("文本消息转换不正确: %+v", msgs[1])
	}
	qr := msgs[2].QuickReply
	if qr == nil || len(qr.Items) != 1 {
		t.Fatalf("快捷回复转换缺失: %+v", msgs[2])
	}
	action := qr.Items[0].Action
	if action.Type != "postback" || action.Data != "category:career" {
		t.Errorf("快捷回复动作不正确: %+v", action)
	}
}
