package requests

import "testing"

func TestParseWebhook(t *testing.T) {
	body := []byte(`{
		"destination": "Udeadbeef",
		"events": [
			{"type": "message", "replyToken": "rt", "source": {"userId": "U1"},
			 "message": {"type": "text", "text": "問事"}},
			{"type": "postback", "replyToken": "rt2", "source": {"userId": "U1"},
			 "postback": {"data": "category:love"}}
		]
	}`)

	req, err := ParseWebhook(body)
	if err != nil {
		t.Fatal(err)
	}
	if req.Destination != "Udeadbeef" {
		t.Errorf("Destination = %s", req.Destination)
	}
	if len(req.Events) != 2 {
		t.Fatalf("len(Events) = %d, want 2", len(req.Events))
	}
	if req.Events[0].Message.Text != "問事" || req.Events[0].Source.UserID != "U1" {
		t.Errorf("message 事件解析不正确: %+v", req.Events[0])
	}
	if req.Events[1].Postback.Data != "category:love" {
		t.Errorf("postback 事件解析不正确: %+v", req.Events[1])
	}
}

func TestParseWebhookEmptyEvents(t *testing.T) {
	// LINE 平台的连通性验证会发送空事件列表，应视为合法请求
	req, err := ParseWebhook([]byte(`{"destination": "Udeadbeef", "events": []}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(req.Events) != 0 {
		t.Errorf("len(Events) = %d, want 0", len(req.Events))
	}
}

func TestParseWebhookInvalid(t *testing.T) {
	if _, err := ParseWebhook([]byte(`not json`)); err == nil {
		t.Error("非法 JSON 应返回错误")
	}
	if _, err := ParseWebhook([]byte(`{"events": []}`)); err == nil {
		t.Error("缺少 destination 应返回验证错误")
	}
}
