package line

// ReplyRequest LINE 回复消息请求体
type ReplyRequest struct {
	ReplyToken string        `json:"replyToken"`
	Messages   []ReplyMessage `json:"messages"`
}

// ReplyMessage LINE 消息对象，按 type 区分文本与图片
type ReplyMessage struct {
	Type               string      `json:"type"`
	Text               string      `json:"text,omitempty"`
	OriginalContentURL string      `json:"originalContentUrl,omitempty"`
	PreviewImageURL    string      `json:"previewImageUrl,omitempty"`
	QuickReply         *QuickReply `json:"quickReply,omitempty"`
}

// QuickReply 快捷回复容器
type QuickReply struct {
	Items []QuickReplyItem `json:"items"`
}

// QuickReplyItem 快捷回复按钮
type QuickReplyItem struct {
	Type   string         `json:"type"`
	Action PostbackAction `json:"action"`
}

// PostbackAction 点击后回传 Data 的按钮动作
type PostbackAction struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Data  string `json:"data"`
}

// ErrorResponse LINE API 错误响应
type ErrorResponse struct {
	Message string `json:"message"`
}

// Event 入站 webhook 事件
type Event struct {
	Type       string `json:"type"` // follow / message / postback
	ReplyToken string `json:"replyToken"`
	Source     struct {
		UserID string `json:"userId"`
	} `json:"source"`
	Message struct {
		Type string `json:"type"` // 只处理 text
		Text string `json:"text"`
	} `json:"message"`
	Postback struct {
		Data string `json:"data"`
	} `json:"postback"`
}
