package divination

// MessageType 出站消息内容块类型
type MessageType string

const (
	MessageText  MessageType = "text"
	MessageImage MessageType = "image"
)

// QuickReplyAction 快捷回复按钮，点击后以 postback 形式回传 Data
type QuickReplyAction struct {
	Label string
	Data  string
}

// Message 出站消息内容块
// 引擎只负责产出有序的内容块序列，投递由传输层完成
type Message struct {
	Type         MessageType
	Text         string
	ImageURL     string
	QuickReplies []QuickReplyAction
}

// Text 构造纯文本消息
func Text(text string) Message {
	return Message{Type: MessageText, Text: text}
}

// TextWithQuickReplies 构造带快捷回复的文本消息
func TextWithQuickReplies(text string, actions []QuickReplyAction) Message {
	return Message{Type: MessageText, Text: text, QuickReplies: actions}
}

// Image 构造图片消息
func Image(url string) Message {
	return Message{Type: MessageImage, ImageURL: url}
}
