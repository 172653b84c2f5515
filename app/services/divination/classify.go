package divination

import "strings"

// Category 问事类别
type Category struct {
	Code     string
	Name     string
	Emoji    string
	Keywords []string // 为空表示兜底类别
}

// Categories 类别表，顺序固定，自动分类按先匹配者优先
// "other" 无关键词，作为兜底
var Categories = []Category{
	{Code: "love", Name: "感情", Emoji: "💕",
		Keywords: []string{"感情", "伴侶", "喜歡", "愛", "結婚", "婚姻", "桃花", "告白", "分手"}},
	{Code: "career", Name: "事業", Emoji: "💼",
		Keywords: []string{"工作", "事業", "職場", "公司", "升遷", "面試", "離職"}},
	{Code: "wealth", Name: "財運", Emoji: "💰",
		Keywords: []string{"錢", "財", "投資", "股票", "賺", "收入", "創業", "生意"}},
	{Code: "health", Name: "健康", Emoji: "🌿",
		Keywords: []string{"健康", "身體", "生病", "手術", "看病", "懷孕"}},
	{Code: "study", Name: "學業", Emoji: "📚",
		Keywords: []string{"考試", "學業", "讀書", "學校", "成績", "證照"}},
	{Code: "property", Name: "置產", Emoji: "🏠",
		Keywords: []string{"買房", "搬家", "租房", "房子", "置產"}},
	{Code: "cooperation", Name: "合作", Emoji: "🤝",
		Keywords: []string{"合作", "合夥", "談判", "簽約"}},
	{Code: "other", Name: "其他", Emoji: "🔮"},
}

// Classify 按关键词自动判断问题类别
// 逐类别顺序匹配，任一关键词命中即返回；全不命中返回兜底类别
func Classify(question string) string {
	text := strings.ToLower(question)
	for _, c := range Categories {
		for _, kw := range c.Keywords {
			if strings.Contains(text, kw) {
				return c.Code
			}
		}
	}
	return "other"
}

// CategoryByCode 按编码查找类别，未知编码返回兜底类别
func CategoryByCode(code string) Category {
	for _, c := range Categories {
		if c.Code == code {
			return c
		}
	}
	return Categories[len(Categories)-1]
}
