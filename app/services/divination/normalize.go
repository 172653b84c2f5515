package divination

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
)

// punctuations 归一化时剔除的标点、括号字符集
var punctuations = map[rune]bool{
	'，': true, '。': true, '！': true, '？': true, '、': true,
	'；': true, '：': true, '“': true, '”': true, '‘': true, '’': true,
	'「': true, '」': true, '【': true, '】': true, '（': true, '）': true,
	'(': true, ')': true, '[': true, ']': true, '{': true, '}': true,
	',': true, '.': true, '!': true, '?': true, ';': true, ':': true,
}

// synonymRule 同义替换规则
type synonymRule struct {
	old string
	new string
}

// synonymRules 同义折叠规则表，顺序敏感
// 后面的规则作用在前面规则的输出之上：
// 实词折叠在前，语气词清除在后（例如"嗎"必须晚于"好嗎"，
// 否则"好嗎"会被先削成"好"而漏删）
var synonymRules = []synonymRule{
	// 伴侣称谓
	{"老公", "伴侶"}, {"老婆", "伴侶"},
	{"男朋友", "伴侶"}, {"女朋友", "伴侶"},
	{"男友", "伴侶"}, {"女友", "伴侶"},
	{"對象", "伴侶"}, {"另一半", "伴侶"},
	// 事业
	{"工作", "事業"}, {"職場", "事業"}, {"公司", "事業"}, {"上班", "事業"},
	{"老闆", "主管"}, {"上司", "主管"}, {"領導", "主管"},
	// 财
	{"財運", "財"}, {"財富", "財"}, {"錢", "財"},
	{"股票", "投資"}, {"基金", "投資"}, {"理財", "投資"},
	// 语气词、填充语，折叠为空
	{"好不好", ""}, {"好嗎", ""}, {"可以嗎", ""}, {"會嗎", ""}, {"嗎", ""},
	{"請問", ""}, {"想問", ""}, {"想知道", ""},
}

// Normalize 问题归一化
// 依次执行：小写折叠、剔除标点与空白、按固定顺序做同义替换
// 归一化是确定性的；空输入归一化为空串，不是错误
func Normalize(question string) string {
	if question == "" {
		return ""
	}

	text := strings.ToLower(question)

	// 剔除标点与空白
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsSpace(r) || punctuations[r] {
			continue
		}
		b.WriteRune(r)
	}
	text = b.String()

	// 顺序敏感的同义替换
	for _, rule := range synonymRules {
		text = strings.ReplaceAll(text, rule.old, rule.new)
	}
	return text
}

// Signature 问题签名
// 将用户、归一化问题、民用日期拼合后做 SHA-256 摘要，
// 作为 (用户, 问题, 日期) 的去重键。纯函数，不做任何 I/O
func Signature(userID, question, date string) string {
	normalized := Normalize(question)
	combined := fmt.Sprintf("%s:%s:%s", userID, normalized, date)
	sum := sha256.Sum256([]byte(combined))
	return hex.EncodeToString(sum[:])
}
