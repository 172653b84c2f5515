package hexagram

// Trigram 八卦之一卦
// Lines 为自下而上的三爻，true 为阳爻（⚊），false 为阴爻（⚋）
type Trigram struct {
	Name      string  // 卦名，如 乾
	Symbol    string  // 卦符，如 ☰
	Nature    string  // 卦象，如 天
	Element   string  // 五行属性
	Direction string  // 后天八卦方位
	Lines     [3]bool // 三爻，初爻在前
}

// Trigrams 八个基础卦，顺序固定，摇卦时按下标随机选取
var Trigrams = [8]*Trigram{
	{Name: "乾", Symbol: "☰", Nature: "天", Element: "金", Direction: "西北", Lines: [3]bool{true, true, true}},
	{Name: "兌", Symbol: "☱", Nature: "澤", Element: "金", Direction: "西", Lines: [3]bool{true, true, false}},
	{Name: "離", Symbol: "☲", Nature: "火", Element: "火", Direction: "南", Lines: [3]bool{true, false, true}},
	{Name: "震", Symbol: "☳", Nature: "雷", Element: "木", Direction: "東", Lines: [3]bool{true, false, false}},
	{Name: "巽", Symbol: "☴", Nature: "風", Element: "木", Direction: "東南", Lines: [3]bool{false, true, true}},
	{Name: "坎", Symbol: "☵", Nature: "水", Element: "水", Direction: "北", Lines: [3]bool{false, true, false}},
	{Name: "艮", Symbol: "☶", Nature: "山", Element: "土", Direction: "東北", Lines: [3]bool{false, false, true}},
	{Name: "坤", Symbol: "☷", Nature: "地", Element: "土", Direction: "西南", Lines: [3]bool{false, false, false}},
}

// trigramByName 按卦名索引
var trigramByName = func() map[string]*Trigram {
	m := make(map[string]*Trigram, len(Trigrams))
	for _, t := range Trigrams {
		m[t.Name] = t
	}
	return m
}()

// GetTrigram 按卦名获取基础卦，未知卦名返回 nil
func GetTrigram(name string) *Trigram {
	return trigramByName[name]
}

// YaoSymbol 爻的显示符号
func YaoSymbol(yang bool) string {
	if yang {
		return "⚊"
	}
	return "⚋"
}
