// Package shichen 十二时辰静态数据与五行加成
package shichen

import "fmt"

// Slot 时辰，两小时为一辰
type Slot struct {
	Name        string // 时辰名，如 子時
	StartHour   int    // 起始整点（含）
	EndHour     int    // 结束整点（不含），跨日时小于 StartHour
	Element     string // 五行属性
	Direction   string // 方位
	Description string // 时辰寄语
}

// Slots 十二时辰，子时跨日（23 点至次日 1 点）
var Slots = [12]Slot{
	{Name: "子時", StartHour: 23, EndHour: 1, Element: "水", Direction: "北", Description: "夜深人靜，宜靜思"},
	{Name: "丑時", StartHour: 1, EndHour: 3, Element: "土", Direction: "東北", Description: "萬物休息，宜養精蓄銳"},
	{Name: "寅時", StartHour: 3, EndHour: 5, Element: "木", Direction: "東北", Description: "陽氣初生，新的開始"},
	{Name: "卯時", StartHour: 5, EndHour: 7, Element: "木", Direction: "東", Description: "日出東方，萬物甦醒"},
	{Name: "辰時", StartHour: 7, EndHour: 9, Element: "土", Direction: "東南", Description: "食時，一日之計"},
	{Name: "巳時", StartHour: 9, EndHour: 11, Element: "火", Direction: "東南", Description: "日正當中，精力充沛"},
	{Name: "午時", StartHour: 11, EndHour: 13, Element: "火", Direction: "南", Description: "日中，陽氣最盛"},
	{Name: "未時", StartHour: 13, EndHour: 15, Element: "土", Direction: "西南", Description: "日昃，宜休息"},
	{Name: "申時", StartHour: 15, EndHour: 17, Element: "金", Direction: "西南", Description: "哺時，事業運佳"},
	{Name: "酉時", StartHour: 17, EndHour: 19, Element: "金", Direction: "西", Description: "日入，宜社交"},
	{Name: "戌時", StartHour: 19, EndHour: 21, Element: "土", Direction: "西北", Description: "黃昏，宜放鬆"},
	{Name: "亥時", StartHour: 21, EndHour: 23, Element: "水", Direction: "西北", Description: "人定，宜沉思"},
}

// relation 五行生克关系表
// 每个五行对应：所生、生我、所克、克我
type relation struct {
	generates   string
	generatedBy string
	overcomes   string
	overcomeBy  string
}

var relations = map[string]relation{
	"金": {generates: "水", generatedBy: "土", overcomes: "木", overcomeBy: "火"},
	"木": {generates: "火", generatedBy: "水", overcomes: "土", overcomeBy: "金"},
	"水": {generates: "木", generatedBy: "金", overcomes: "火", overcomeBy: "土"},
	"火": {generates: "土", generatedBy: "木", overcomes: "金", overcomeBy: "水"},
	"土": {generates: "金", generatedBy: "火", overcomes: "水", overcomeBy: "木"},
}

// ForHour 按整点小时解析所属时辰
func ForHour(hour int) Slot {
	for _, s := range Slots {
		if s.StartHour > s.EndHour {
			// 跨日时辰
			if hour >= s.StartHour || hour < s.EndHour {
				return s
			}
		} else if hour >= s.StartHour && hour < s.EndHour {
			return s
		}
	}
	// hour 取值 0-23 时必然命中，保底返回子时
	return Slots[0]
}

// Bonus 时辰与卦象五行的生克加成
type Bonus struct {
	Kind        string // 比和 / 相生 / 相剋 / 無
	Score       int    // 加成分值
	Description string
}

// BonusFor 计算时辰五行对卦象五行的加成
func BonusFor(slotElement, hexagramElement string) Bonus {
	if slotElement == hexagramElement {
		return Bonus{Kind: "比和", Score: 10,
			Description: fmt.Sprintf("時辰與卦象同屬%s，運勢加強！", slotElement)}
	}
	rel := relations[slotElement]
	switch hexagramElement {
	case rel.generates:
		return Bonus{Kind: "相生", Score: 5,
			Description: fmt.Sprintf("%s生%s，事半功倍。", slotElement, hexagramElement)}
	case rel.generatedBy:
		return Bonus{Kind: "相生", Score: 8,
			Description: fmt.Sprintf("%s生%s，運勢提升。", hexagramElement, slotElement)}
	case rel.overcomes:
		return Bonus{Kind: "相剋", Score: -5,
			Description: fmt.Sprintf("%s剋%s，宜謹慎。", slotElement, hexagramElement)}
	case rel.overcomeBy:
		return Bonus{Kind: "相剋", Score: -8,
			Description: fmt.Sprintf("%s剋%s，建議擇時再行。", hexagramElement, slotElement)}
	}
	return Bonus{Kind: "無", Score: 0, Description: "時辰與卦象無特殊關係。"}
}

// FormatTip 渲染时辰提示，附在解读结果之后
func FormatTip(s Slot, hexagramElement string) string {
	bonus := BonusFor(s.Element, hexagramElement)
	return fmt.Sprintf("⏰ 時辰：%s（%s）\n📍 方位：%s\n💫 %s",
		s.Name, s.Element, s.Direction, bonus.Description)
}
