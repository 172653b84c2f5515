// Package crystal 开运水晶推荐
package crystal

import "fmt"

// Crystal 水晶条目
type Crystal struct {
	Name   string // 水晶名
	Effect string // 功效说明
}

// byElement 五行对应的主推水晶
var byElement = map[string]Crystal{
	"金": {Name: "白水晶", Effect: "淨化思緒，穩定心神"},
	"木": {Name: "綠幽靈", Effect: "招正財，助事業成長"},
	"水": {Name: "海藍寶", Effect: "安定情緒，增強溝通"},
	"火": {Name: "紅瑪瑙", Effect: "激發行動力，提升熱情"},
	"土": {Name: "黃水晶", Effect: "聚財納福，增強自信"},
}

// byCategory 特定问事类别的加强水晶，优先于五行推荐
var byCategory = map[string]Crystal{
	"love":   {Name: "粉晶", Effect: "招桃花，潤滑人際感情"},
	"wealth": {Name: "黃水晶", Effect: "聚財納福，旺偏財運"},
	"career": {Name: "虎眼石", Effect: "堅定意志，貴人相助"},
}

// protective 凶卦改配护身水晶
var protective = Crystal{Name: "黑曜石", Effect: "辟邪擋煞，化解負能量"}

// cautionFortunes 需要改配护身水晶的吉凶等级
var cautionFortunes = map[string]bool{
	"小凶": true,
	"大凶": true,
}

// Recommend 按卦象五行、问事类别与吉凶等级推荐水晶
// 凶卦一律改推护身水晶，其次类别加强，最后按五行
func Recommend(element, category, fortune string) Crystal {
	if cautionFortunes[fortune] {
		return protective
	}
	if c, ok := byCategory[category]; ok {
		return c
	}
	if c, ok := byElement[element]; ok {
		return c
	}
	return byElement["金"]
}

// FormatBasic 渲染水晶推荐行
func FormatBasic(c Crystal) string {
	return fmt.Sprintf("💎 開運水晶：%s\n　 %s", c.Name, c.Effect)
}
