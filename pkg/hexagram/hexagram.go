// Package hexagram 六十四卦静态数据与摇卦逻辑
package hexagram

import (
	"fmt"
	"math/rand"
)

// Fortune 吉凶等级
type Fortune string

const (
	GreatFortune Fortune = "大吉"
	Fortunate    Fortune = "中吉"
	Neutral      Fortune = "平"
	Caution      Fortune = "小凶"
	GreatCaution Fortune = "大凶"
)

// FortuneInfo 吉凶等级的展示信息
type FortuneInfo struct {
	Description string // 一句话总评
	Score       int    // 吉凶分值，用于时辰加成叠加
}

// FortuneLevels 吉凶等级元数据，顺序固定（由吉至凶）
var FortuneLevels = map[Fortune]FortuneInfo{
	GreatFortune: {Description: "諸事大順，宜積極進取", Score: 90},
	Fortunate:    {Description: "運勢平穩向好，宜循序漸進", Score: 70},
	Neutral:      {Description: "平穩無波，宜守不宜攻", Score: 50},
	Caution:      {Description: "略有阻滯，宜謹慎行事", Score: 30},
	GreatCaution: {Description: "時運不濟，宜靜待時機", Score: 10},
}

// Hexagram 六十四卦之一卦，由上下两个基础卦组成
type Hexagram struct {
	Number  int      // 王序卦序（1-64）
	Name    string   // 卦名，如 地天泰
	Upper   *Trigram // 上卦
	Lower   *Trigram // 下卦
	Fortune Fortune  // 吉凶等级
}

// Symbol 六爻卦符，按王序映射 Unicode 易经区段
func (h *Hexagram) Symbol() string {
	return string(rune(0x4DC0 + h.Number - 1))
}

// Element 主卦五行，取上卦（外卦）的五行属性
func (h *Hexagram) Element() string {
	return h.Upper.Element
}

// Code 卦码，上卦名加下卦名，问事锁以此持久化
func (h *Hexagram) Code() string {
	return h.Upper.Name + h.Lower.Name
}

// entry 卦表条目
type entry struct {
	number  int
	name    string
	fortune Fortune
}

// table 六十四卦卦表，外层键为上卦名，内层键为下卦名
var table = map[string]map[string]entry{
	"乾": {
		"乾": {1, "乾為天", GreatFortune},
		"兌": {10, "天澤履", Neutral},
		"離": {13, "天火同人", Fortunate},
		"震": {25, "天雷無妄", Neutral},
		"巽": {44, "天風姤", Caution},
		"坎": {6, "天水訟", Caution},
		"艮": {33, "天山遯", Neutral},
		"坤": {12, "天地否", GreatCaution},
	},
	"兌": {
		"乾": {43, "澤天夬", Caution},
		"兌": {58, "兌為澤", Fortunate},
		"離": {49, "澤火革", Neutral},
		"震": {17, "澤雷隨", Fortunate},
		"巽": {28, "澤風大過", Caution},
		"坎": {47, "澤水困", GreatCaution},
		"艮": {31, "澤山咸", Fortunate},
		"坤": {45, "澤地萃", Fortunate},
	},
	"離": {
		"乾": {14, "火天大有", GreatFortune},
		"兌": {38, "火澤睽", Caution},
		"離": {30, "離為火", Fortunate},
		"震": {21, "火雷噬嗑", Neutral},
		"巽": {50, "火風鼎", GreatFortune},
		"坎": {64, "火水未濟", Neutral},
		"艮": {56, "火山旅", Caution},
		"坤": {35, "火地晉", GreatFortune},
	},
	"震": {
		"乾": {34, "雷天大壯", Fortunate},
		"兌": {54, "雷澤歸妹", Caution},
		"離": {55, "雷火豐", Fortunate},
		"震": {51, "震為雷", Neutral},
		"巽": {32, "雷風恆", Fortunate},
		"坎": {40, "雷水解", Fortunate},
		"艮": {62, "雷山小過", Caution},
		"坤": {16, "雷地豫", Fortunate},
	},
	"巽": {
		"乾": {9, "風天小畜", Neutral},
		"兌": {61, "風澤中孚", Fortunate},
		"離": {37, "風火家人", Fortunate},
		"震": {42, "風雷益", GreatFortune},
		"巽": {57, "巽為風", Neutral},
		"坎": {59, "風水渙", Neutral},
		"艮": {53, "風山漸", Fortunate},
		"坤": {20, "風地觀", Neutral},
	},
	"坎": {
		"乾": {5, "水天需", Fortunate},
		"兌": {60, "水澤節", Neutral},
		"離": {63, "水火既濟", Fortunate},
		"震": {3, "水雷屯", Caution},
		"巽": {48, "水風井", Neutral},
		"坎": {29, "坎為水", GreatCaution},
		"艮": {39, "水山蹇", Caution},
		"坤": {8, "水地比", Fortunate},
	},
	"艮": {
		"乾": {26, "山天大畜", Fortunate},
		"兌": {41, "山澤損", Caution},
		"離": {22, "山火賁", Fortunate},
		"震": {27, "山雷頤", Neutral},
		"巽": {18, "山風蠱", Caution},
		"坎": {4, "山水蒙", Neutral},
		"艮": {52, "艮為山", Neutral},
		"坤": {23, "山地剝", GreatCaution},
	},
	"坤": {
		"乾": {11, "地天泰", GreatFortune},
		"兌": {19, "地澤臨", Fortunate},
		"離": {36, "地火明夷", GreatCaution},
		"震": {24, "地雷復", Fortunate},
		"巽": {46, "地風升", GreatFortune},
		"坎": {7, "地水師", Neutral},
		"艮": {15, "地山謙", GreatFortune},
		"坤": {2, "坤為地", Fortunate},
	},
}

// Get 按上下卦名组合出六十四卦
func Get(upper, lower string) (*Hexagram, error) {
	up := GetTrigram(upper)
	low := GetTrigram(lower)
	if up == nil || low == nil {
		return nil, fmt.Errorf("未知的基础卦组合: %s/%s", upper, lower)
	}
	e := table[upper][lower]
	return &Hexagram{
		Number:  e.number,
		Name:    e.name,
		Upper:   up,
		Lower:   low,
		Fortune: e.fortune,
	}, nil
}

// FromCode 从持久化的卦码（上卦名+下卦名）还原卦象
func FromCode(code string) (*Hexagram, error) {
	runes := []rune(code)
	if len(runes) != 2 {
		return nil, fmt.Errorf("非法的卦码: %q", code)
	}
	return Get(string(runes[0]), string(runes[1]))
}

// Draw 摇卦。上下卦各自独立等概率选取，允许重复（纯卦）
// rng 由调用方注入，测试时传入固定种子即可得到确定结果
func Draw(rng *rand.Rand) *Hexagram {
	upper := Trigrams[rng.Intn(len(Trigrams))]
	lower := Trigrams[rng.Intn(len(Trigrams))]
	h, _ := Get(upper.Name, lower.Name)
	return h
}
