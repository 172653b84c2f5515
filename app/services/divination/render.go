package divination

import (
	"fmt"

	"yizhan/pkg/crystal"
	"yizhan/pkg/hexagram"
	"yizhan/pkg/shichen"
)

// Tier 解读深度
type Tier string

const (
	TierBasic    Tier = "basic"    // 免费版
	TierDetailed Tier = "detailed" // VIP 详细版
	TierPremium  Tier = "premium"  // 首占礼遇 / 深度版
)

// categoryAdvice 类别建议，按吉凶分两档
type categoryAdvice struct {
	favorable   string
	unfavorable string
}

var adviceTable = map[string]categoryAdvice{
	"love":        {"感情運正旺，宜主動表達心意", "感情易生波折，宜多溝通少猜疑"},
	"career":      {"事業有貴人相助，宜把握機會", "職場暗流湧動，宜低調行事"},
	"wealth":      {"財運亨通，正財偏財皆有所獲", "財運受阻，不宜大額投資"},
	"health":      {"氣血調和，保持作息即可", "身體發出警訊，宜及早調養"},
	"study":       {"文昌運旺，考學皆有佳績", "心神不寧，宜調整步調再行衝刺"},
	"property":    {"置產時機成熟，可進一步洽談", "房產之事多有變數，宜緩不宜急"},
	"cooperation": {"合作雙方氣場相合，可締良約", "合約細節藏隱憂，宜逐條推敲"},
	"other":       {"所問之事漸入佳境，順勢而為", "所問之事尚有變數，靜觀其變"},
}

// adviceFor 按类别与吉凶等级给出建议语
func adviceFor(categoryCode string, f hexagram.Fortune) string {
	advice, ok := adviceTable[categoryCode]
	if !ok {
		advice = adviceTable["other"]
	}
	switch f {
	case hexagram.GreatFortune, hexagram.Fortunate:
		return advice.favorable
	case hexagram.Caution, hexagram.GreatCaution:
		return advice.unfavorable
	}
	return "運勢平平，順其自然，靜觀其變即可"
}

/* 菜单与提示文案 */

func welcomeText() string {
	return `☯️ 歡迎來到籟柏太極易占！

🔮 輸入「問事」開始占卜
📅 輸入「運勢」查看今日運勢
📖 輸入「說明」了解更多

願卦象為您帶來智慧與啟發！`
}

func helpText() string {
	return `📖 使用說明

🔮 問事 - 開始占卜
📅 運勢 - 今日運勢
📊 次數 - 剩餘次數
👑 VIP - 查看方案
🎁 推廣碼 - 查看推廣碼

聯繫：linelaobai2024@gmail.com`
}

func defaultPromptText() string {
	return "☯️ 籟柏太極易占\n\n輸入「問事」開始占卜\n輸入「說明」查看使用方式"
}

func vipText() string {
	return `👑 VIP 訂閱方案

📍 月訂閱：NT$99/月
📍 季訂閱：NT$249/季
📍 年訂閱：NT$799/年

【VIP 專屬功能】
✅ 無限次問事占卜
✅ 詳細版卦象解讀
✅ 每月1次AI深度解讀
✅ 無限合卦配對

（金流整合中，敬請期待）`
}

func askQuestionText() string {
	return "☯️ 請輸入您想問的問題\n\n例如：\n• 這份工作適合我嗎？\n• 我和他有緣分嗎？\n• 這個月財運如何？"
}

func quotaExceededText(limit int) string {
	return fmt.Sprintf("⚠️ 今日免費次數已用完（%d次/天）\n\n💎 升級VIP享無限問事\n輸入「VIP」查看方案", limit)
}

func usageText(remaining string) string {
	return fmt.Sprintf("📊 今日剩餘問事：%s次", remaining)
}

func referralText(code string) string {
	return fmt.Sprintf("🎁 您的專屬推廣碼\n\n%s\n\n分享好友加入可獲得額外問事次數！", code)
}

func alreadyLockedText() string {
	return "☯️ 此問題今日已占卜過\n\n同一問題每天只能占卜一次\n\n🔮 若有新問題，請輸入「問事」"
}

func noQuestionText() string {
	return "⚠️ 請先輸入「問事」開始"
}

func calmDownText() string {
	return "🙏 請閉眼靜心，默念您的問題三次...\n\n準備好後，卦象即將揭曉..."
}

func confirmCategoryText(question string, c Category) string {
	return fmt.Sprintf("📝 您的問題：\n「%s」\n\n系統判斷類別：%s %s\n\n請選擇類別：",
		question, c.Emoji, c.Name)
}

// categoryQuickReplies 全部类别的快捷回复按钮
func categoryQuickReplies() []QuickReplyAction {
	actions := make([]QuickReplyAction, 0, len(Categories))
	for _, c := range Categories {
		actions = append(actions, QuickReplyAction{
			Label: fmt.Sprintf("%s %s", c.Emoji, c.Name),
			Data:  "category:" + c.Code,
		})
	}
	return actions
}

/* 摇卦仪式 */

// ritualProcessText 渲染摇卦过程：六爻自下而上依次成形
func ritualProcessText(h *hexagram.Hexagram) string {
	yao := make([]string, 0, 6)
	for _, yang := range h.Lower.Lines {
		yao = append(yao, hexagram.YaoSymbol(yang))
	}
	for _, yang := range h.Upper.Lines {
		yao = append(yao, hexagram.YaoSymbol(yang))
	}

	return fmt.Sprintf(`☯️ 搖卦中...

初爻 %s　二爻 %s　三爻 %s
▸ 下卦成形：%s %s（%s）

四爻 %s　五爻 %s　上爻 %s
▸ 上卦成形：%s %s（%s）

═══════════════════════════════

✨ 卦象已成！

%s %s
【%s】`,
		yao[0], yao[1], yao[2],
		h.Lower.Symbol, h.Lower.Name, h.Lower.Nature,
		yao[3], yao[4], yao[5],
		h.Upper.Symbol, h.Upper.Name, h.Upper.Nature,
		h.Symbol(), h.Name, h.Fortune)
}

/* 分级解读模板 */

// renderInterpretation 按解读深度渲染卦象解读
func renderInterpretation(tier Tier, h *hexagram.Hexagram, categoryCode string) string {
	switch tier {
	case TierPremium:
		return renderPremium(h, categoryCode)
	case TierDetailed:
		return renderDetailed(h, categoryCode)
	}
	return renderBasic(h, categoryCode)
}

// renderBasic 免费版解读
func renderBasic(h *hexagram.Hexagram, categoryCode string) string {
	c := CategoryByCode(categoryCode)
	info := hexagram.FortuneLevels[h.Fortune]
	return fmt.Sprintf(`%s %s
【%s】%s

%s %s運勢
%s

💎 升級VIP解鎖詳細解讀`,
		h.Symbol(), h.Name,
		h.Fortune, info.Description,
		c.Emoji, c.Name,
		adviceFor(categoryCode, h.Fortune))
}

// renderDetailed VIP 详细版解读
func renderDetailed(h *hexagram.Hexagram, categoryCode string) string {
	c := CategoryByCode(categoryCode)
	info := hexagram.FortuneLevels[h.Fortune]
	return fmt.Sprintf(`%s %s
【%s】%s

☯️ 卦象結構
上卦 %s %s（%s・五行屬%s）
下卦 %s %s（%s・五行屬%s）
主卦五行：%s

%s %s運勢
%s

📿 行動建議
%s`,
		h.Symbol(), h.Name,
		h.Fortune, info.Description,
		h.Upper.Symbol, h.Upper.Name, h.Upper.Nature, h.Upper.Element,
		h.Lower.Symbol, h.Lower.Name, h.Lower.Nature, h.Lower.Element,
		h.Element(),
		c.Emoji, c.Name,
		adviceFor(categoryCode, h.Fortune),
		actionAdvice(h.Fortune))
}

// renderPremium 深度版解读（首次占卜礼遇，VIP 亦不可及）
func renderPremium(h *hexagram.Hexagram, categoryCode string) string {
	return fmt.Sprintf(`✨ 首次占卜・深度解讀 ✨

%s

🧭 方位指引
上卦主%s，下卦主%s；行事可多往%s方走動

⏳ 時機研判
%s`,
		renderDetailed(h, categoryCode),
		h.Upper.Direction, h.Lower.Direction, h.Upper.Direction,
		timingAdvice(h.Fortune))
}

// actionAdvice 按吉凶等级的行动建议
func actionAdvice(f hexagram.Fortune) string {
	switch f {
	case hexagram.GreatFortune:
		return "天時地利俱備，當斷則斷，勿失良機"
	case hexagram.Fortunate:
		return "大勢向好，穩紮穩打即可水到渠成"
	case hexagram.Neutral:
		return "維持現狀，養精蓄銳，待變而動"
	case hexagram.Caution:
		return "遇事三思，先守後攻，避開鋒芒"
	}
	return "暫避其鋒，凡事留餘地，靜待轉機"
}

// timingAdvice 按吉凶等级的时机研判
func timingAdvice(f hexagram.Fortune) string {
	switch f {
	case hexagram.GreatFortune, hexagram.Fortunate:
		return "近期即是好時機，七日之內可見分曉"
	case hexagram.Neutral:
		return "時機未明，宜再觀察一段時日"
	}
	return "目前非行事之時，建議待下一個節氣再問"
}

/* 结果组装 */

// resultText 组装最终解读：解读正文 + 时辰提示 + 开运水晶
func resultText(interpretation string, slot shichen.Slot, h *hexagram.Hexagram, categoryCode string) string {
	tip := shichen.FormatTip(slot, h.Element())
	rec := crystal.Recommend(h.Element(), categoryCode, string(h.Fortune))
	return fmt.Sprintf("%s\n\n───────────────────\n\n%s\n\n%s",
		interpretation, tip, crystal.FormatBasic(rec))
}

// dailyFortuneText 今日运势（不占用问事次数，不写问事锁）
// 水晶固定推白水晶，不随卦象变化
func dailyFortuneText(date string, h *hexagram.Hexagram, slot shichen.Slot) string {
	info := hexagram.FortuneLevels[h.Fortune]
	return fmt.Sprintf(`☀️ 今日運勢 %s

%s %s
【%s】%s

⏰ 時辰：%s
📍 方位：%s

💎 開運水晶：白水晶

輸入「問事」開始占卜`,
		date,
		h.Symbol(), h.Name,
		h.Fortune, info.Description,
		slot.Name, slot.Direction)
}
