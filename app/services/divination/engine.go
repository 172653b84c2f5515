// Package divination 占卜会话引擎
//
// 驱动每用户的多轮问事流程：
// 空闲 → 等待问题 → 等待类别确认 → 出卦回到空闲
// 外部协作者（存储、时钟、会话、记录）一律经由窄接口注入
package divination

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"yizhan/app/models/lock"
	"yizhan/app/models/record"
	"yizhan/app/models/user"
	"yizhan/pkg/hexagram"
	"yizhan/pkg/logger"
	"yizhan/pkg/shichen"
)

// 触发开始问事的指令集合
var startCommands = map[string]bool{
	"問事": true,
	"占卜": true,
	"搖卦": true,
}

// UserStore 用户存储边界
type UserStore interface {
	FirstOrCreate(ctx context.Context, userID string) (*user.User, error)
	MarkFirstDivinationDone(ctx context.Context, userID string) error
}

// UsageStore 每日用量边界
type UsageStore interface {
	Count(ctx context.Context, userID, date string) (int, error)
	Increment(ctx context.Context, userID, date string) error
}

// LockStore 问事锁边界
// Find 出错时必须将错误上抛，不得降级为"未锁定"
type LockStore interface {
	Find(ctx context.Context, userID, questionHash string) (*lock.QuestionLock, error)
	CreateIfAbsent(ctx context.Context, l *lock.QuestionLock) (string, error)
}

// Recorder 占卜流水记录边界，只写不读
type Recorder interface {
	Record(ctx context.Context, rec *record.DivinationRecord) error
}

// Config 引擎装配配置
type Config struct {
	Users    UserStore
	Usage    UsageStore
	Locks    LockStore
	Recorder Recorder
	Sessions SessionStore
	Clock    Clock

	// Rand 摇卦随机源，测试时注入固定种子；为 nil 时按时间播种
	Rand *rand.Rand

	// FreeDailyLimit 免费用户每日问事上限，<=0 时取默认值 3
	FreeDailyLimit int

	// TaijiImageURL 摇卦仪式的太极图
	TaijiImageURL string
}

// Engine 占卜会话引擎
type Engine struct {
	users    UserStore
	usage    UsageStore
	locks    LockStore
	recorder Recorder
	sessions SessionStore
	clock    Clock

	randMu sync.Mutex
	rng    *rand.Rand

	freeDailyLimit int
	taijiImageURL  string
}

// NewEngine 装配引擎
func NewEngine(cfg Config) *Engine {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	limit := cfg.FreeDailyLimit
	if limit <= 0 {
		limit = 3
	}
	return &Engine{
		users:          cfg.Users,
		usage:          cfg.Usage,
		locks:          cfg.Locks,
		recorder:       cfg.Recorder,
		sessions:       cfg.Sessions,
		clock:          cfg.Clock,
		rng:            rng,
		freeDailyLimit: limit,
		taijiImageURL:  cfg.TaijiImageURL,
	}
}

// draw 摇卦。rand.Rand 非并发安全，加锁保护
func (e *Engine) draw() *hexagram.Hexagram {
	e.randMu.Lock()
	defer e.randMu.Unlock()
	return hexagram.Draw(e.rng)
}

// OnFollow 用户首次关注
func (e *Engine) OnFollow(ctx context.Context, userID string) ([]Message, error) {
	if _, err := e.users.FirstOrCreate(ctx, userID); err != nil {
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}
	return []Message{Text(welcomeText())}, nil
}

// OnText 收到文本消息
// 菜单指令独立于会话状态处理，且不改变状态
func (e *Engine) OnText(ctx context.Context, userID, text string) ([]Message, error) {
	text = strings.TrimSpace(text)

	u, err := e.users.FirstOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("获取用户失败: %w", err)
	}

	// 开始问事：先过配额闸门，通过后才进入等待问题状态
	if startCommands[text] {
		return e.handleStart(ctx, u)
	}

	switch text {
	case "運勢":
		return e.handleDailyFortune()
	case "VIP":
		return []Message{Text(vipText())}, nil
	case "次數":
		return e.handleUsage(ctx, u)
	case "說明", "幫助", "help":
		return []Message{Text(helpText())}, nil
	case "推廣碼":
		return []Message{Text(referralText(u.ReferralCode))}, nil
	}

	// 等待问题中：捕获问题并自动分类，进入类别确认
	if sess, ok := e.sessions.Get(userID); ok && sess.Step == StepAwaitingQuestion {
		category := Classify(text)
		e.sessions.Put(userID, Session{
			Step:     StepAwaitingCategory,
			Question: text,
			Category: category,
		})
		msg := TextWithQuickReplies(
			confirmCategoryText(text, CategoryByCode(category)),
			categoryQuickReplies(),
		)
		return []Message{msg}, nil
	}

	// 未识别的输入，回落到引导语
	return []Message{Text(defaultPromptText())}, nil
}

// OnPostback 收到 postback 事件
func (e *Engine) OnPostback(ctx context.Context, userID, payload string) ([]Message, error) {
	u, err := e.users.FirstOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("获取用户失败: %w", err)
	}

	if categoryCode, ok := strings.CutPrefix(payload, "category:"); ok {
		return e.handleCategorySelection(ctx, u, categoryCode)
	}

	// 未识别的 payload 不视为错误
	return nil, nil
}

// handleStart 处理开始问事指令
func (e *Engine) handleStart(ctx context.Context, u *user.User) ([]Message, error) {
	// VIP 不设上限；免费用户先查当日用量
	if !u.IsPremium {
		count, err := e.usage.Count(ctx, u.ID, e.clock.Today())
		if err != nil {
			return nil, fmt.Errorf("查询每日用量失败: %w", err)
		}
		if count >= e.freeDailyLimit {
			return []Message{Text(quotaExceededText(e.freeDailyLimit))}, nil
		}
	}

	e.sessions.Put(u.ID, Session{Step: StepAwaitingQuestion})
	return []Message{Text(askQuestionText())}, nil
}

// handleDailyFortune 今日运势：自由摇一卦，不占问事次数也不写锁
func (e *Engine) handleDailyFortune() ([]Message, error) {
	h := e.draw()
	slot := shichen.ForHour(e.clock.Hour())
	date := e.clock.Today()
	// 展示用 月/日
	if len(date) == 10 {
		date = date[5:7] + "/" + date[8:10]
	}
	return []Message{Text(dailyFortuneText(date, h, slot))}, nil
}

// handleUsage 剩余次数查询
func (e *Engine) handleUsage(ctx context.Context, u *user.User) ([]Message, error) {
	if u.IsPremium {
		return []Message{Text(usageText("無限"))}, nil
	}
	count, err := e.usage.Count(ctx, u.ID, e.clock.Today())
	if err != nil {
		return nil, fmt.Errorf("查询每日用量失败: %w", err)
	}
	remaining := e.freeDailyLimit - count
	if remaining < 0 {
		remaining = 0
	}
	return []Message{Text(usageText(fmt.Sprintf("%d", remaining)))}, nil
}

// handleCategorySelection 类别确认后的完整出卦流程：
// 锁检查 → 摇卦 → 写锁 → 记录 → 计数 → 分级渲染 → 回到空闲
func (e *Engine) handleCategorySelection(ctx context.Context, u *user.User, categoryCode string) ([]Message, error) {
	sess, ok := e.sessions.Get(u.ID)
	if !ok || sess.Step != StepAwaitingCategory || sess.Question == "" {
		// 用户输入错误：没有待确认的问题，引导后回到空闲
		e.sessions.Evict(u.ID)
		return []Message{Text(noQuestionText())}, nil
	}

	today := e.clock.Today()
	questionHash := Signature(u.ID, sess.Question, today)

	// 锁检查。存储错误直接失败，绝不视为"未锁定"
	existing, err := e.locks.Find(ctx, u.ID, questionHash)
	if err != nil {
		return nil, fmt.Errorf("问事锁检查失败: %w", err)
	}
	if existing != nil {
		// 同一问题当日已占：复用提示，不重新摇卦，不消耗配额
		e.sessions.Evict(u.ID)
		return []Message{Text(alreadyLockedText())}, nil
	}

	// 摇卦并条件写锁；并发输给先写者时，以库中卦码为准重新渲染
	h := e.draw()
	storedCode, err := e.locks.CreateIfAbsent(ctx, &lock.QuestionLock{
		UserID:       u.ID,
		QuestionHash: questionHash,
		LockDate:     today,
		HexagramCode: h.Code(),
	})
	if err != nil {
		return nil, fmt.Errorf("写入问事锁失败: %w", err)
	}
	if storedCode != h.Code() {
		if h, err = hexagram.FromCode(storedCode); err != nil {
			return nil, fmt.Errorf("还原卦码失败: %w", err)
		}
	}

	// 分级：首占礼遇优先于订阅状态
	tier := e.selectTier(ctx, u)
	interpretation := renderInterpretation(tier, h, categoryCode)

	// 流水记录只写不读，失败不阻断出卦
	if err := e.recorder.Record(ctx, &record.DivinationRecord{
		UserID:       u.ID,
		Question:     sess.Question,
		Category:     categoryCode,
		HexagramName: h.Name,
	}); err != nil {
		logger.ErrorString("占卜", "流水记录", err.Error())
	}

	// 只有成功出卦才消耗配额
	if err := e.usage.Increment(ctx, u.ID, today); err != nil {
		return nil, fmt.Errorf("累加每日用量失败: %w", err)
	}

	e.sessions.Evict(u.ID)

	slot := shichen.ForHour(e.clock.Hour())
	messages := []Message{
		Image(e.taijiImageURL),
		Text(calmDownText()),
		Text(ritualProcessText(h)),
		Text(resultText(interpretation, slot, h, categoryCode)),
	}
	return messages, nil
}

// selectTier 选择解读深度
// 优先级严格：首次占卜 > VIP 订阅 > 免费
func (e *Engine) selectTier(ctx context.Context, u *user.User) Tier {
	if !u.FirstDivinationDone {
		// 单向幂等翻转；失败只记日志，不影响本次出卦
		if err := e.users.MarkFirstDivinationDone(ctx, u.ID); err != nil {
			logger.ErrorString("占卜", "首占标记", err.Error())
		}
		return TierPremium
	}
	if u.IsPremium {
		return TierDetailed
	}
	return TierBasic
}
