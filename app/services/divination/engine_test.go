package divination

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"yizhan/app/models/lock"
	"yizhan/app/models/record"
	"yizhan/app/models/user"
	"yizhan/pkg/logger"
)

func init() {
	// 引擎的降级路径会写日志，测试里换成空实现
	logger.Logger = zap.NewNop()
}

/* 协作者桩实现 */

type stubUsers struct {
	u      *user.User
	err    error
	marked []string
}

func (s *stubUsers) FirstOrCreate(_ context.Context, userID string) (*user.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.u != nil {
		return s.u, nil
	}
	return &user.User{ID: userID, FirstDivinationDone: true}, nil
}

func (s *stubUsers) MarkFirstDivinationDone(_ context.Context, userID string) error {
	s.marked = append(s.marked, userID)
	return nil
}

type stubUsage struct {
	count      int
	countErr   error
	increments int
	incErr     error
}

func (s *stubUsage) Count(_ context.Context, _, _ string) (int, error) {
	return s.count, s.countErr
}

func (s *stubUsage) Increment(_ context.Context, _, _ string) error {
	s.increments++
	return s.incErr
}

type stubLocks struct {
	existing   *lock.QuestionLock
	findErr    error
	created    []*lock.QuestionLock
	storedCode string // 为空时表示本次写入生效
}

func (s *stubLocks) Find(_ context.Context, _, _ string) (*lock.QuestionLock, error) {
	return s.existing, s.findErr
}

func (s *stubLocks) CreateIfAbsent(_ context.Context, l *lock.QuestionLock) (string, error) {
	s.created = append(s.created, l)
	if s.storedCode != "" {
		return s.storedCode, nil
	}
	return l.HexagramCode, nil
}

type stubRecorder struct {
	records []*record.DivinationRecord
	err     error
}

func (s *stubRecorder) Record(_ context.Context, rec *record.DivinationRecord) error {
	s.records = append(s.records, rec)
	return s.err
}

type fixedClock struct {
	today string
	hour  int
}

func (c fixedClock) Today() string { return c.today }
func (c fixedClock) Hour() int     { return c.hour }

// deps 汇集全部桩，便于各测试断言
type deps struct {
	users    *stubUsers
	usage    *stubUsage
	locks    *stubLocks
	recorder *stubRecorder
	sessions *MemoryStore
}

func newTestEngine(d *deps) *Engine {
	if d.users == nil {
		d.users = &stubUsers{}
	}
	if d.usage == nil {
		d.usage = &stubUsage{}
	}
	if d.locks == nil {
		d.locks = &stubLocks{}
	}
	if d.recorder == nil {
		d.recorder = &stubRecorder{}
	}
	if d.sessions == nil {
		d.sessions = NewMemoryStore(time.Minute)
	}
	return NewEngine(Config{
		Users:          d.users,
		Usage:          d.usage,
		Locks:          d.locks,
		Recorder:       d.recorder,
		Sessions:       d.sessions,
		Clock:          fixedClock{today: "2026-08-29", hour: 10},
		Rand:           rand.New(rand.NewSource(7)),
		FreeDailyLimit: 3,
		TaijiImageURL:  "https://example.com/taiji.png",
	})
}

func mustText(t *testing.T, msgs []Message, i int) string {
	t.Helper()
	if i >= len(msgs) {
		t.Fatalf("期望至少 %d 条消息，实际 %d", i+1, len(msgs))
	}
	return msgs[i].Text
}

/* 入口与菜单 */

func TestOnFollow(t *testing.T) {
	d := &deps{}
	e := newTestEngine(d)

	msgs, err := e.OnFollow(context.Background(), "U1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(mustText(t, msgs, 0), "歡迎") {
		t.Errorf("关注后应回复欢迎语，实际 %q", msgs[0].Text)
	}
}

func TestMenuCommands(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"運勢", "今日運勢"},
		{"VIP", "VIP 訂閱方案"},
		{"說明", "使用說明"},
		{"幫助", "使用說明"},
		{"help", "使用說明"},
		{"次數", "剩餘問事"},
		{"隨便聊聊", "輸入「問事」開始占卜"},
	}
	for _, tt := range tests {
		e := newTestEngine(&deps{})
		msgs, err := e.OnText(context.Background(), "U1", tt.input)
		if err != nil {
			t.Fatalf("OnText(%q): %v", tt.input, err)
		}
		if !strings.Contains(mustText(t, msgs, 0), tt.want) {
			t.Errorf("OnText(%q) = %q, 应包含 %q", tt.input, msgs[0].Text, tt.want)
		}
	}
}

// 菜单指令不应打断进行中的会话
func TestMenuCommandKeepsSession(t *testing.T) {
	d := &deps{}
	e := newTestEngine(d)
	ctx := context.Background()

	if _, err := e.OnText(ctx, "U1", "問事"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.OnText(ctx, "U1", "次數"); err != nil {
		t.Fatal(err)
	}

	sess, ok := d.sessions.Get("U1")
	if !ok || sess.Step != StepAwaitingQuestion {
		t.Errorf("查询次数后会话应保持等待问题状态，实际 %+v, %v", sess, ok)
	}
}

/* 配额 */

func TestStartQuotaExceeded(t *testing.T) {
	d := &deps{usage: &stubUsage{count: 3}}
	e := newTestEngine(d)

	msgs, err := e.OnText(context.Background(), "U1", "問事")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(mustText(t, msgs, 0), "今日免費次數已用完") {
		t.Errorf("超额应提示升级，实际 %q", msgs[0].Text)
	}
	if _, ok := d.sessions.Get("U1"); ok {
		t.Error("超额时不应建立会话")
	}
}

func TestStartPremiumBypassesQuota(t *testing.T) {
	d := &deps{
		users: &stubUsers{u: &user.User{ID: "U1", IsPremium: true, FirstDivinationDone: true}},
		usage: &stubUsage{count: 99},
	}
	e := newTestEngine(d)

	msgs, err := e.OnText(context.Background(), "U1", "占卜")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(mustText(t, msgs, 0), "請輸入您想問的問題") {
		t.Errorf("VIP 应直接进入问事，实际 %q", msgs[0].Text)
	}
}

func TestStartQuotaCheckError(t *testing.T) {
	d := &deps{usage: &stubUsage{countErr: errors.New("db down")}}
	e := newTestEngine(d)

	if _, err := e.OnText(context.Background(), "U1", "問事"); err == nil {
		t.Error("用量查询失败时应上抛错误")
	}
}

/* 完整出卦流程 */

// runFlow 驱动 问事 → 输入问题 → 确认类别 的完整流程
func runFlow(t *testing.T, e *Engine, question string) []Message {
	t.Helper()
	ctx := context.Background()

	if _, err := e.OnText(ctx, "U1", "問事"); err != nil {
		t.Fatal(err)
	}
	msgs, err := e.OnText(ctx, "U1", question)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs[0].QuickReplies) == 0 {
		t.Fatal("类别确认应带快捷回复按钮")
	}

	msgs, err = e.OnPostback(ctx, "U1", "category:career")
	if err != nil {
		t.Fatal(err)
	}
	return msgs
}

func TestFullDivinationFlow(t *testing.T) {
	d := &deps{}
	e := newTestEngine(d)

	msgs := runFlow(t, e, "這份工作適合我嗎")

	if len(msgs) != 4 {
		t.Fatalf("出卦应回复 4 条消息，实际 %d", len(msgs))
	}
	if msgs[0].Type != MessageImage {
		t.Error("第一条应为太极图")
	}
	if !strings.Contains(msgs[2].Text, "搖卦中") {
		t.Errorf("第三条应为摇卦仪式，实际 %q", msgs[2].Text)
	}
	if !strings.Contains(msgs[3].Text, "開運水晶") {
		t.Errorf("第四条应附水晶推荐，实际 %q", msgs[3].Text)
	}

	if len(d.locks.created) != 1 {
		t.Fatalf("应写入一条问事锁，实际 %d", len(d.locks.created))
	}
	l := d.locks.created[0]
	if l.UserID != "U1" || l.LockDate != "2026-08-29" || l.HexagramCode == "" {
		t.Errorf("锁记录字段不完整: %+v", l)
	}
	if l.QuestionHash != Signature("U1", "這份工作適合我嗎", "2026-08-29") {
		t.Error("锁的问题签名与归一化签名不一致")
	}

	if d.usage.increments != 1 {
		t.Errorf("成功出卦应消耗一次配额，实际 %d", d.usage.increments)
	}
	if len(d.recorder.records) != 1 {
		t.Fatalf("应记录一条流水，实际 %d", len(d.recorder.records))
	}
	if d.recorder.records[0].Category != "career" {
		t.Errorf("流水类别 = %s, want career", d.recorder.records[0].Category)
	}

	if _, ok := d.sessions.Get("U1"); ok {
		t.Error("出卦后会话应回到空闲")
	}
}

func TestLockedQuestionReused(t *testing.T) {
	d := &deps{locks: &stubLocks{existing: &lock.QuestionLock{HexagramCode: "坤乾"}}}
	e := newTestEngine(d)

	msgs := runFlow(t, e, "這份工作適合我嗎")

	if !strings.Contains(mustText(t, msgs, 0), "今日已占卜過") {
		t.Errorf("已锁定问题应提示复用，实际 %q", msgs[0].Text)
	}
	if d.usage.increments != 0 {
		t.Error("命中锁不应消耗配额")
	}
	if len(d.recorder.records) != 0 {
		t.Error("命中锁不应写流水")
	}
	if _, ok := d.sessions.Get("U1"); ok {
		t.Error("命中锁后会话应回到空闲")
	}
}

// 锁检查出错必须失败，绝不能当作"未锁定"继续出卦
func TestLockCheckFailsClosed(t *testing.T) {
	d := &deps{locks: &stubLocks{findErr: errors.New("db down")}}
	e := newTestEngine(d)
	ctx := context.Background()

	if _, err := e.OnText(ctx, "U1", "問事"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.OnText(ctx, "U1", "這份工作適合我嗎"); err != nil {
		t.Fatal(err)
	}

	_, err := e.OnPostback(ctx, "U1", "category:career")
	if err == nil {
		t.Fatal("锁检查失败时应上抛错误")
	}
	if d.usage.increments != 0 {
		t.Error("锁检查失败不应消耗配额")
	}
	if len(d.locks.created) != 0 {
		t.Error("锁检查失败不应写锁")
	}
}

// 并发输给先写者时，以库中卦码为准渲染
func TestLostRaceUsesStoredHexagram(t *testing.T) {
	d := &deps{locks: &stubLocks{storedCode: "坤乾"}}
	e := newTestEngine(d)

	msgs := runFlow(t, e, "這份工作適合我嗎")

	if !strings.Contains(mustText(t, msgs, 2), "地天泰") {
		t.Errorf("应按库中卦码 坤乾 渲染 地天泰，实际 %q", msgs[2].Text)
	}
}

func TestRecorderFailureDoesNotBlock(t *testing.T) {
	d := &deps{recorder: &stubRecorder{err: errors.New("queue down")}}
	e := newTestEngine(d)

	msgs := runFlow(t, e, "這份工作適合我嗎")

	if len(msgs) != 4 {
		t.Errorf("流水记录失败不应阻断出卦，实际 %d 条消息", len(msgs))
	}
	if d.usage.increments != 1 {
		t.Error("流水记录失败后仍应消耗配额")
	}
}

func TestPostbackWithoutQuestion(t *testing.T) {
	d := &deps{}
	e := newTestEngine(d)

	msgs, err := e.OnPostback(context.Background(), "U1", "category:love")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(mustText(t, msgs, 0), "請先輸入「問事」") {
		t.Errorf("没有待确认问题时应引导重新开始，实际 %q", msgs[0].Text)
	}
}

func TestUnknownPostbackIgnored(t *testing.T) {
	e := newTestEngine(&deps{})
	msgs, err := e.OnPostback(context.Background(), "U1", "something:else")
	if err != nil || msgs != nil {
		t.Errorf("未识别的 postback 应静默忽略，实际 %v, %v", msgs, err)
	}
}

/* 分级解读 */

func TestFirstDivinationGetsPremiumTier(t *testing.T) {
	d := &deps{users: &stubUsers{u: &user.User{ID: "U1", FirstDivinationDone: false}}}
	e := newTestEngine(d)

	msgs := runFlow(t, e, "這份工作適合我嗎")

	if !strings.Contains(mustText(t, msgs, 3), "首次占卜・深度解讀") {
		t.Errorf("首占应给深度解读，实际 %q", msgs[3].Text)
	}
	if len(d.users.marked) != 1 || d.users.marked[0] != "U1" {
		t.Errorf("首占后应标记 FirstDivinationDone，实际 %v", d.users.marked)
	}
}

func TestPremiumUserGetsDetailedTier(t *testing.T) {
	d := &deps{users: &stubUsers{u: &user.User{ID: "U1", IsPremium: true, FirstDivinationDone: true}}}
	e := newTestEngine(d)

	msgs := runFlow(t, e, "這份工作適合我嗎")

	text := mustText(t, msgs, 3)
	if !strings.Contains(text, "卦象結構") {
		t.Errorf("VIP 应得到详细版解读，实际 %q", text)
	}
	if strings.Contains(text, "首次占卜") {
		t.Error("非首占不应出现首占礼遇文案")
	}
}

func TestFreeUserGetsBasicTier(t *testing.T) {
	d := &deps{}
	e := newTestEngine(d)

	msgs := runFlow(t, e, "這份工作適合我嗎")

	text := mustText(t, msgs, 3)
	if !strings.Contains(text, "升級VIP解鎖詳細解讀") {
		t.Errorf("免费版应提示升级，实际 %q", text)
	}
}

/* 今日运势 */

func TestDailyFortune(t *testing.T) {
	d := &deps{}
	e := newTestEngine(d)

	msgs, err := e.OnText(context.Background(), "U1", "運勢")
	if err != nil {
		t.Fatal(err)
	}
	text := mustText(t, msgs, 0)
	if !strings.Contains(text, "今日運勢 08/29") {
		t.Errorf("运势应带当日日期，实际 %q", text)
	}
	if !strings.Contains(text, "開運水晶：白水晶") {
		t.Errorf("运势的水晶固定为白水晶，实际 %q", text)
	}
	if d.usage.increments != 0 {
		t.Error("今日运势不应消耗问事配额")
	}
	if len(d.locks.created) != 0 {
		t.Error("今日运势不应写问事锁")
	}
}
