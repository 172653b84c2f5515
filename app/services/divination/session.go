package divination

import (
	"sync"
	"time"
)

// Step 会话所处步骤。空会话即 Idle
type Step string

const (
	// StepAwaitingQuestion 已发起问事，等待用户输入问题
	StepAwaitingQuestion Step = "awaiting_question"
	// StepAwaitingCategory 已收到问题，等待确认类别
	StepAwaitingCategory Step = "awaiting_category"
)

// Session 每用户的临时会话状态，进程内存储，重启即失
type Session struct {
	Step      Step
	Question  string // 已捕获的问题原文
	Category  string // 自动判断的类别编码
	UpdatedAt time.Time
}

// SessionStore 会话存储
// 以接口形式注入引擎，避免全局可变状态
type SessionStore interface {
	Get(userID string) (Session, bool)
	Put(userID string, s Session)
	Evict(userID string)
}

// MemoryStore 进程内会话存储，带 TTL 清理
// 被放弃的会话超过 TTL 后由后台清理协程回收
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
}

// NewMemoryStore 创建内存会话存储并启动清理协程
// ttl <= 0 时不做过期清理
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	store := &MemoryStore{
		sessions: make(map[string]Session),
		ttl:      ttl,
	}
	if ttl > 0 {
		go store.janitor()
	}
	return store
}

// Get 获取会话，过期的会话视为不存在
func (m *MemoryStore) Get(userID string) (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[userID]
	if !ok {
		return Session{}, false
	}
	if m.ttl > 0 && time.Since(s.UpdatedAt) > m.ttl {
		return Session{}, false
	}
	return s, true
}

// Put 写入会话并刷新时间戳
func (m *MemoryStore) Put(userID string, s Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.UpdatedAt = time.Now()
	m.sessions[userID] = s
}

// Evict 删除会话
func (m *MemoryStore) Evict(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, userID)
}

// janitor 周期清理过期会话
func (m *MemoryStore) janitor() {
	ticker := time.NewTicker(m.ttl)
	defer ticker.Stop()
	for range ticker.C {
		m.evictExpired(time.Now())
	}
}

// evictExpired 清理 UpdatedAt 早于 now-ttl 的会话
func (m *MemoryStore) evictExpired(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for userID, s := range m.sessions {
		if now.Sub(s.UpdatedAt) > m.ttl {
			delete(m.sessions, userID)
		}
	}
}
