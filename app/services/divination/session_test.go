package divination

import (
	"testing"
	"time"
)

func TestMemoryStorePutGet(t *testing.T) {
	store := NewMemoryStore(0)

	if _, ok := store.Get("U1"); ok {
		t.Error("空存储不应返回会话")
	}

	store.Put("U1", Session{Step: StepAwaitingQuestion})
	s, ok := store.Get("U1")
	if !ok || s.Step != StepAwaitingQuestion {
		t.Errorf("Get = %+v, %v, want StepAwaitingQuestion", s, ok)
	}
	if s.UpdatedAt.IsZero() {
		t.Error("Put 应刷新 UpdatedAt")
	}

	// 覆盖写入
	store.Put("U1", Session{Step: StepAwaitingCategory, Question: "q", Category: "love"})
	s, _ = store.Get("U1")
	if s.Step != StepAwaitingCategory || s.Question != "q" {
		t.Errorf("覆盖写入后 Get = %+v", s)
	}
}

func TestMemoryStoreEvict(t *testing.T) {
	store := NewMemoryStore(0)
	store.Put("U1", Session{Step: StepAwaitingQuestion})
	store.Evict("U1")
	if _, ok := store.Get("U1"); ok {
		t.Error("Evict 后不应再有会话")
	}
	// 删除不存在的会话不应出错
	store.Evict("U2")
}

func TestMemoryStoreTTL(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	store.Put("U1", Session{Step: StepAwaitingQuestion})
	store.Put("U2", Session{Step: StepAwaitingCategory})

	// 未过期时清理不生效
	store.evictExpired(time.Now())
	if _, ok := store.Get("U1"); !ok {
		t.Fatal("未过期的会话不应被清理")
	}

	// 越过 TTL 后两个会话都应被回收
	store.evictExpired(time.Now().Add(2 * time.Minute))
	if _, ok := store.Get("U1"); ok {
		t.Error("过期会话 U1 应被清理")
	}
	if _, ok := store.Get("U2"); ok {
		t.Error("过期会话 U2 应被清理")
	}
}
