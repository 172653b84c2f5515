package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"yizhan/app/models/record"
	"yizhan/pkg/logger"
)

func init() {
	// 重试路径会写告警日志，测试里换成空实现
	logger.Logger = zap.NewNop()
}

// flakyStore 前 failures 次写入失败，之后成功
type flakyStore struct {
	failures int
	calls    int
}

func (s *flakyStore) Create(_ context.Context, _ *record.DivinationRecord) error {
	s.calls++
	if s.calls <= s.failures {
		return errors.New("db down")
	}
	return nil
}

func newRetryWorker(store RecordStore, maxRetries int) *Worker {
	return NewWorker(nil, store, WorkerConfig{
		MaxRetries:    maxRetries,
		RetryInterval: time.Millisecond,
	})
}

func TestHandleTaskRetriesUntilSuccess(t *testing.T) {
	store := &flakyStore{failures: 2}
	w := newRetryWorker(store, 3)

	err := w.handleTask(context.Background(), &RecordTask{ID: "t1", UserID: "U1"})
	if err != nil {
		t.Fatalf("两次失败后第三次成功，不应返回错误: %v", err)
	}
	if store.calls != 3 {
		t.Errorf("写入应尝试 3 次，实际 %d", store.calls)
	}
}

func TestHandleTaskGivesUpAfterMaxRetries(t *testing.T) {
	store := &flakyStore{failures: 100}
	w := newRetryWorker(store, 2)

	err := w.handleTask(context.Background(), &RecordTask{ID: "t2", UserID: "U1"})
	if err == nil {
		t.Fatal("重试耗尽后应返回错误")
	}
	// 首次 + MaxRetries 次重试
	if store.calls != 3 {
		t.Errorf("写入应尝试 3 次后放弃，实际 %d", store.calls)
	}
}

func TestHandleTaskStopsOnCancelledContext(t *testing.T) {
	store := &flakyStore{failures: 100}
	w := newRetryWorker(store, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := w.handleTask(ctx, &RecordTask{ID: "t3", UserID: "U1"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("上下文取消后应停止重试并返回取消错误，实际 %v", err)
	}
	if store.calls != 1 {
		t.Errorf("取消后不应继续重试，实际尝试 %d 次", store.calls)
	}
}
