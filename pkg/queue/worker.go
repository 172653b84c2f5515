package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"yizhan/app/models/record"
	"yizhan/pkg/logger"
)

// RecordStore 落库边界，由占卜记录仓库实现
type RecordStore interface {
	Create(ctx context.Context, rec *record.DivinationRecord) error
}

// Worker 队列工作器，负责把占卜记录从队列消费后落库
type Worker struct {
	queueService *QueueService
	records      RecordStore
	stopChan     chan struct{}
	workerCount  int
	metrics      *QueueMetrics
	wg           sync.WaitGroup
	config       WorkerConfig
}

// WorkerConfig 工作器配置
type WorkerConfig struct {
	WorkerCount     int           // 并发工作器数量
	MaxRetries      int           // 最大重试次数
	RetryInterval   time.Duration // 重试间隔
	ShutdownTimeout time.Duration // 关闭超时时间
	BatchSize       int           // 批处理大小
}

// NewWorker 创建新的工作器组
func NewWorker(qs *QueueService, records RecordStore, config WorkerConfig) *Worker {
	if config.WorkerCount <= 0 {
		config.WorkerCount = 4 // 默认工作器数量
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 10 // 默认批处理大小
	}
	if config.RetryInterval <= 0 {
		config.RetryInterval = time.Second
	}

	return &Worker{
		queueService: qs,
		records:      records,
		stopChan:     make(chan struct{}),
		workerCount:  config.WorkerCount,
		metrics:      NewQueueMetrics(),
		config:       config,
	}
}

// Start 启动工作器组
func (w *Worker) Start() {
	for i := 0; i < w.workerCount; i++ {
		w.wg.Add(1)
		go w.startWorker(i)
	}
}

// startWorker 启动单个工作器
func (w *Worker) startWorker(id int) {
	defer w.wg.Done()

	logger.InfoString("Worker", "Start", fmt.Sprintf("Worker %d started", id))

	// 创建带缓冲的错误通道
	errorChan := make(chan error, 100)

	for {
		select {
		case <-w.stopChan:
			logger.InfoString("Worker", "Stop", fmt.Sprintf("Worker %d stopping", id))
			return

		case err := <-errorChan:
			logger.ErrorString("Worker", "Error", fmt.Sprintf("Worker %d error: %v", id, err))
			time.Sleep(time.Second) // 错误恢复延迟

		default:
			if err := w.processNextTask(); err != nil {
				select {
				case errorChan <- err:
				default:
					logger.ErrorString("Worker", "ErrorBuffer", "Error buffer full")
				}
			}
		}
	}
}

// processNextTask 取出并处理下一个任务
func (w *Worker) processNextTask() error {
	start := time.Now()
	defer func() {
		w.metrics.RecordProcessingTime(time.Since(start))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 使用管道缓冲任务
	taskChan := make(chan *RecordTask, w.config.BatchSize)
	errChan := make(chan error, 1)

	// 异步获取任务
	go func() {
		task, err := w.queueService.PopTask(ctx)
		if err != nil {
			if err != redis.Nil {
				errChan <- fmt.Errorf("pop task error: %w", err)
			}
			close(taskChan)
			return
		}
		if task == nil {
			close(taskChan)
			return
		}
		taskChan <- task
		close(taskChan)
	}()

	// 等待任务或错误
	select {
	case err := <-errChan:
		return err
	case task, ok := <-taskChan:
		if !ok {
			time.Sleep(100 * time.Millisecond) // 避免空队列时的忙等
			return nil
		}
		return w.handleTask(ctx, task)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// handleTask 把单条占卜记录写入数据库
// 落库失败按 MaxRetries/RetryInterval 重试，耗尽后放弃并记错
func (w *Worker) handleTask(ctx context.Context, task *RecordTask) error {
	w.metrics.EndWaitTime(TaskID(task.ID))

	rec := &record.DivinationRecord{
		UserID:       task.UserID,
		Question:     task.Question,
		Category:     task.Category,
		HexagramName: task.HexagramName,
	}

	var err error
	for attempt := 0; attempt <= w.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(w.config.RetryInterval):
			case <-ctx.Done():
				w.metrics.RecordError(OpProcess)
				return ctx.Err()
			}
		}

		taskCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err = w.records.Create(taskCtx, rec)
		cancel()
		if err == nil {
			w.metrics.RecordSuccess(OpProcess)
			return nil
		}
		logger.WarnString("Worker", "SaveRecord",
			fmt.Sprintf("attempt %d/%d failed: %v", attempt+1, w.config.MaxRetries+1, err))
	}

	w.metrics.RecordError(OpProcess)
	return fmt.Errorf("save record error: %w", err)
}

// Stop 优雅关闭工作器组
func (w *Worker) Stop() {
	close(w.stopChan)

	// 等待所有工作器完成
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	timeout := w.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	select {
	case <-done:
		logger.InfoString("Worker", "Stop", "All workers stopped gracefully")
	case <-time.After(timeout):
		logger.WarnString("Worker", "Stop", "Worker shutdown timed out")
	}
}
