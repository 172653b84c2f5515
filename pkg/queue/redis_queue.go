// Package queue 占卜流水记录的异步落库管道
//
// 出卦回复不等待数据库：记录先入 Redis 列表，
// 由工作器组消费后写入 divination_records 表
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"yizhan/app/models/record"
	"yizhan/pkg/config"
	"yizhan/pkg/redis"
)

// RecordTask 待落库的占卜记录任务
type RecordTask struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Question     string    `json:"question"`
	Category     string    `json:"category"`
	HexagramName string    `json:"hexagram_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// QueueService Redis 队列服务
type QueueService struct {
	client      *redis.RedisClient
	prefix      string
	rateLimiter *rate.Limiter
	metrics     *QueueMetrics
}

// NewQueueService 创建新的队列服务实例
func NewQueueService() *QueueService {
	rateLimit := config.GetInt("queue.rate_limit", 1000)
	burst := config.GetInt("queue.rate_burst", rateLimit)

	return &QueueService{
		client:      redis.GetRedis(redis.QueueDB),
		prefix:      config.GetString("redis.queue_prefix", "yizhan:queue"),
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), burst),
		metrics:     NewQueueMetrics(),
	}
}

// Record 实现占卜引擎的记录边界：封装任务后入队
func (q *QueueService) Record(ctx context.Context, rec *record.DivinationRecord) error {
	task := &RecordTask{
		ID:           uuid.New().String(),
		UserID:       rec.UserID,
		Question:     rec.Question,
		Category:     rec.Category,
		HexagramName: rec.HexagramName,
		CreatedAt:    time.Now(),
	}
	return q.PushTask(ctx, task)
}

// PushTask 将任务推送到队列，带限流和指标收集
func (q *QueueService) PushTask(ctx context.Context, task *RecordTask) error {
	// 应用限流
	if err := q.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit exceeded: %w", err)
	}

	start := time.Now()
	defer func() {
		q.metrics.RecordPushLatency(time.Since(start))
	}()

	taskJSON, err := json.Marshal(task)
	if err != nil {
		q.metrics.RecordError(OpPush)
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	key := fmt.Sprintf("%s:records", q.prefix)
	if err := q.client.Client.LPush(ctx, key, taskJSON).Err(); err != nil {
		q.metrics.RecordError(OpPush)
		return fmt.Errorf("failed to push task: %w", err)
	}

	q.metrics.StartWaitTime(TaskID(task.ID))
	q.metrics.RecordSuccess(OpPush)
	return nil
}

// PopTask 从队列中阻塞获取任务
func (q *QueueService) PopTask(ctx context.Context) (*RecordTask, error) {
	key := fmt.Sprintf("%s:records", q.prefix)
	result, err := q.client.Client.BRPop(ctx, 0, key).Result()
	if err != nil {
		if err == goredis.Nil || err == context.DeadlineExceeded {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to pop task from queue: %w", err)
	}

	if len(result) != 2 {
		return nil, fmt.Errorf("invalid result from queue")
	}

	var task RecordTask
	if err := json.Unmarshal([]byte(result[1]), &task); err != nil {
		return nil, fmt.Errorf("failed to unmarshal task: %w", err)
	}
	return &task, nil
}

// Ping 检查队列服务健康状态
func (q *QueueService) Ping(ctx context.Context) error {
	return q.client.Ping()
}
