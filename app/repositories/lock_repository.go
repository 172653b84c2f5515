package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yizhan/app/models/lock"
	"yizhan/pkg/database"
)

// LockRepository 问事锁仓库
//
// 锁检查的任何存储错误都向上传递（fail-closed），
// 绝不在出错时报告"未锁定"
type LockRepository struct {
	db *gorm.DB
}

// NewLockRepository 创建仓库实例
func NewLockRepository() *LockRepository {
	return &LockRepository{
		db: database.DB,
	}
}

// Find 按用户与问题签名查找锁记录，不存在返回 nil
func (r *LockRepository) Find(ctx context.Context, userID, questionHash string) (*lock.QuestionLock, error) {
	var l lock.QuestionLock
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND question_hash = ?", userID, questionHash).
		First(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

// CreateIfAbsent 条件写入锁记录，返回库中最终生效的卦码
// 唯一键冲突时不覆盖（insert if absent），并发重复摇卦以先写入者为准
func (r *LockRepository) CreateIfAbsent(ctx context.Context, l *lock.QuestionLock) (string, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"}, {Name: "question_hash"}, {Name: "lock_date"},
			},
			DoNothing: true,
		}).
		Create(l).Error
	if err != nil {
		return "", err
	}

	// 回读拿到最终生效的记录：要么是本次写入，要么是并发先到的那条
	var stored lock.QuestionLock
	err = r.db.WithContext(ctx).
		Where("user_id = ? AND question_hash = ? AND lock_date = ?",
			l.UserID, l.QuestionHash, l.LockDate).
		First(&stored).Error
	if err != nil {
		return "", err
	}
	return stored.HexagramCode, nil
}
