// Package lock 问事锁模型
package lock

import (
	"yizhan/app/models"
)

// QuestionLock 问事锁
// 同一用户同一天内语义相同的问题只占一次，卦码随锁持久化
// (user_id, question_hash, lock_date) 唯一
type QuestionLock struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	UserID       string `gorm:"type:varchar(64);uniqueIndex:idx_user_question_date"`
	QuestionHash string `gorm:"type:varchar(64);uniqueIndex:idx_user_question_date"`
	LockDate     string `gorm:"type:varchar(10);uniqueIndex:idx_user_question_date"`
	HexagramCode string `gorm:"type:varchar(8)"`

	models.CommonTimestampsField
}

// TableName 表名
func (QuestionLock) TableName() string {
	return "question_locks"
}
