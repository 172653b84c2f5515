// Package record 占卜流水记录模型
package record

import (
	"yizhan/app/models"
)

// DivinationRecord 占卜记录，追加写入，核心流程不回读
type DivinationRecord struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       string `gorm:"type:varchar(64);index" json:"user_id"`
	Question     string `gorm:"type:text" json:"question"`
	Category     string `gorm:"type:varchar(20)" json:"category"`
	HexagramName string `gorm:"type:varchar(20)" json:"hexagram_name"`

	models.CommonTimestampsField
}

// TableName 表名
func (DivinationRecord) TableName() string {
	return "divination_records"
}
