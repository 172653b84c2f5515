// Package user 存放用户 Model 相关逻辑
package user

import (
	"yizhan/app/models"
)

// User 用户模型
// 用户在首次互动时创建，只有 VIP 标记与首占标记会变更，永不删除
type User struct {
	ID                  string `gorm:"primaryKey;type:varchar(64)"`
	IsPremium           bool   `gorm:"default:false;index"`     // VIP 订阅标记
	ReferralCode        string `gorm:"unique;type:varchar(16)"` // 专属推广码，由用户 ID 派生
	FirstDivinationDone bool   `gorm:"default:false"`           // 是否已完成首次占卜

	models.CommonTimestampsField
}

// TableName 表名
func (User) TableName() string {
	return "users"
}
