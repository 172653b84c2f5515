package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yizhan/app/models/user"
	"yizhan/pkg/database"
)

// UserRepository 用户仓库
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建仓库实例
func NewUserRepository() *UserRepository {
	return &UserRepository{
		db: database.DB,
	}
}

// FirstOrCreate 获取用户，不存在时创建
// 创建时同步派生专属推广码；并发重复创建由主键约束兜底
func (r *UserRepository) FirstOrCreate(ctx context.Context, userID string) (*user.User, error) {
	u := user.User{
		ID:           userID,
		ReferralCode: user.MakeReferralCode(userID),
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&u).Error
	if err != nil {
		return nil, err
	}

	// 回读，确保拿到的是库中已存在的那一行
	var existing user.User
	if err := r.db.WithContext(ctx).First(&existing, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// MarkFirstDivinationDone 标记首次占卜已完成
// 单向幂等翻转，重复调用不产生额外写入语义
func (r *UserRepository) MarkFirstDivinationDone(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Model(&user.User{}).
		Where("id = ?", userID).
		Update("first_divination_done", true).Error
}
