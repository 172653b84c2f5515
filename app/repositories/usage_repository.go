package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yizhan/app/models/usage"
	"yizhan/pkg/database"
)

// UsageRepository 每日用量仓库
type UsageRepository struct {
	db *gorm.DB
}

// NewUsageRepository 创建仓库实例
func NewUsageRepository() *UsageRepository {
	return &UsageRepository{
		db: database.DB,
	}
}

// Count 获取用户指定日期的问事次数，没有记录视为 0
func (r *UsageRepository) Count(ctx context.Context, userID, date string) (int, error) {
	var row usage.DailyUsage
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND usage_date = ?", userID, date).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return row.Count, nil
}

// Increment 原子自增当日计数
// 使用 upsert（insert-or-add），两个并发请求都能正确累加
func (r *UsageRepository) Increment(ctx context.Context, userID, date string) error {
	row := usage.DailyUsage{
		UserID:    userID,
		UsageDate: date,
		Count:     1,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "usage_date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + 1")}),
		}).
		Create(&row).Error
}
