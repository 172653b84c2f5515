package repositories

import (
	"context"

	"gorm.io/gorm"

	"yizhan/app/models/record"
	"yizhan/pkg/database"
)

// RecordRepository 占卜记录仓库
type RecordRepository struct {
	db *gorm.DB
}

// NewRecordRepository 创建仓库实例
func NewRecordRepository() *RecordRepository {
	return &RecordRepository{
		db: database.DB,
	}
}

// Create 追加一条占卜记录。记录只写不读
func (r *RecordRepository) Create(ctx context.Context, rec *record.DivinationRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}
