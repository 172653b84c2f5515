package migrations

import (
	"yizhan/app/models/lock"
	"yizhan/app/models/record"
	"yizhan/app/models/usage"
	"yizhan/app/models/user"
)

// RegisterTables 返回需要迁移的表的模型列表
func RegisterTables() []interface{} {
	return []interface{}{
		&user.User{},
		&usage.DailyUsage{},
		&lock.QuestionLock{},
		&record.DivinationRecord{},
	}
}
