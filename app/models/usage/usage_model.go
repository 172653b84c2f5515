// Package usage 每日问事次数模型
package usage

// DailyUsage 每日用量计数
// 每个用户每天一行，只增不减，新的一天即新的一行
type DailyUsage struct {
	UserID    string `gorm:"primaryKey;type:varchar(64)"`
	UsageDate string `gorm:"primaryKey;type:varchar(10)"` // 民用日期 YYYY-MM-DD，按配置时区解析
	Count     int    `gorm:"default:0"`
}

// TableName 表名
func (DailyUsage) TableName() string {
	return "daily_usage"
}
