package divination

import (
	"yizhan/pkg/app"
)

// Clock 时间边界
// 核心流程不直接读墙钟，民用日期与当前小时都经由此接口解析，
// 时区固定（见 config/app.go 的 timezone 配置）
type Clock interface {
	// Today 返回配置时区下的当天日期，格式 YYYY-MM-DD
	Today() string
	// Hour 返回配置时区下的当前整点小时（0-23）
	Hour() int
}

// appClock 默认时钟，基于应用配置的时区
type appClock struct{}

// NewClock 创建默认时钟
func NewClock() Clock {
	return appClock{}
}

func (appClock) Today() string {
	return app.TimenowInTimezone().Format("2006-01-02")
}

func (appClock) Hour() int {
	return app.TimenowInTimezone().Hour()
}
