// Package config 站点配置信息
//
// 各配置文件通过 init() 向 pkg/config 注册，
// main 里显式引用本包即可完成全部注册
package config

// Initialize 触发加载本目录下所有 init 注册的配置
func Initialize() {
	// 各文件的 init() 已完成注册，这里无需额外逻辑
}
