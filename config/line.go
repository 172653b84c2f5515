package config

import "yizhan/pkg/config"

func init() {
	config.Add("line", func() map[string]interface{} {
		return map[string]interface{}{

			// webhook 签名校验密钥
			"channel_secret": config.Env("LINE_CHANNEL_SECRET", ""),

			// 调用回复接口的访问令牌
			"channel_token": config.Env("LINE_CHANNEL_TOKEN", ""),

			// 接口地址，留空使用官方地址
			"api_base": config.Env("LINE_API_BASE", ""),

			// 单次请求超时（秒）
			"timeout": config.Env("LINE_TIMEOUT", 10),

			// 请求重试次数
			"max_retries": config.Env("LINE_MAX_RETRIES", 2),
		}
	})
}
