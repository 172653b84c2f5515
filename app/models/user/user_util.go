package user

import "strings"

// MakeReferralCode 由用户 ID 派生专属推广码
// 取 ID 末六位转大写，前缀固定 LAI-
func MakeReferralCode(userID string) string {
	suffix := userID
	if runes := []rune(userID); len(runes) > 6 {
		suffix = string(runes[len(runes)-6:])
	}
	return "LAI-" + strings.ToUpper(suffix)
}
