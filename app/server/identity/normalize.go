package identity

import "strings"

// NormalizeEmail 将邮箱的 domain 部分统一转为小写（ local 部分保持原样）
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}

	return email[:at+1] + strings.ToLower(email[at+1:])
}
