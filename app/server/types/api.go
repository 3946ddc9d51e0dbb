package types

import "github.com/shopspring/decimal"

type ErrorMessage struct {
	Message *string           `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"` // 字段级别的校验失败信息
}

type RegisterRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
}

type LoginRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type LoginToken struct {
	Token *string `json:"token"`
}

type UserInfo struct {
	Id      *uint   `json:"id"`
	Email   *string `json:"email"`
	Name    *string `json:"name"`
	IsStaff *bool   `json:"is_staff,omitempty"`
}

type ItemInfoInput struct {
	Name  *string `json:"name"`
	Notes *string `json:"notes"`
	// 接受数字或字符串形式的小数
	Weight *decimal.Decimal `json:"weight"`
}

type ItemInfoWithID struct {
	Id    *uint   `json:"id"`
	Name  *string `json:"name"`
	Notes *string `json:"notes"`
	// 固定两位小数的字符串表示，避免精度损失
	Weight *string `json:"weight"`
}
