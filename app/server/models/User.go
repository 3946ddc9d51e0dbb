package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	// 基础信息
	Email string `gorm:"column:email;uniqueIndex"` // 邮箱，全局唯一，作为登录标识（ domain 部分统一小写储存）
	Name  string `gorm:"column:name"`              // 显示名称

	// 账户状态与权限
	IsActive    bool `gorm:"column:is_active"`    // 是否启用：停用的账户无法登录或调用接口
	IsStaff     bool `gorm:"column:is_staff"`     // 是否为运营人员
	IsSuperuser bool `gorm:"column:is_superuser"` // 是否为超级用户

	// 登录与授权认证相关
	Password string `gorm:"column:password"` // 密码，使用 argon2id 储存

	// 连接模型时使用
	Items []Item `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"` // 用户拥有的装备，删除用户时级联删除
}
