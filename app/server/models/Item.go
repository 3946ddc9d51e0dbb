package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Item struct {
	gorm.Model

	// 装备基础信息
	Name   string          `gorm:"column:name;type:varchar(100)"`  // 装备名称
	Notes  string          `gorm:"column:notes;type:varchar(255)"` // 备注
	Weight decimal.Decimal `gorm:"column:weight;type:decimal(7,2)"` // 重量，固定精度（共 7 位，小数 2 位）

	// 所属用户
	UserID uint `gorm:"column:user_id;index;not null"` // 拥有者 ID ，装备只对拥有者可见
	User   User `gorm:"foreignKey:UserID"`             // 拥有者
}
