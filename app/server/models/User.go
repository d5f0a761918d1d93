package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	// 基础信息
	Email string `gorm:"column:email;uniqueIndex"` // 邮箱，全局唯一，按原样存储（大小写敏感）
	Name  string `gorm:"column:name"`              // 显示名称

	// 登录认证相关
	Password string `gorm:"column:password"` // 密码，使用 argon2id 储存
}
