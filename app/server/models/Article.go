package models

import "gorm.io/gorm"

type Article struct {
	gorm.Model

	// 文章的基础信息
	AuthorID uint   `gorm:"column:author_id;index"`   // 作者的用户 ID
	Title    string `gorm:"column:title;uniqueIndex"` // 标题，全局唯一
	Subtitle string `gorm:"column:subtitle"`          // 副标题
	Body     string `gorm:"column:body;type:text"`    // 正文（富文本，按不可信的原样字符串存储，由渲染层负责转义）
	ImgURL   string `gorm:"column:img_url"`           // 封面图地址
	Date     string `gorm:"column:date"`              // 创建日期的展示字符串（沿用旧数据格式，不可排序）

	// 连接模型时使用
	Author User `gorm:"foreignKey:AuthorID"` // 作者
}
