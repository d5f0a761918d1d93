package models

import "gorm.io/gorm"

type Comment struct {
	gorm.Model

	AuthorID  uint   `gorm:"column:author_id;index"`  // 评论者的用户 ID
	ArticleID uint   `gorm:"column:article_id;index"` // 所属文章 ID
	Text      string `gorm:"column:text;type:text"`   // 评论内容

	// 连接模型时使用
	Author  User    `gorm:"foreignKey:AuthorID"`                              // 评论者
	Article Article `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"` // 所属文章，文章删除时级联清理
}
