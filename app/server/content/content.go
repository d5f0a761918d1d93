package content

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inkwell-blog/app/server/constants"
	"inkwell-blog/app/server/models"

	"gorm.io/gorm"
)

var (
	// ErrNotFound 表示指定的文章不存在
	ErrNotFound = errors.New("article not found")
	// ErrDuplicateTitle 表示标题已被占用
	ErrDuplicateTitle = errors.New("article title already taken")
	// ErrArticleNotFound 表示评论指向的文章不存在
	ErrArticleNotFound = errors.New("comment target article not found")
)

// ArticleFields 是创建/更新文章时可写的字段。
// 更新时为 nil 的字段保持原值。
type ArticleFields struct {
	Title    *string
	Subtitle *string
	Body     *string
	ImgURL   *string
}

// Repository 拥有文章和评论两类实体及它们之间的关系。
// 调用方必须先通过授权决策，这里不再检查身份。
type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) mapFields(fields *ArticleFields, article *models.Article) {
	if fields.Title != nil {
		article.Title = *fields.Title
	}
	if fields.Subtitle != nil {
		article.Subtitle = *fields.Subtitle
	}
	if fields.Body != nil {
		article.Body = *fields.Body
	}
	if fields.ImgURL != nil {
		article.ImgURL = *fields.ImgURL
	}
}

// CreateArticle 写入新文章。标题唯一性由唯一索引兜底，
// 并发创建同名文章时数据库裁决，恰好一个成功。
func (r *Repository) CreateArticle(ctx context.Context, authorID uint, fields *ArticleFields) (*models.Article, error) {
	article := models.Article{
		AuthorID: authorID,
		Date:     time.Now().Format(constants.ArticleDateFormat),
	}
	r.mapFields(fields, &article)

	if err := r.db.WithContext(ctx).Create(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateTitle
		}
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	return &article, nil
}

func (r *Repository) GetArticle(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.WithContext(ctx).First(&article, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return &article, nil
}

// ListArticles 返回全部文章，按 id 升序（即插入顺序）
func (r *Repository) ListArticles(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	return articles, nil
}

func (r *Repository) UpdateArticle(ctx context.Context, id uint, fields *ArticleFields) (*models.Article, error) {
	var article models.Article
	if err := r.db.WithContext(ctx).First(&article, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	r.mapFields(fields, &article)

	if err := r.db.WithContext(ctx).Save(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateTitle
		}
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	return &article, nil
}

// DeleteArticle 删除文章并级联清理它的评论，两步在同一个事务里完成。
// 策略见 DESIGN.md ：选择级联删除而不是禁止删除。
func (r *Repository) DeleteArticle(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var article models.Article
		if err := tx.First(&article, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get article: %w", err)
		}

		if err := tx.Delete(&models.Comment{}, "article_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete comments: %w", err)
		}

		if err := tx.Delete(&article).Error; err != nil {
			return fmt.Errorf("failed to delete article: %w", err)
		}

		return nil
	})
}

// AddComment 为指定文章添加评论。文章存在性检查和写入在同一个事务里，
// 不会留下指向不存在文章的评论。
func (r *Repository) AddComment(ctx context.Context, authorID, articleID uint, text string) (*models.Comment, error) {
	comment := models.Comment{
		AuthorID:  authorID,
		ArticleID: articleID,
		Text:      text,
	}

	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var article models.Article
		if err := tx.First(&article, "id = ?", articleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArticleNotFound
			}
			return fmt.Errorf("failed to get article: %w", err)
		}

		if err := tx.Create(&comment).Error; err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return &comment, nil
}

// ListComments 返回指定文章的评论（带评论者信息），按 id 升序。
// 只返回属于这篇文章的评论。
func (r *Repository) ListComments(ctx context.Context, articleID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Order("id ASC").
		Find(&comments, "article_id = ?", articleID).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}
