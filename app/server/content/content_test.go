package content

import (
	"context"
	"testing"

	"inkwell-blog/app/server/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Article{}, &models.Comment{}))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, name string) *models.User {
	t.Helper()

	user := models.User{Email: email, Name: name, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func strPtr(s string) *string { return &s }

func fields(title, subtitle, body, imgURL string) *ArticleFields {
	return &ArticleFields{
		Title:    strPtr(title),
		Subtitle: strPtr(subtitle),
		Body:     strPtr(body),
		ImgURL:   strPtr(imgURL),
	}
}

func TestCreateAndGetArticle(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	r := New(db)
	ctx := context.Background()
	author := seedUser(t, db, "owner@x.com", "Owner")

	created, err := r.CreateArticle(ctx, author.ID, fields("Hello", "sub", "<p>body</p>", "https://img.example/1.png"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.NotEmpty(t, created.Date)

	// 读回的字段和写入一致（系统生成的 id/date 除外）
	got, err := r.GetArticle(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Hello", got.Title)
	require.Equal(t, "sub", got.Subtitle)
	require.Equal(t, "<p>body</p>", got.Body)
	require.Equal(t, "https://img.example/1.png", got.ImgURL)
	require.Equal(t, author.ID, got.AuthorID)
}

func TestCreateArticle_DuplicateTitle(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	r := New(db)
	ctx := context.Background()
	author := seedUser(t, db, "owner@x.com", "Owner")

	_, err := r.CreateArticle(ctx, author.ID, fields("Hello", "a", "b", "c"))
	require.NoError(t, err)

	_, err = r.CreateArticle(ctx, author.ID, fields("Hello", "x", "y", "z"))
	require.ErrorIs(t, err, ErrDuplicateTitle)

	// 失败的创建不会留下半个实体
	var count int64
	require.NoError(t, db.Model(&models.Article{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestListArticles_InsertionOrder(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	r := New(db)
	ctx := context.Background()
	author := seedUser(t, db, "owner@x.com", "Owner")

	for _, title := range []string{"first", "second", "third"} {
		_, err := r.CreateArticle(ctx, author.ID, fields(title, "s", "b", "i"))
		require.NoError(t, err)
	}

	articles, err := r.ListArticles(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 3)
	require.Equal(t, "first", articles[0].Title)
	require.Equal(t, "second", articles[1].Title)
	require.Equal(t, "third", articles[2].Title)
}

func TestUpdateArticle(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	r := New(db)
	ctx := context.Background()
	author := seedUser(t, db, "owner@x.com", "Owner")

	created, err := r.CreateArticle(ctx, author.ID, fields("Hello", "old sub", "old body", "old img"))
	require.NoError(t, err)

	// 只更新给定的字段，其余保持原值
	updated, err := r.UpdateArticle(ctx, created.ID, &ArticleFields{
		Subtitle: strPtr("new sub"),
	})
	require.NoError(t, err)
	require.Equal(t, "Hello", updated.Title)
	require.Equal(t, "new sub", updated.Subtitle)
	require.Equal(t, "old body", updated.Body)

	_, err = r.UpdateArticle(ctx, 9999, &ArticleFields{Subtitle: strPtr("x")})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteArticle(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	r := New(db)
	ctx := context.Background()
	author := seedUser(t, db, "owner@x.com", "Owner")

	created, err := r.CreateArticle(ctx, author.ID, fields("Hello", "s", "b", "i"))
	require.NoError(t, err)

	require.NoError(t, r.DeleteArticle(ctx, created.ID))

	_, err = r.GetArticle(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, r.DeleteArticle(ctx, created.ID), ErrNotFound)
}

func TestDeleteArticle_CascadesComments(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	r := New(db)
	ctx := context.Background()
	author := seedUser(t, db, "owner@x.com", "Owner")
	commenter := seedUser(t, db, "reader@x.com", "Reader")

	keep, err := r.CreateArticle(ctx, author.ID, fields("keep", "s", "b", "i"))
	require.NoError(t, err)
	doomed, err := r.CreateArticle(ctx, author.ID, fields("doomed", "s", "b", "i"))
	require.NoError(t, err)

	_, err = r.AddComment(ctx, commenter.ID, keep.ID, "stays")
	require.NoError(t, err)
	_, err = r.AddComment(ctx, commenter.ID, doomed.ID, "goes away")
	require.NoError(t, err)

	require.NoError(t, r.DeleteArticle(ctx, doomed.ID))

	// 被删文章的评论一起消失，其它文章的评论不受影响
	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Where("article_id = ?", doomed.ID).Count(&count).Error)
	require.EqualValues(t, 0, count)

	comments, err := r.ListComments(ctx, keep.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
}

func TestAddComment_ArticleNotFound(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	r := New(db)
	ctx := context.Background()
	commenter := seedUser(t, db, "reader@x.com", "Reader")

	_, err := r.AddComment(ctx, commenter.ID, 9999, "into the void")
	require.ErrorIs(t, err, ErrArticleNotFound)

	// 失败的写入不留痕迹
	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestListComments_FiltersByArticle(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	r := New(db)
	ctx := context.Background()
	author := seedUser(t, db, "owner@x.com", "Owner")
	commenter := seedUser(t, db, "reader@x.com", "Reader")

	first, err := r.CreateArticle(ctx, author.ID, fields("first", "s", "b", "i"))
	require.NoError(t, err)
	second, err := r.CreateArticle(ctx, author.ID, fields("second", "s", "b", "i"))
	require.NoError(t, err)

	_, err = r.AddComment(ctx, commenter.ID, first.ID, "on first")
	require.NoError(t, err)
	_, err = r.AddComment(ctx, commenter.ID, second.ID, "on second")
	require.NoError(t, err)
	_, err = r.AddComment(ctx, commenter.ID, first.ID, "on first again")
	require.NoError(t, err)

	// 只返回这篇文章自己的评论，不是整张评论表
	comments, err := r.ListComments(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	for _, comment := range comments {
		require.Equal(t, first.ID, comment.ArticleID)
	}

	// 评论者信息一并带出
	require.Equal(t, "Reader", comments[0].Author.Name)
}
