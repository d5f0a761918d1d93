package handlers

import (
	"errors"
	"net/http"

	"inkwell-blog/app/server/authz"
	"inkwell-blog/app/server/avatar"
	"inkwell-blog/app/server/content"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) CommentList(c echo.Context) error {
	// 授权关卡（公开操作）
	if _, err, statusCode := a.require(c, authz.OpCommentList); err != nil {
		return a.er(c, statusCode)
	}

	id, err := a.paramID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// 只返回这篇文章自己的评论
	comments, err := a.content.ListComments(rctx, id)
	if err != nil {
		a.l.Error("failed to list comments", zap.Uint("articleId", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resComments := []CommentInfo{}
	for _, comment := range comments {
		resComments = append(resComments, CommentInfo{
			ID:           comment.ID,
			AuthorID:     comment.AuthorID,
			ArticleID:    comment.ArticleID,
			Text:         comment.Text,
			AuthorName:   comment.Author.Name,
			AuthorAvatar: avatar.URL(comment.Author.Email, 100),
		})
	}

	return c.JSON(http.StatusOK, resComments)
}

func (a *App) CommentCreate(c echo.Context) error {
	// 授权关卡（需要登录），在碰任何存储之前
	ident, err, statusCode := a.require(c, authz.OpCommentCreate)
	if err != nil {
		return a.er(c, statusCode)
	}

	id, err := a.paramID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req CommentInput
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	if req.Text == nil || *req.Text == "" {
		return a.erMsg(c, http.StatusBadRequest, "text is required")
	}

	comment, err := a.content.AddComment(rctx, ident.UserID(), id, *req.Text)
	if err != nil {
		if errors.Is(err, content.ErrArticleNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to add comment", zap.Uint("articleId", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, &CommentInfo{
		ID:        comment.ID,
		AuthorID:  comment.AuthorID,
		ArticleID: comment.ArticleID,
		Text:      comment.Text,
	})
}
