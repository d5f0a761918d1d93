package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"inkwell-blog/app/server/authz"
	"inkwell-blog/app/server/content"
	"inkwell-blog/app/server/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) articleInfo(article *models.Article) *ArticleInfo {
	return &ArticleInfo{
		ID:       article.ID,
		AuthorID: article.AuthorID,
		Title:    article.Title,
		Subtitle: article.Subtitle,
		Body:     article.Body,
		ImgURL:   article.ImgURL,
		Date:     article.Date,
	}
}

func (a *App) paramID(c echo.Context) (uint, error) {
	idUint64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(idUint64), nil
}

func (a *App) ArticleList(c echo.Context) error {
	// 授权关卡（公开操作，统一走关卡）
	if _, err, statusCode := a.require(c, authz.OpArticleList); err != nil {
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	articles, err := a.content.ListArticles(rctx)
	if err != nil {
		a.l.Error("failed to list articles", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resArticles := []ArticleInfo{}
	for i := range articles {
		resArticles = append(resArticles, *a.articleInfo(&articles[i]))
	}

	return c.JSON(http.StatusOK, resArticles)
}

func (a *App) ArticleGet(c echo.Context) error {
	// 授权关卡
	if _, err, statusCode := a.require(c, authz.OpArticleRead); err != nil {
		return a.er(c, statusCode)
	}

	id, err := a.paramID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	article, err := a.content.GetArticle(rctx, id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to get article", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, a.articleInfo(article))
}

func (a *App) ArticleCreate(c echo.Context) error {
	// 授权关卡（站长专属），在碰任何存储之前
	ident, err, statusCode := a.require(c, authz.OpArticleCreate)
	if err != nil {
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req ArticleInput
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 创建时所有字段必填
	if req.Title == nil || req.Subtitle == nil || req.Body == nil || req.ImgURL == nil {
		return a.erMsg(c, http.StatusBadRequest, "title, subtitle, body and img_url are required")
	}

	article, err := a.content.CreateArticle(rctx, ident.UserID(), &content.ArticleFields{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Body:     req.Body,
		ImgURL:   req.ImgURL,
	})
	if err != nil {
		if errors.Is(err, content.ErrDuplicateTitle) {
			return a.erMsg(c, http.StatusConflict, "article title already taken")
		}
		a.l.Error("failed to create article", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, a.articleInfo(article))
}

func (a *App) ArticleUpdate(c echo.Context) error {
	// 授权关卡（站长专属）
	if _, err, statusCode := a.require(c, authz.OpArticleUpdate); err != nil {
		return a.er(c, statusCode)
	}

	id, err := a.paramID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// 绑定请求体，未提供的字段保持原值
	var req ArticleInput
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	article, err := a.content.UpdateArticle(rctx, id, &content.ArticleFields{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Body:     req.Body,
		ImgURL:   req.ImgURL,
	})
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		if errors.Is(err, content.ErrDuplicateTitle) {
			return a.erMsg(c, http.StatusConflict, "article title already taken")
		}
		a.l.Error("failed to update article", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, a.articleInfo(article))
}

func (a *App) ArticleDelete(c echo.Context) error {
	// 授权关卡（站长专属）
	if _, err, statusCode := a.require(c, authz.OpArticleDelete); err != nil {
		return a.er(c, statusCode)
	}

	id, err := a.paramID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	if err := a.content.DeleteArticle(rctx, id); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to delete article", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}
