package handlers

import (
	"inkwell-blog/app/server/authz"
	"inkwell-blog/app/server/content"
	"inkwell-blog/app/server/credstore"
	"inkwell-blog/app/server/mail"
	"inkwell-blog/app/server/sessions"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type App struct {
	l        *zap.Logger         // 日志
	sessions *sessions.Manager   // 会话管理
	guard    *authz.Guard        // 授权决策，所有路由共用的唯一关卡
	cred     *credstore.Store    // 凭据存储
	content  *content.Repository // 内容存储
	mailer   *mail.Mailer        // 联系邮件，可以为 nil （停用）
}

func NewApp(l *zap.Logger, s *sessions.Manager, g *authz.Guard, cred *credstore.Store, cont *content.Repository, m *mail.Mailer) *App {
	return &App{
		l:        l,
		sessions: s,
		guard:    g,
		cred:     cred,
		content:  cont,
		mailer:   m,
	}
}

func (a *App) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/register", a.AuthRegister)
	api.POST("/login", a.AuthLogin)
	api.POST("/logout", a.AuthLogout)

	api.GET("/articles", a.ArticleList)
	api.POST("/articles", a.ArticleCreate)
	api.GET("/articles/:id", a.ArticleGet)
	api.PUT("/articles/:id", a.ArticleUpdate)
	api.DELETE("/articles/:id", a.ArticleDelete)

	api.GET("/articles/:id/comments", a.CommentList)
	api.POST("/articles/:id/comments", a.CommentCreate)

	api.POST("/contact", a.Contact)
	api.GET("/healthcheck", a.Healthcheck)
}
