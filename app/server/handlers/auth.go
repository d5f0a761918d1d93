package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"inkwell-blog/app/server/authz"
	"inkwell-blog/app/server/sessions"

	"github.com/labstack/echo/v4"
)

// bearerToken 提取请求头里的会话令牌，缺失或格式不对时返回空串
func (a *App) bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	splits := strings.Split(authHeader, " ")
	if len(splits) != 2 {
		return ""
	}

	if strings.ToLower(splits[0]) != "bearer" {
		return ""
	}

	return splits[1]
}

// identity 解析当前请求的身份，解析不出来就是匿名，不会报错
func (a *App) identity(c echo.Context) sessions.Identity {
	return a.sessions.Resolve(c.Request().Context(), a.bearerToken(c))
}

// require 是所有路由的强制第一步：解析身份并通过授权关卡。
// 被拒绝时返回对应的状态码，路由在此之后才允许碰任何存储。
func (a *App) require(c echo.Context, op authz.Operation) (sessions.Identity, error, int) {
	ident := a.identity(c)

	decision := a.guard.Authorize(ident, op)
	if !decision.Allowed {
		switch decision.Reason {
		case authz.ReasonMustLogin:
			return ident, fmt.Errorf("login required"), http.StatusUnauthorized
		default:
			return ident, fmt.Errorf("forbidden"), http.StatusForbidden
		}
	}

	return ident, nil, http.StatusOK
}
