package handlers

import (
	"errors"
	"net/http"

	"inkwell-blog/app/server/avatar"
	"inkwell-blog/app/server/credstore"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) AuthRegister(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 基本校验
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return a.erMsg(c, http.StatusBadRequest, "email, password and name are required")
	}

	// 创建用户，重复邮箱由凭据存储裁决
	user, err := a.cred.Register(rctx, req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, credstore.ErrEmailTaken) {
			return a.erMsg(c, http.StatusConflict, "user already exists")
		}
		a.l.Error("failed to register user", zap.String("email", req.Email), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 注册即登录
	token, err := a.sessions.Start(rctx, user.ID)
	if err != nil {
		a.l.Error("failed to start session", zap.Uint("id", user.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, &TokenResponse{
		Token:  token,
		Name:   user.Name,
		Avatar: avatar.URL(user.Email, 100),
	})
}

func (a *App) AuthLogin(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	if req.Email == "" || req.Password == "" {
		return a.erMsg(c, http.StatusBadRequest, "email and password are required")
	}

	// 查找用户。查不到和密码不对返回同样的结果，不暴露哪一步失败
	user, err := a.cred.FindByEmail(rctx, req.Email)
	if err != nil {
		if errors.Is(err, credstore.ErrUserNotFound) {
			return a.er(c, http.StatusUnauthorized)
		}
		a.l.Error("failed to find user", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 校验密码
	if !a.cred.Verify(req.Password, user.Password) {
		return a.er(c, http.StatusUnauthorized)
	}

	// 开启会话
	token, err := a.sessions.Start(rctx, user.ID)
	if err != nil {
		a.l.Error("failed to start session", zap.Uint("id", user.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, &TokenResponse{
		Token:  token,
		Name:   user.Name,
		Avatar: avatar.URL(user.Email, 100),
	})
}

func (a *App) AuthLogout(c echo.Context) error {
	rctx := c.Request().Context()

	// 结束会话，无效令牌也按成功处理
	if err := a.sessions.End(rctx, a.bearerToken(c)); err != nil {
		a.l.Error("failed to end session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}
