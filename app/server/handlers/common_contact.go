package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Contact 把联系表单的内容作为邮件发出去。
// 邮件属于一次性外发：失败只记日志，不影响请求结果，也没有任何状态可损坏。
func (a *App) Contact(c echo.Context) error {
	// 绑定请求体
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		return a.erMsg(c, http.StatusBadRequest, "name, email and message are required")
	}

	sent := true
	if err := a.mailer.Send(req.Name, req.Email, req.Phone, req.Message); err != nil {
		a.l.Error("failed to send contact mail", zap.Error(err))
		sent = false
	}

	return c.JSON(http.StatusOK, &ContactResponse{
		Sent: sent,
	})
}
