package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/course_go_server/config"
	"github.com/qs3c/course_go_server/internal/api/middleware"
	"github.com/qs3c/course_go_server/internal/model/dto"
	"github.com/qs3c/course_go_server/internal/pkg/response"
	"github.com/qs3c/course_go_server/internal/service"
)

// 会话cookie有效期7天，与订阅本身的过期时间相互独立
const sessionMaxAge = 7 * 24 * 60 * 60

type AuthHandler struct {
	authService *service.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// Login 登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "用户名和License Key为必填项")
		return
	}

	subscriber, err := h.authService.Login(req.Username, req.LicenseKey)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.AuthError(c, err.Error())
		case errors.Is(err, service.ErrLicenseExpired):
			response.AuthError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	h.setSessionCookie(c, subscriber.ID, sessionMaxAge)

	response.Success(c, gin.H{
		"user": dto.UserInfo{
			ID:         subscriber.ID,
			Username:   subscriber.Username,
			Type:       string(subscriber.Type),
			ExpiryDate: subscriber.ExpiryDate.Format(time.RFC3339),
		},
	})
}

// Logout 退出登录
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	response.Success(c, gin.H{"message": "已退出登录"})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	secure := h.cfg.Server.Mode == "release"
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, value, maxAge, "/", "", secure, true)
}
