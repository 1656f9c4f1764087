package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"student-helper/internal/middleware"
	"student-helper/internal/service"
)

// AuthHandler 封装了注册 / 登录 / 注销页面的 HTTP 处理逻辑
type AuthHandler struct {
	authService      *service.AuthService
	sessionMaxAgeSec int
}

// NewAuthHandler 创建 AuthHandler 实例。
// sessionMaxAgeSec 为会话 cookie 的存活秒数，应与 token 过期时间一致。
func NewAuthHandler(authService *service.AuthService, sessionMaxAgeSec int) *AuthHandler {
	return &AuthHandler{authService: authService, sessionMaxAgeSec: sessionMaxAgeSec}
}

// credentialsForm 定义注册和登录共用的表单字段
type credentialsForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// ShowRegister 渲染注册页
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	h.renderRegister(c, takeFlash(c))
}

// Register 处理注册表单提交
func (h *AuthHandler) Register(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		logrus.WithError(err).Warn("Handler.Register: invalid form")
		h.renderRegister(c, "用户名和密码为必填项")
		return
	}
	username := strings.TrimSpace(form.Username)

	user, token, err := h.authService.Register(c.Request.Context(), username, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			h.renderRegister(c, "用户名和密码为必填项")
		case errors.Is(err, service.ErrUsernameTaken):
			h.renderRegister(c, "用户名已存在，请换一个")
		default:
			logrus.WithError(err).Error("Handler.Register: internal error during registration")
			h.renderRegister(c, "注册失败，请稍后重试")
		}
		return
	}

	// 注册成功即登录
	h.setSessionCookie(c, token)
	setFlash(c, "注册成功，已登录")
	logrus.WithField("user_id", user.ID).Info("Handler.Register: user registered and logged in")
	c.Redirect(http.StatusFound, "/")
}

// ShowLogin 渲染登录页
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	h.renderLogin(c, takeFlash(c))
}

// Login 处理登录表单提交
func (h *AuthHandler) Login(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		logrus.WithError(err).Warn("Handler.Login: invalid form")
		h.renderLogin(c, "用户名或密码错误")
		return
	}
	username := strings.TrimSpace(form.Username)

	user, token, err := h.authService.Login(c.Request.Context(), username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			h.renderLogin(c, "用户名或密码错误")
		} else {
			logrus.WithError(err).Error("Handler.Login: internal error during login")
			h.renderLogin(c, "登录失败，请稍后重试")
		}
		return
	}

	h.setSessionCookie(c, token)
	setFlash(c, "登录成功")
	logrus.WithField("user_id", user.ID).Info("Handler.Login: user logged in")
	c.Redirect(http.StatusFound, "/")
}

// Logout 清除会话 cookie。对匿名用户同样成功。
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	setFlash(c, "已注销")
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.SessionCookieName, token, h.sessionMaxAgeSec, "/", "", false, true)
}

func (h *AuthHandler) renderRegister(c *gin.Context, flash string) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"CurrentMain": "",
		"CurrentSub":  "",
		"Username":    currentUsername(c),
		"Flash":       flash,
	})
}

func (h *AuthHandler) renderLogin(c *gin.Context, flash string) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"CurrentMain": "",
		"CurrentSub":  "",
		"Username":    currentUsername(c),
		"Flash":       flash,
	})
}
