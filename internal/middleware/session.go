package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
)

// SessionCookieName 是存放会话 token 的 cookie 名。
const SessionCookieName = "session"

// Gin 上下文中存放会话身份的键。
const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
)

// CurrentUser 返回一个 Gin 中间件，尝试从会话 cookie 恢复登录身份。
// 无 cookie 或 token 无效时按匿名处理，不会中断请求。
func CurrentUser(sessionSecret string) gin.HandlerFunc {
	if sessionSecret == "" {
		panic("session secret cannot be empty for CurrentUser middleware")
	}

	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookieName)
		if err != nil || tokenStr == "" {
			c.Next()
			return
		}

		userID, username, err := validateSessionToken(tokenStr, sessionSecret)
		if err != nil {
			// 过期或被篡改的会话视为匿名
			logrus.WithError(err).Debug("Session middleware: invalid session cookie")
			c.Next()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Set(ContextUsernameKey, username)
		logrus.WithField("user_id", userID).Debug("Session middleware: user authenticated via cookie")
		c.Next()
	}
}

// RequireAuth 返回一个 Gin 中间件，要求请求携带有效会话，否则返回 401。
// 必须在 CurrentUser 之后使用。
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(ContextUserIDKey); !exists {
			logrus.Warn("Auth middleware: unauthenticated request rejected")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// validateSessionToken 解析并验证会话 token，返回其中的用户身份。
func validateSessionToken(tokenStr, secret string) (uint, string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, "", fmt.Errorf("session token validation failed: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", errors.New("invalid session token or claims type")
	}

	// JWT 数字默认为 float64，需要安全转换为 uint
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok || userIDFloat <= 0 || userIDFloat != float64(uint(userIDFloat)) {
		return 0, "", errors.New("session token: invalid user_id claim")
	}
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return 0, "", errors.New("session token: missing username claim")
	}

	return uint(userIDFloat), username, nil
}
