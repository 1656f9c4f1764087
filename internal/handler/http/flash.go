package http

import (
	"github.com/gin-gonic/gin"

	"student-helper/internal/middleware"
)

// flashCookieName 存放一次性页面提示。读取后立即清除。
const flashCookieName = "flash"

func setFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookieName, message, 60, "/", "", false, true)
}

// takeFlash 读取并清除 flash 提示。没有提示时返回空串。
func takeFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookieName)
	if err != nil || message == "" {
		return ""
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	return message
}

// currentUsername 返回当前会话的用户名，匿名时为空串。
func currentUsername(c *gin.Context) string {
	if username, exists := c.Get(middleware.ContextUsernameKey); exists {
		if s, ok := username.(string); ok {
			return s
		}
	}
	return ""
}
