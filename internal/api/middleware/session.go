package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CookieName 会话cookie名，值为订阅者ID
const CookieName = "auth-token"

// LoginPath 唯一的公开页面
const LoginPath = "/login"

// HomePath 登录后的默认落地页
const HomePath = "/"

// SessionGate 页面级会话门控。
// 只看cookie是否存在，不查库也不校验过期——真正的校验发生在
// 登录接口和需要解引用订阅者的地方。API和静态资源不经过该检查。
func SessionGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api") ||
			strings.HasPrefix(path, "/static") ||
			path == "/favicon.ico" {
			c.Next()
			return
		}

		_, err := c.Cookie(CookieName)
		hasSession := err == nil
		isPublic := path == LoginPath

		if !hasSession && !isPublic {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		if hasSession && isPublic {
			c.Redirect(http.StatusFound, HomePath)
			c.Abort()
			return
		}

		c.Next()
	}
}
