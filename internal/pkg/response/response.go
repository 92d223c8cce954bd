package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 错误码对应的默认消息
var statusMessages = map[int]string{
	http.StatusBadRequest:          "参数错误",
	http.StatusUnauthorized:        "认证失败",
	http.StatusNotFound:            "资源不存在",
	http.StatusConflict:            "资源冲突",
	http.StatusInternalServerError: "服务器内部错误",
}

// Success 成功响应，data 中的字段与 success 标记合并输出
func Success(c *gin.Context, data gin.H) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Error 错误响应，统一为 {"error": <message>} 加对应HTTP状态码
func Error(c *gin.Context, status int, message string) {
	if message == "" {
		message = statusMessages[status]
	}
	c.JSON(status, gin.H{"error": message})
}

// ParamError 参数错误
func ParamError(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// AuthError 认证失败
func AuthError(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFoundError 资源不存在
func NotFoundError(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// ConflictError 唯一约束冲突
func ConflictError(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// ServerError 服务器错误
func ServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// UpstreamError 第三方接口错误，状态码原样透传
func UpstreamError(c *gin.Context, status int, message string) {
	Error(c, status, message)
}
