package dto

// LoginRequest 登录请求
type LoginRequest struct {
	Username   string `json:"username" binding:"required"`
	LicenseKey string `json:"licenseKey" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	User *UserInfo `json:"user"`
}

// UserInfo 登录成功后返回给前端的订阅者信息
type UserInfo struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Type       string `json:"type"`
	ExpiryDate string `json:"expiryDate"`
}
