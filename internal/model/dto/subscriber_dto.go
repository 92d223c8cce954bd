package dto

// CreateSubscriberRequest 创建订阅者请求
type CreateSubscriberRequest struct {
	LicenseKey string `json:"licenseKey" binding:"required"`
	Username   string `json:"username" binding:"required,min=1,max=50"`
	Type       string `json:"type" binding:"required"`
	TxHash     string `json:"txHash" binding:"required"`
}
