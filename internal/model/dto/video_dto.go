package dto

// CreateVideoRequest 创建视频请求
// thumbnail 与 duration 可选：缩略图默认为空（前端回退到占位图），时长默认 "0:00"
type CreateVideoRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
	Src         string `json:"src" binding:"required,url"`
	Thumbnail   string `json:"thumbnail"`
	Duration    string `json:"duration"`
}
