package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/course_go_server/internal/model/dto"
	"github.com/qs3c/course_go_server/internal/pkg/response"
	"github.com/qs3c/course_go_server/internal/service"
)

type VideoHandler struct {
	videoService *service.VideoService
}

func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{
		videoService: videoService,
	}
}

// List 课程目录（最早的在前）
// GET /api/v1/videos
func (h *VideoHandler) List(c *gin.Context) {
	videos, err := h.videoService.List()
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, gin.H{"videos": videos})
}

// Create 登记视频
// POST /api/v1/videos
func (h *VideoHandler) Create(c *gin.Context) {
	var req dto.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "标题、描述和视频地址为必填项")
		return
	}

	video, err := h.videoService.Create(&req)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, gin.H{"video": video})
}
