package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/course_go_server/internal/model/dto"
	"github.com/qs3c/course_go_server/internal/pkg/response"
	"github.com/qs3c/course_go_server/internal/service"
)

type SubscriberHandler struct {
	subscriberService *service.SubscriberService
}

func NewSubscriberHandler(subscriberService *service.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{
		subscriberService: subscriberService,
	}
}

// List 订阅者列表（最新的在前）
// GET /api/v1/subscribers
func (h *SubscriberHandler) List(c *gin.Context) {
	subscribers, err := h.subscriberService.List()
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, gin.H{"subscribers": subscribers})
}

// Create 签发订阅者
// POST /api/v1/subscribers
func (h *SubscriberHandler) Create(c *gin.Context) {
	var req dto.CreateSubscriberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "缺少必填字段")
		return
	}

	subscriber, err := h.subscriberService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLicenseKeyExists):
			response.ConflictError(c, err.Error())
		case errors.Is(err, service.ErrInvalidSubscriptionType):
			// 类型枚举在前端就应被限制住，走到这里按服务器错误处理
			response.ServerError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, gin.H{"subscriber": subscriber})
}
