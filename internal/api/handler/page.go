package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/course_go_server/internal/api/middleware"
	"github.com/qs3c/course_go_server/internal/model"
	"github.com/qs3c/course_go_server/internal/pkg/license"
	"github.com/qs3c/course_go_server/internal/service"
)

// PageHandler 服务端渲染页面
type PageHandler struct {
	authService       *service.AuthService
	subscriberService *service.SubscriberService
	videoService      *service.VideoService
}

func NewPageHandler(
	authService *service.AuthService,
	subscriberService *service.SubscriberService,
	videoService *service.VideoService,
) *PageHandler {
	return &PageHandler{
		authService:       authService,
		subscriberService: subscriberService,
		videoService:      videoService,
	}
}

// Home 落地页
// GET /
func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"User": h.currentSubscriber(c),
	})
}

// Login 登录页（唯一公开页面）
// GET /login
func (h *PageHandler) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

// Course 课程页：左侧目录 + 当前视频 + 上一个/下一个
// GET /course?v=<videoID>
func (h *PageHandler) Course(c *gin.Context) {
	videos, err := h.videoService.List()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load videos")
		return
	}

	var selected *model.Video
	if id := c.Query("v"); id != "" {
		for i := range videos {
			if videos[i].ID == id {
				selected = &videos[i]
				break
			}
		}
	}
	if selected == nil && len(videos) > 0 {
		selected = &videos[0]
	}

	var prev, next *model.Video
	if selected != nil {
		prev, next, _ = h.videoService.Neighbors(selected.ID)
	}

	c.HTML(http.StatusOK, "course.html", gin.H{
		"User":     h.currentSubscriber(c),
		"Videos":   videos,
		"Selected": selected,
		"Prev":     prev,
		"Next":     next,
	})
}

// Admin 后台：订阅者列表 + 签发表单（附带预生成的License Key）
// GET /admin
func (h *PageHandler) Admin(c *gin.Context) {
	subscribers, err := h.subscriberService.List()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load subscribers")
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"User":        h.currentSubscriber(c),
		"Subscribers": subscribers,
		"LicenseKey":  license.Generate(),
	})
}

// UploadVideo 后台视频登记页
// GET /admin/upload-video
func (h *PageHandler) UploadVideo(c *gin.Context) {
	c.HTML(http.StatusOK, "upload_video.html", gin.H{
		"User": h.currentSubscriber(c),
	})
}

// currentSubscriber 解引用会话cookie。
// 门控只检查cookie是否存在，这里才真正查库——
// 伪造或失效的ID在此退化为未登录展示。
func (h *PageHandler) currentSubscriber(c *gin.Context) *model.Subscriber {
	id, err := c.Cookie(middleware.CookieName)
	if err != nil || id == "" {
		return nil
	}
	subscriber, err := h.authService.GetSubscriber(id)
	if err != nil {
		return nil
	}
	return subscriber
}
