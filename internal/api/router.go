package api

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/course_go_server/config"
	"github.com/qs3c/course_go_server/internal/api/handler"
	"github.com/qs3c/course_go_server/internal/api/middleware"
)

type Router struct {
	authHandler       *handler.AuthHandler
	subscriberHandler *handler.SubscriberHandler
	videoHandler      *handler.VideoHandler
	muxHandler        *handler.MuxHandler
	pageHandler       *handler.PageHandler
	cfg               *config.Config
}

func NewRouter(
	authHandler *handler.AuthHandler,
	subscriberHandler *handler.SubscriberHandler,
	videoHandler *handler.VideoHandler,
	muxHandler *handler.MuxHandler,
	pageHandler *handler.PageHandler,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:       authHandler,
		subscriberHandler: subscriberHandler,
		videoHandler:      videoHandler,
		muxHandler:        muxHandler,
		pageHandler:       pageHandler,
		cfg:               cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(r.cfg.CORS))
	engine.Use(middleware.SessionGate())

	api := engine.Group("/api/v1")
	{
		// 认证
		auth := api.Group("/auth")
		{
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/logout", r.authHandler.Logout)
		}

		// 订阅者（后台）
		api.GET("/subscribers", r.subscriberHandler.List)
		api.POST("/subscribers", r.subscriberHandler.Create)

		// 课程目录
		api.GET("/videos", r.videoHandler.List)
		api.POST("/videos", r.videoHandler.Create)

		// Mux 资产查询
		api.GET("/mux/video", r.muxHandler.GetVideoAsset)
	}

	// 页面（经过 SessionGate）
	engine.SetFuncMap(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	})
	engine.LoadHTMLGlob(r.cfg.Web.TemplateGlob)
	engine.Static("/static", r.cfg.Web.StaticDir)
	engine.GET("/", r.pageHandler.Home)
	engine.GET("/login", r.pageHandler.Login)
	engine.GET("/course", r.pageHandler.Course)
	engine.GET("/admin", r.pageHandler.Admin)
	engine.GET("/admin/upload-video", r.pageHandler.UploadVideo)

	return engine
}
