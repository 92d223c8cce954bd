package main

import (
	"fmt"
	"log"

	"github.com/qs3c/course_go_server/config"
	"github.com/qs3c/course_go_server/internal/api"
	"github.com/qs3c/course_go_server/internal/api/handler"
	"github.com/qs3c/course_go_server/internal/database"
	"github.com/qs3c/course_go_server/internal/repository"
	"github.com/qs3c/course_go_server/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化数据库
	db, err := database.New(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	log.Println("Database connected")

	// 初始化 Repository
	subscriberRepo := repository.NewSubscriberRepository(db)
	videoRepo := repository.NewVideoRepository(db)

	// 初始化 Service
	authService := service.NewAuthService(subscriberRepo)
	subscriberService := service.NewSubscriberService(subscriberRepo)
	videoService := service.NewVideoService(videoRepo)

	// 初始化 Handler
	authHandler := handler.NewAuthHandler(authService, cfg)
	subscriberHandler := handler.NewSubscriberHandler(subscriberService)
	videoHandler := handler.NewVideoHandler(videoService)
	muxHandler := handler.NewMuxHandler(&cfg.Mux)
	pageHandler := handler.NewPageHandler(authService, subscriberService, videoService)

	// 初始化 Router
	router := api.NewRouter(
		authHandler,
		subscriberHandler,
		videoHandler,
		muxHandler,
		pageHandler,
		cfg,
	)
	engine := router.Setup()

	// 启动服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
