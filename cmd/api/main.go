package main

import (
	"fmt"
	"net/http"
	"time"

	"byfort-go/internal/api/handler"
	"byfort-go/internal/api/middleware"
	"byfort-go/internal/api/router"
	"byfort-go/internal/config"
	"byfort-go/internal/repository"
	"byfort-go/internal/service"
	"byfort-go/pkg/logger"

	_ "byfort-go/api/openapi"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title Byfort API
// @version 1.0
// @description 短视频社交平台 API 服务
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@byfort.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host 127.0.0.1:8000
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 输入格式: Bearer {token}

func main() {
	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化内存存储
	store := repository.NewStore()

	// 写入演示数据（可通过配置关闭）
	if cfg.App.SeedDemo {
		if err := store.Seed(); err != nil {
			logger.Fatal("Failed to seed demo data", zap.Error(err))
		}
		logger.Info("Demo data seeded")
	}

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	// 创建Gin路由器（不使用默认中间件）
	r := gin.New()

	// 使用自定义中间件
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	// 初始化依赖（Repository -> Service -> Handler）
	userRepo := repository.NewUserRepository(store)
	videoRepo := repository.NewVideoRepository(store)
	likeRepo := repository.NewLikeRepository(store)
	commentRepo := repository.NewCommentRepository(store)
	followRepo := repository.NewFollowRepository(store)
	statsRepo := repository.NewStatsRepository(store)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, videoRepo)
	videoService := service.NewVideoService(videoRepo, userRepo)
	likeService := service.NewLikeService(likeRepo, videoRepo)
	commentService := service.NewCommentService(commentRepo, videoRepo, userRepo)
	followService := service.NewFollowService(followRepo, userRepo)
	adminService := service.NewAdminService(statsRepo, videoRepo, userRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	videoHandler := handler.NewVideoHandler(videoService)
	likeHandler := handler.NewLikeHandler(likeService)
	commentHandler := handler.NewCommentHandler(commentService)
	followHandler := handler.NewFollowHandler(followService)
	adminHandler := handler.NewAdminHandler(adminService)

	// 管理员中间件（需要查存储层获取管理员标记）
	adminMiddleware := middleware.AdminRequired(func(userID int64) (bool, error) {
		user, err := userRepo.GetByID(userID)
		if err != nil {
			return false, err
		}
		return user.IsAdmin, nil
	})

	// 注册基础路由
	r.GET("/healthz", healthCheckHandler)
	r.GET("/", rootHandler)

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册业务路由
	router.Setup(r, authHandler, userHandler, videoHandler, likeHandler, commentHandler, followHandler, adminHandler, adminMiddleware)

	// 启动HTTP服务器
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)

	logger.Info("Server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// healthCheckHandler 健康检查接口
func healthCheckHandler(c *gin.Context) {
	cfg := config.Get()

	logger.Debug("Health check requested", zap.String("ip", c.ClientIP()))

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   cfg.App.Name,
		"version":   cfg.App.Version,
		"mode":      cfg.App.Mode,
	})
}

// rootHandler 根路径处理器
func rootHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome to %s API", cfg.App.Name),
		"project": cfg.App.Name,
		"version": cfg.App.Version,
		"mode":    cfg.App.Mode,
		"docs":    fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.App.Port),
	})
}
