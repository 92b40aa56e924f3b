package router

import (
	"byfort-go/internal/api/handler"
	"byfort-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	videoHandler *handler.VideoHandler,
	likeHandler *handler.LikeHandler,
	commentHandler *handler.CommentHandler,
	followHandler *handler.FollowHandler,
	adminHandler *handler.AdminHandler,
	adminMiddleware gin.HandlerFunc,
) {
	api := r.Group("/api")

	// --- 认证模块 ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		authRequired := auth.Group("", middleware.AuthRequired())
		{
			authRequired.GET("/me", authHandler.Me)
		}
	}

	// --- 视频模块 ---
	videos := api.Group("/videos")
	{
		// 公开接口（不需要登录）
		videos.GET("", videoHandler.GetFeed)
		videos.GET("/:id", videoHandler.GetVideo)
		videos.GET("/:id/comments", commentHandler.List)

		videosAuth := videos.Group("", middleware.AuthRequired())
		{
			videosAuth.POST("", videoHandler.Create)
			videosAuth.PUT("/:id", videoHandler.Update)
			videosAuth.DELETE("/:id", videoHandler.Delete)

			videosAuth.POST("/:id/like", likeHandler.Like)
			videosAuth.DELETE("/:id/like", likeHandler.Unlike)
			videosAuth.POST("/:id/comments", commentHandler.Create)
		}
	}

	// --- 用户模块 ---
	users := api.Group("/users")
	{
		users.GET("/:id", userHandler.GetUser)
		users.GET("/:id/videos", userHandler.GetUserVideos)
		users.GET("/:id/followers", followHandler.GetFollowers)
		users.GET("/:id/following", followHandler.GetFollowing)

		usersAuth := users.Group("", middleware.AuthRequired())
		{
			usersAuth.PUT("/me", userHandler.UpdateMe)
			usersAuth.POST("/:id/follow", followHandler.Follow)
			usersAuth.DELETE("/:id/follow", followHandler.Unfollow)
		}
	}

	// --- 评论模块 ---
	comments := api.Group("/comments", middleware.AuthRequired())
	{
		comments.DELETE("/:id", commentHandler.Delete)
	}

	// --- 管理后台 ---
	admin := api.Group("/admin", middleware.AuthRequired(), adminMiddleware)
	{
		admin.GET("/stats", adminHandler.GetStats)
		admin.GET("/trending", adminHandler.GetTrendingVideos)
		admin.GET("/creators", adminHandler.GetTopCreators)
	}
}
