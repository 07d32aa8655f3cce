package router

import (
	"utube/internal/api/handler"
	"utube/internal/api/middleware"
	"utube/internal/api/response"
	"utube/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers 路由依赖的全部 handler
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Video        *handler.VideoHandler
	Comment      *handler.CommentHandler
	Like         *handler.LikeHandler
	Subscription *handler.SubscriptionHandler
	View         *handler.ViewHandler
	Health       *handler.HealthHandler
}

// New 创建 Gin 引擎并注册中间件与全部路由
func New(jwtCfg *config.JWTConfig, loginLimiter middleware.Limiter, h Handlers) *gin.Engine {
	handler.RegisterValidation()

	r := gin.New()
	r.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
		middleware.Authenticate(jwtCfg),
	)

	r.NoRoute(response.NotFound)
	r.NoMethod(response.NotFound)

	r.GET("/", h.Health.Root)
	r.GET("/healthz", h.Health.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	Setup(r, loginLimiter, h)
	return r
}

// Setup 注册所有业务路由
func Setup(r gin.IRouter, loginLimiter middleware.Limiter, h Handlers) {
	// --- 认证模块 ---
	auth := r.Group("/auth")
	{
		auth.POST("/token", middleware.LoginThrottle(loginLimiter), h.Auth.Token)
	}

	// --- 用户模块 ---
	users := r.Group("/users")
	{
		users.POST("", h.User.Register)
		users.GET("", h.User.List)

		self := users.Group("/:username", middleware.SameUser())
		{
			self.GET("", h.User.Get)
			self.PATCH("", h.User.Update)
			self.DELETE("", h.User.Delete)
		}
	}

	// --- 视频模块 ---
	videos := r.Group("/videos")
	{
		videos.GET("", h.Video.List)
		videos.GET("/search", h.Video.Search)
		videos.GET("/:id", h.Video.Get)

		videos.POST("", middleware.LoginRequired(), middleware.SameUserInBody("username"), h.Video.Create)
		videos.PATCH("/:id", middleware.SameUserInBody("username"), h.Video.Update)
		videos.DELETE("/:id", middleware.SameUserInBody("username"), h.Video.Delete)
		videos.POST("/:id/thumbnail", middleware.LoginRequired(), h.Video.UploadThumbnail)
	}

	// --- 评论模块 ---
	comments := r.Group("/comments")
	{
		comments.GET("", h.Comment.List)
		comments.GET("/:id", middleware.LoginRequired(), h.Comment.Get)

		comments.POST("", middleware.LoginRequired(), middleware.SameUserInBody("username"), h.Comment.Create)
		comments.PATCH("/:id", middleware.SameUserInBody("username"), h.Comment.Update)
		comments.DELETE("/:id", middleware.SameUserInBody("username"), h.Comment.Delete)
	}

	// --- 点赞模块 ---
	likes := r.Group("/likes")
	{
		likes.GET("", h.Like.List)
		likes.POST("", middleware.LoginRequired(), middleware.SameUserInBody("username"), h.Like.Create)
		likes.DELETE("", middleware.SameUserInBody("username"), h.Like.Delete)
	}

	// --- 订阅模块 ---
	subscriptions := r.Group("/subscriptions")
	{
		subscriptions.GET("", h.Subscription.List)
		subscriptions.POST("", middleware.SameUserInBody("subscriberUsername"), h.Subscription.Create)
		subscriptions.DELETE("", middleware.SameUserInBody("subscriberUsername"), h.Subscription.Delete)
	}

	// --- 播放记录 ---
	views := r.Group("/views")
	{
		views.GET("", h.View.List)
		views.POST("", h.View.Create)
	}
}
