package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/qaboard/qa-backend/internal/interface/http"
	"github.com/qaboard/qa-backend/internal/interface/middleware"
	"github.com/qaboard/qa-backend/pkg/helpers"
)

type CommentModule struct {
	Handler *handlers.CommentHandler
	JWT     *helpers.JWTManager
	Redis   *redis.Client
}

func NewCommentModule(h *handlers.CommentHandler, jwt *helpers.JWTManager, rdb *redis.Client) *CommentModule {
	return &CommentModule{Handler: h, JWT: jwt, Redis: rdb}
}

func (m *CommentModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(m.Redis, 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	voteLimiter := middleware.RateLimit(m.Redis, 60, time.Minute, middleware.KeyByIPAndPath(), nil)

	public := rg.Group("/comment")
	public.Use(readLimiter)
	{
		public.GET("/:id", m.Handler.Get)
		public.GET("/question/:questionId", m.Handler.ListByQuestion)
		public.GET("/answer/:answerId", m.Handler.ListByAnswer)
		public.PUT("/:id/rating", voteLimiter, m.Handler.Upvote)
		public.DELETE("/:id/rating", voteLimiter, m.Handler.Downvote)
	}

	auth := rg.Group("/comment")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("", m.Handler.Create)
		auth.PUT("/description", m.Handler.UpdateDescription)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
