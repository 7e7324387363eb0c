package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/qaboard/qa-backend/internal/interface/http"
	"github.com/qaboard/qa-backend/internal/interface/middleware"
	"github.com/qaboard/qa-backend/pkg/helpers"
)

// AnswerModule wires the answer routes; deleting an answer cascades to its
// comments.
type AnswerModule struct {
	Handler *handlers.AnswerHandler
	JWT     *helpers.JWTManager
	Redis   *redis.Client
}

func NewAnswerModule(h *handlers.AnswerHandler, jwt *helpers.JWTManager, rdb *redis.Client) *AnswerModule {
	return &AnswerModule{Handler: h, JWT: jwt, Redis: rdb}
}

func (m *AnswerModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(m.Redis, 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	voteLimiter := middleware.RateLimit(m.Redis, 60, time.Minute, middleware.KeyByIPAndPath(), nil)

	public := rg.Group("/answer")
	public.Use(readLimiter)
	{
		public.GET("/:id", m.Handler.Get)
		public.GET("", m.Handler.List)
		public.GET("/question/:questionId", m.Handler.ListByQuestion)
		public.GET("/count/user", m.Handler.CountByUser)
		public.GET("/count/question/:questionId", m.Handler.CountByQuestion)
		public.PUT("/:id/rating", voteLimiter, m.Handler.Upvote)
		public.DELETE("/:id/rating", voteLimiter, m.Handler.Downvote)
	}

	auth := rg.Group("/answer")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("", m.Handler.Create)
		auth.PUT("/description", m.Handler.UpdateDescription)
		auth.PUT("/:id/correct", m.Handler.SetCorrect)
		auth.DELETE("/:id/correct", m.Handler.UnsetCorrect)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
