package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/qaboard/qa-backend/internal/interface/http"
	"github.com/qaboard/qa-backend/internal/interface/middleware"
	"github.com/qaboard/qa-backend/pkg/helpers"
)

// QuestionModule wires the question routes.
// Reads, views and votes are public; create/update/delete and picking the
// correct answer need a verified subject and ownership.
type QuestionModule struct {
	Handler *handlers.QuestionHandler
	JWT     *helpers.JWTManager
	Redis   *redis.Client
}

func NewQuestionModule(h *handlers.QuestionHandler, jwt *helpers.JWTManager, rdb *redis.Client) *QuestionModule {
	return &QuestionModule{Handler: h, JWT: jwt, Redis: rdb}
}

func (m *QuestionModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(m.Redis, 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	voteLimiter := middleware.RateLimit(m.Redis, 60, time.Minute, middleware.KeyByIPAndPath(), nil)

	public := rg.Group("/question")
	public.Use(readLimiter)
	{
		public.GET("/:id", m.Handler.Get)
		public.GET("", m.Handler.List)
		public.GET("/count", m.Handler.Count)
		public.PUT("/:id/view", m.Handler.IncrementView)
		public.PUT("/:id/rating", voteLimiter, m.Handler.Upvote)
		public.DELETE("/:id/rating", voteLimiter, m.Handler.Downvote)
	}

	auth := rg.Group("/question")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("", m.Handler.Create)
		auth.PUT("/title", m.Handler.UpdateTitle)
		auth.PUT("/description", m.Handler.UpdateDescription)
		auth.PUT("/:id/answer/:answerId", m.Handler.SetCorrectAnswer)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
