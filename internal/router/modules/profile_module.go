package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/qaboard/qa-backend/internal/interface/http"
	"github.com/qaboard/qa-backend/internal/interface/middleware"
	"github.com/qaboard/qa-backend/pkg/helpers"
)

// ProfileModule wires the profile routes. Every mutation is owner-gated.
type ProfileModule struct {
	Handler *handlers.ProfileHandler
	JWT     *helpers.JWTManager
	Redis   *redis.Client
}

func NewProfileModule(h *handlers.ProfileHandler, jwt *helpers.JWTManager, rdb *redis.Client) *ProfileModule {
	return &ProfileModule{Handler: h, JWT: jwt, Redis: rdb}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(m.Redis, 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	public := rg.Group("/profile")
	public.Use(readLimiter)
	{
		public.GET("/:id", m.Handler.Get)
		public.GET("", m.Handler.List)
	}

	auth := rg.Group("/profile")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/me", m.Handler.Me)
		auth.POST("", m.Handler.Create)
		auth.PUT("/firstname", m.Handler.UpdateFirstName)
		auth.PUT("/lastname", m.Handler.UpdateLastName)
		auth.PUT("/description", m.Handler.UpdateDescription)
		auth.PUT("/image", m.Handler.UpdateImage)
		auth.PUT("/reputation", m.Handler.UpdateReputation)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
