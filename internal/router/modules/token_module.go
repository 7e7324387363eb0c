package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/qaboard/qa-backend/internal/interface/http"
	"github.com/qaboard/qa-backend/internal/interface/middleware"
)

// TokenModule exposes the dev-only token minting routes. It is only
// registered when the dev token endpoint is enabled in config.
type TokenModule struct {
	Handler *handlers.TokenHandler
	Redis   *redis.Client
}

func NewTokenModule(h *handlers.TokenHandler, rdb *redis.Client) *TokenModule {
	return &TokenModule{Handler: h, Redis: rdb}
}

func (m *TokenModule) Register(rg *gin.RouterGroup) {
	grp := rg.Group("/auth")
	grp.Use(middleware.RateLimit(m.Redis, 30, time.Minute, middleware.KeyByIPAndPath(), nil))
	{
		grp.POST("/token", m.Handler.Issue)
		grp.POST("/refresh", m.Handler.Refresh)
	}
}
