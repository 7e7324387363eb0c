package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/qaboard/qa-backend/internal/interface/middleware"
)

// DebugModule serves process expvars. Meant for private networks only,
// so the rate limiter bypasses nothing here.
type DebugModule struct {
	Redis *redis.Client
}

func NewDebugModule(rdb *redis.Client) *DebugModule {
	return &DebugModule{Redis: rdb}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	grp := rg.Group("/debug")
	grp.Use(middleware.RateLimit(m.Redis, 60, time.Minute, middleware.KeyByIP(), nil))
	{
		grp.GET("/vars", gin.WrapH(expvar.Handler()))
	}
}
