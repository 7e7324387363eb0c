package router

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/qaboard/qa-backend/internal/application"
	pginfra "github.com/qaboard/qa-backend/internal/infrastructure/postgres"
	handlers "github.com/qaboard/qa-backend/internal/interface/http"
	"github.com/qaboard/qa-backend/internal/router/modules"
	"github.com/qaboard/qa-backend/pkg/helpers"
)

// Deps carries the process-wide components the modules are built from.
// Everything is passed explicitly; there is no global registry.
type Deps struct {
	Pool   *pgxpool.Pool
	Redis  *redis.Client
	JWT    *helpers.JWTManager
	Events application.ReputationPublisher
	Logger *logrus.Logger

	// DevTokenEndpoint registers the dev-only token minting routes.
	DevTokenEndpoint bool

	// DebugMetrics registers the expvar endpoint.
	DebugMetrics bool
}

// InitModules builds every feature module from Deps and registers it.
// Called once during startup.
func InitModules(r *Registry, d Deps) {
	questionRepo := pginfra.NewQuestionRepository(d.Pool)
	answerRepo := pginfra.NewAnswerRepository(d.Pool)
	commentRepo := pginfra.NewCommentRepository(d.Pool)
	profileRepo := pginfra.NewProfileRepository(d.Pool)

	questionSvc := application.NewQuestionService(questionRepo, answerRepo, d.Events, d.Logger)
	answerSvc := application.NewAnswerService(answerRepo, commentRepo, d.Events, d.Logger)
	commentSvc := application.NewCommentService(commentRepo, d.Logger)
	profileSvc := application.NewProfileService(profileRepo, d.Logger)

	r.Add(modules.NewQuestionModule(handlers.NewQuestionHandler(questionSvc, d.Logger), d.JWT, d.Redis))
	r.Add(modules.NewAnswerModule(handlers.NewAnswerHandler(answerSvc, d.Logger), d.JWT, d.Redis))
	r.Add(modules.NewCommentModule(handlers.NewCommentHandler(commentSvc, d.Logger), d.JWT, d.Redis))
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(profileSvc, d.Logger), d.JWT, d.Redis))

	if d.DevTokenEndpoint {
		r.Add(modules.NewTokenModule(handlers.NewTokenHandler(d.JWT, d.Logger), d.Redis))
	}
	if d.DebugMetrics {
		r.Add(modules.NewDebugModule(d.Redis))
	}
}
