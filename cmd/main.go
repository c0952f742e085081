package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/examcore/config"
	"github.com/lshigami/examcore/database"
	_ "github.com/lshigami/examcore/docs" // Swagger docs
	"github.com/lshigami/examcore/internal/cache"
	"github.com/lshigami/examcore/internal/controller"
	adminctrl "github.com/lshigami/examcore/internal/controller/admin"
	userctrl "github.com/lshigami/examcore/internal/controller/user"
	"github.com/lshigami/examcore/internal/logger"
	"github.com/lshigami/examcore/internal/middleware"
	"github.com/lshigami/examcore/internal/repository"
	"github.com/lshigami/examcore/internal/service"
	"github.com/lshigami/examcore/internal/subscriber"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Assessment Attempt API
// @version 1.0
// @description Attempt lifecycle, answer capture, proctoring enforcement and scoring for assigned assessments.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewCacheBackend,
			cache.New,
			NewGinEngine,
			func(cfg *config.Config) *middleware.Authenticator {
				return middleware.NewAuthenticator(cfg.JWTSecret)
			},
		),

		// Repositories Layer
		fx.Provide(
			repository.NewStore,
			repository.NewMirrorRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewScorer,
			service.NewAttemptService,
			service.NewSubmissionService,
			service.NewProctoringService,
			service.NewScoringService,
			service.NewReportService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewAttemptController,
			userctrl.NewSubmissionController,
			userctrl.NewProctoringController,
			userctrl.NewReportController,
			adminctrl.NewAttemptAdminController,
		),

		fx.Invoke(ConfigureLogging),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(StartSubscribers),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

func ConfigureLogging(cfg *config.Config) {
	logger.Configure(cfg.AppEnv, cfg.LogLevel)
}

// CacheBackend is the cache store plus the redis client behind it, if any.
type CacheBackend struct {
	fx.Out

	Store  cache.Store
	Client redis.UniversalClient
}

// NewCacheBackend connects to redis when REDIS_ADDR is set and falls back to
// the in-process store otherwise.
func NewCacheBackend(lc fx.Lifecycle, cfg *config.Config) (CacheBackend, error) {
	if cfg.Redis.Addr == "" {
		log.Warn().Msg("REDIS_ADDR not set, using in-process cache; replication subscribers disabled")
		return CacheBackend{Store: cache.NewMemoryStore()}, nil
	}
	client, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return CacheBackend{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Closing redis connection...")
			return client.Close()
		},
	})
	return CacheBackend{Store: cache.NewRedisStore(client, cfg.Redis.Prefix), Client: client}, nil
}

type subscriberParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Client    redis.UniversalClient `optional:"true"`
	Mirror    repository.MirrorRepository
}

func StartSubscribers(p subscriberParams) {
	if p.Client == nil || !p.Config.Subscriber.Enabled {
		return
	}
	sub := subscriber.New(p.Client, p.Mirror)
	p.Lifecycle.Append(fx.Hook{
		OnStart: sub.Start,
		OnStop:  sub.Stop,
	})
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.AppEnv == "development" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", controller.Health)

	return r
}

type routeParams struct {
	fx.In

	Lifecycle   fx.Lifecycle
	Router      *gin.Engine
	Config      *config.Config
	Auth        *middleware.Authenticator
	Attempts    *userctrl.AttemptController
	Submissions *userctrl.SubmissionController
	Proctoring  *userctrl.ProctoringController
	Reports     *userctrl.ReportController
	Admin       *adminctrl.AttemptAdminController
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(p routeParams) {
	cfg := p.Config

	adminAPIGroup := p.Router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/attempts/:id/score", p.Admin.RescoreAttempt)
		adminAPIGroup.GET("/attempts/:id/penalty", p.Admin.GetPenalty)
	}

	userAPIGroup := p.Router.Group("/api/v1")
	{
		userAPIGroup.POST("/assignments/:assignment_id/attempts", p.Auth.RequireScope(), p.Attempts.StartAttempt)
		userAPIGroup.GET("/attempts", p.Attempts.ListAttempts)
		userAPIGroup.GET("/attempts/:id", p.Attempts.GetAttempt)
		userAPIGroup.POST("/attempts/:id/submit", p.Attempts.SubmitAttempt)
		userAPIGroup.PATCH("/attempts/:id/meta", p.Attempts.UpdateAttemptMeta)
		userAPIGroup.PUT("/attempts/:id/meta", p.Attempts.UpdateAttemptMeta)

		userAPIGroup.POST("/submissions", p.Submissions.RecordSubmission)
		userAPIGroup.POST("/submissions/final-submit", p.Submissions.FinalSubmit)
		userAPIGroup.GET("/submissions/attempt/:attempt_id", p.Submissions.ListSubmissions)

		userAPIGroup.POST("/proctoring/logs", p.Proctoring.IngestLogs)

		userAPIGroup.GET("/reports", p.Reports.ListReports)
		userAPIGroup.GET("/reports/:id", p.Reports.GetReport)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           p.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Assessment API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			return server.Shutdown(ctx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := database.AutoMigrate(db); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
