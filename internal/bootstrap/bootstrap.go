package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/mentorhub/backend/internal/app/controllers"
	appMigrations "github.com/mentorhub/backend/internal/app/migrations"
	appRepos "github.com/mentorhub/backend/internal/app/repositories"
	appRoutes "github.com/mentorhub/backend/internal/app/routes"
	appServices "github.com/mentorhub/backend/internal/app/services"
	"github.com/mentorhub/backend/internal/config"
	"github.com/mentorhub/backend/internal/db"
	appMiddleware "github.com/mentorhub/backend/internal/middleware"
	pkgAuth "github.com/mentorhub/backend/internal/pkg/auth"
	"github.com/mentorhub/backend/internal/pkg/helpers"
	"github.com/mentorhub/backend/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService              *appServices.AuthService
	ProfileService           appServices.ProfileService
	MentorService            appServices.MentorService
	JobService               appServices.JobService
	CodingQuestionService    appServices.CodingQuestionService
	AnnouncementService      appServices.AnnouncementService
	AuthController           *appControllers.AuthController
	ProfileController        *appControllers.ProfileController
	MentorController         *appControllers.MentorController
	JobController            *appControllers.JobController
	CodingQuestionController *appControllers.CodingQuestionController
	AnnouncementController   *appControllers.AnnouncementController
	AuthMiddleware           *appMiddleware.AuthMiddleware
	Repos                    *appRepos.Repositories
	JWTService               *pkgAuth.JWTService
	Logger                   zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	logFormat := strings.ToLower(cfg.Logging.Format)
	prettyLog := logFormat == "text" || logFormat == "console"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.JWTService,
		lgr,
	)
	deps.ProfileService = appServices.NewProfileService(
		deps.Repos.UserRepository,
		deps.Repos.UserDetailsRepository,
		deps.Repos.MentorRepository,
	)
	deps.MentorService = appServices.NewMentorService(deps.Repos.MentorRepository)
	deps.JobService = appServices.NewJobService(deps.Repos.JobRepository)
	deps.CodingQuestionService = appServices.NewCodingQuestionService(deps.Repos.CodingQuestionRepository)
	deps.AnnouncementService = appServices.NewAnnouncementService(deps.Repos.AnnouncementRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Logger)
	deps.ProfileController = appControllers.NewProfileController(deps.ProfileService)
	deps.MentorController = appControllers.NewMentorController(deps.MentorService)
	deps.JobController = appControllers.NewJobController(deps.JobService)
	deps.CodingQuestionController = appControllers.NewCodingQuestionController(deps.CodingQuestionService)
	deps.AnnouncementController = appControllers.NewAnnouncementController(deps.AnnouncementService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ProfileController,
		deps.MentorController,
		deps.JobController,
		deps.CodingQuestionController,
		deps.AnnouncementController,
		deps.AuthMiddleware,
	)

	return router
}
