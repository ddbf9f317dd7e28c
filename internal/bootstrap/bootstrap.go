// Package bootstrap wires configuration, database, services and routes
// into a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/selin/acadcore/internal/app/controllers"
	appMigrations "github.com/selin/acadcore/internal/app/migrations"
	appRepos "github.com/selin/acadcore/internal/app/repositories"
	appRoutes "github.com/selin/acadcore/internal/app/routes"
	appServices "github.com/selin/acadcore/internal/app/services"
	"github.com/selin/acadcore/internal/config"
	"github.com/selin/acadcore/internal/db"
	appMiddleware "github.com/selin/acadcore/internal/middleware"
	pkgAuth "github.com/selin/acadcore/internal/pkg/auth"
	"github.com/selin/acadcore/internal/pkg/helpers"
	"github.com/selin/acadcore/internal/pkg/logger"
	"github.com/selin/acadcore/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          *appServices.AuthService
	SemesterService      *appServices.SemesterService
	CourseService        *appServices.CourseService
	LoadService          *appServices.LoadService
	OfferingService      *appServices.OfferingService
	EnrollmentService    *appServices.EnrollmentService
	GradeService         *appServices.GradeService
	AuthController       *appControllers.AuthController
	SemesterController   *appControllers.SemesterController
	CourseController     *appControllers.CourseController
	LoadController       *appControllers.LoadController
	OfferingController   *appControllers.OfferingController
	EnrollmentController *appControllers.EnrollmentController
	GradeController      *appControllers.GradeController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Database             *db.PostgresDB
	Logger               zerolog.Logger
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
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Pool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established")

	lgr.Info().Msg("Running database migrations...")
	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.Run(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied")

	if err := seed.CreateDefaultData(context.Background(), database.Pool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Database: database,
		Logger:   lgr,
	}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.SemesterService = appServices.NewSemesterService(deps.Repos.SemesterRepository, database)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, database)
	deps.LoadService = appServices.NewLoadService(
		deps.Repos.TeacherLoadRepository,
		deps.Repos.StudentLoadRepository,
		deps.Repos.UserRepository,
		deps.Repos.SemesterRepository,
		database,
	)
	deps.OfferingService = appServices.NewOfferingService(
		deps.Repos.OfferingRepository,
		deps.Repos.TeacherLoadRepository,
		deps.Repos.UserRepository,
		deps.Repos.SemesterRepository,
		deps.Repos.CourseRepository,
		database,
	)
	deps.EnrollmentService = appServices.NewEnrollmentService(
		deps.Repos.EnrollmentRepository,
		deps.Repos.StudentLoadRepository,
		deps.Repos.UserRepository,
		deps.Repos.SemesterRepository,
		deps.Repos.CourseRepository,
		database,
	)
	deps.GradeService = appServices.NewGradeService(
		deps.Repos.EnrollmentRepository,
		deps.Repos.OfferingRepository,
		deps.Repos.UserRepository,
		deps.Repos.SemesterRepository,
		deps.Repos.CourseRepository,
		database,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.SemesterController = appControllers.NewSemesterController(deps.SemesterService, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, lgr)
	deps.LoadController = appControllers.NewLoadController(deps.LoadService, lgr)
	deps.OfferingController = appControllers.NewOfferingController(deps.OfferingService, lgr)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService, lgr)
	deps.GradeController = appControllers.NewGradeController(deps.GradeService, lgr)

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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.SemesterController,
		deps.CourseController,
		deps.LoadController,
		deps.OfferingController,
		deps.EnrollmentController,
		deps.GradeController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
