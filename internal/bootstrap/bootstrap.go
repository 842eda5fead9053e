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
	"golang.org/x/text/language"

	appControllers "github.com/plantilla/apiestudiantes/internal/app/controllers"
	appMigrations "github.com/plantilla/apiestudiantes/internal/app/migrations"
	appRepos "github.com/plantilla/apiestudiantes/internal/app/repositories"
	appRoutes "github.com/plantilla/apiestudiantes/internal/app/routes"
	appServices "github.com/plantilla/apiestudiantes/internal/app/services"
	"github.com/plantilla/apiestudiantes/internal/config"
	"github.com/plantilla/apiestudiantes/internal/db"
	appMiddleware "github.com/plantilla/apiestudiantes/internal/middleware"
	"github.com/plantilla/apiestudiantes/internal/pkg/logger"
	"github.com/plantilla/apiestudiantes/internal/pkg/messages"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CursoService    appServices.CursoService
	TemaService     appServices.TemaService
	CursoController *appControllers.CursoController
	TemaController  *appControllers.TemaController
	Repos           *appRepos.Repositories
	Messages        *messages.Catalog
	Logger          zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
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
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)
	deps.Messages = messages.NewCatalog()

	deps.CursoService = appServices.NewCursoService(
		deps.Repos.CursoRepository,
		deps.Repos.TemaRepository,
		deps.Messages,
	)
	deps.TemaService = appServices.NewTemaService(deps.Repos.TemaRepository)

	deps.CursoController = appControllers.NewCursoController(deps.CursoService)
	deps.TemaController = appControllers.NewTemaController(deps.TemaService)

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

	defaultLocale, err := language.Parse(cfg.Messages.DefaultLocale)
	if err != nil {
		lgr.Warn().Str("locale", cfg.Messages.DefaultLocale).Msg("Invalid default locale, falling back to es")
		defaultLocale = language.Spanish
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.LocaleExtractor(defaultLocale))

	appRoutes.SetupRouter(router,
		deps.CursoController,
		deps.TemaController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
