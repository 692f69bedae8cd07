package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/analysis"
	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/services/health"
	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/shared/config"
	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/shared/server"
	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/shared/storage/db"
	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/suggestions"
	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/users"
)

// App holds the wired dependency graph behind the API server.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	SuggestionsRepo suggestions.Repo
	UsersRepo       users.Repo

	SuggestionsService *suggestions.Service
	UsersService       *users.Service
	AnalysisService    *analysis.Service
	HealthService      *health.Service

	SuggestionsHandler *suggestions.Handler
	AnalysisHandler    *analysis.Handler
	UsersHandler       *users.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if sqlDB != nil {
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             app.Config,
		Health:             app.HealthService,
		SuggestionsHandler: app.SuggestionsHandler,
		AnalysisHandler:    app.AnalysisHandler,
		UsersHandler:       app.UsersHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildServices(app *App) {
	if app.DB != nil {
		app.SuggestionsRepo = &suggestions.PGRepo{DB: app.DB}
		app.UsersRepo = &users.PGRepo{DB: app.DB}
	} else {
		app.SuggestionsRepo = suggestions.NewMemoryRepo()
		app.UsersRepo = users.NewMemoryRepo()
	}

	app.UsersService = users.NewService(app.UsersRepo)
	app.SuggestionsService = &suggestions.Service{
		Repo:       app.SuggestionsRepo,
		Submitters: app.UsersService,
	}
	app.AnalysisService = &analysis.Service{
		Suggestions: app.SuggestionsRepo,
		Users:       app.UsersRepo,
	}
	app.HealthService = health.NewService(app.DB)

	app.SuggestionsHandler = suggestions.NewHandler(app.SuggestionsService)
	app.AnalysisHandler = analysis.NewHandler(app.AnalysisService)
	app.UsersHandler = users.NewHandler(app.UsersService)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
