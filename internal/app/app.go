package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/stridehq/stride/internal/config"
	"github.com/stridehq/stride/internal/db"
	"github.com/stridehq/stride/internal/identity"
	"github.com/stridehq/stride/internal/repository"
	"github.com/stridehq/stride/internal/service"
)

// App holds the process-wide dependencies: constructed once at startup,
// torn down at shutdown, and passed explicitly so tests can substitute a
// fake store or identity provider.
type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	IdentityProvider identity.Provider
	UserService      *service.UserService
	GoalService      *service.GoalService
	PageService      *service.PageService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	goalRepository := repository.NewGoalRepository(database)

	// Services
	userService := service.NewUserService(userRepository)
	goalService := service.NewGoalService(goalRepository)
	pageService := service.NewPageService(cfg.ContentPath)

	return &App{
		Cfg:              cfg,
		DB:               database,
		IdentityProvider: identity.NewSessionProvider(cfg.SessionSecret),
		UserService:      userService,
		GoalService:      goalService,
		PageService:      pageService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
