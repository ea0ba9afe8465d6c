package routes

import (
	"net/http"

	"github.com/stridehq/stride/internal/app"
	"github.com/stridehq/stride/internal/handler"
	"github.com/stridehq/stride/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	page := handler.NewPageHandler(app.PageService)
	goal := handler.NewGoalHandler(app.UserService, app.GoalService)
	dashboard := handler.NewDashboardHandler(app.UserService, app.GoalService)
	health := handler.NewHealthHandler(app.DB)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", health.Healthz)

	// Marketing site
	mux.HandleFunc("GET /{$}", page.HomePage)
	mux.HandleFunc("GET /pages/{slug}", page.ShowPage)

	// ============================================================================
	// AUTHENTICATED API
	// ============================================================================

	// Goal creation is rate limited per IP; the handlers themselves reject
	// anonymous callers before touching the store.
	rateLimiter := middleware.RateLimitWrites()

	mux.HandleFunc("POST /goals", rateLimiter(goal.Create))
	mux.HandleFunc("GET /goals", goal.List)
	mux.HandleFunc("GET /app/dashboard", dashboard.Summary)

	// ============================================================================
	// FALLBACK
	// ============================================================================

	mux.HandleFunc("/{path...}", page.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	h := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.RequestLogging,
		middleware.Identity(app.IdentityProvider),
	)

	return h
}
