package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/nomadplanner/planner-api/docs"
	"github.com/nomadplanner/planner-api/internal/api/handler"
	"github.com/nomadplanner/planner-api/internal/api/middleware"
	"github.com/nomadplanner/planner-api/internal/core/ports"
	"github.com/nomadplanner/planner-api/internal/infrastructure/http/handlers"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Auth          ports.AuthService
	Calendar      ports.CalendarService
	Coworking     ports.CoworkingService
	Budget        ports.BudgetService
	Preferences   ports.PreferencesService
	Conversations ports.ConversationService
	Insights      ports.InsightService

	// Checks are the readiness probes, keyed by dependency name.
	Checks map[string]handlers.Check

	JWTSecret  string
	DemoMode   bool
	DemoUserID int64

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "planner",
		Registerer: d.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Operational routes (no identity required) ---
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	e.GET("/health/ready", handlers.NewHealthDependenciesHandler(d.Checks).Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(d.Auth)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// --- Planner routes ---
	g := api.Group("", middleware.Identity(d.JWTSecret, d.DemoUserID, d.DemoMode))

	g.GET("/current-user", authHandler.CurrentUser)

	prefs := handler.NewPreferencesHandler(d.Preferences)
	g.GET("/user-preferences", prefs.Get)
	g.POST("/user-preferences", prefs.Save)

	insights := handler.NewInsightHandler(d.Insights)

	calendar := handler.NewCalendarHandler(d.Calendar)
	g.GET("/calendar", calendar.List)
	g.POST("/calendar", calendar.Create)
	g.POST("/calendar/analyze", insights.AnalyzeCalendar)
	g.GET("/calendar/:id", calendar.Get)
	g.PUT("/calendar/:id", calendar.Update)
	g.DELETE("/calendar/:id", calendar.Delete)

	coworking := handler.NewCoworkingHandler(d.Coworking)
	g.GET("/coworking", coworking.List)
	g.POST("/coworking", coworking.Create)
	g.POST("/coworking/recommend", insights.RecommendCoworking)
	g.GET("/coworking/:id", coworking.Get)

	budget := handler.NewBudgetHandler(d.Budget)
	g.GET("/budget", budget.List)
	g.POST("/budget", budget.Create)
	g.POST("/budget/analyze", insights.AnalyzeBudget)
	g.GET("/budget/:id", budget.Get)
	g.PUT("/budget/:id", budget.Update)

	g.POST("/timezone/recommend", insights.RecommendTimeZone)
	g.POST("/community/recommend", insights.RecommendCommunity)
	g.POST("/legal/resources", insights.LegalResources)
	g.POST("/assistant", insights.Assistant)

	g.GET("/conversations", handler.NewConversationHandler(d.Conversations).List)

	return e
}
