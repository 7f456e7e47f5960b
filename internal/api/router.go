package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/turmab/helpdesk/internal/api/handler"
	"github.com/turmab/helpdesk/internal/api/middleware"
	"github.com/turmab/helpdesk/internal/core/domain"
	"github.com/turmab/helpdesk/internal/core/ports"
	"github.com/turmab/helpdesk/internal/core/service"
	"github.com/turmab/helpdesk/internal/core/token"
	"github.com/turmab/helpdesk/internal/infrastructure/config"
	mongodb "github.com/turmab/helpdesk/internal/infrastructure/db/mongo"
	redisdb "github.com/turmab/helpdesk/internal/infrastructure/db/redis"
	"github.com/turmab/helpdesk/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Access rules, mirroring the per-route requirements:
//   - public: POST /login, GET /health, GET /health/ready, GET /metrics
//   - authenticated: everything under /v1
//   - ADMIN only: create/update/delete on /v1/clients and /v1/technicians
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, events ports.TicketEventPublisher) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("helpdesk"))

	// --- Dependencies ---
	persons := mongodb.NewPersonRepository(db)
	tickets := mongodb.NewTicketRepository(db)
	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(persons, codec)
	clientService := service.NewClientService(persons, tickets)
	technicianService := service.NewTechnicianService(persons, tickets)
	ticketService := service.NewTicketService(tickets, persons, events)

	var throttle ports.LoginThrottle
	if rdb != nil {
		throttle = redisdb.NewLoginThrottle(rdb)
	}

	authHandler := handler.NewAuthHandler(authService, throttle)
	clientHandler := handler.NewClientHandler(clientService)
	technicianHandler := handler.NewTechnicianHandler(technicianService)
	ticketHandler := handler.NewTicketHandler(ticketService)

	// The authorization filter runs on every request; it never rejects by
	// itself, it only installs the principal for the route-level checks.
	e.Use(middleware.Auth(codec, persons))

	// --- Public routes ---
	e.POST("/login", authHandler.Login)
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Protected routes ---
	v1 := e.Group("/v1", middleware.RequireAuth())
	admin := middleware.RequireRoles(domain.RoleAdmin)

	clients := v1.Group("/clients")
	clients.GET("", clientHandler.List)
	clients.GET("/:id", clientHandler.Get)
	clients.POST("", clientHandler.Create, admin)
	clients.PUT("/:id", clientHandler.Update, admin)
	clients.DELETE("/:id", clientHandler.Delete, admin)

	technicians := v1.Group("/technicians")
	technicians.GET("", technicianHandler.List)
	technicians.GET("/:id", technicianHandler.Get)
	technicians.POST("", technicianHandler.Create, admin)
	technicians.PUT("/:id", technicianHandler.Update, admin)
	technicians.DELETE("/:id", technicianHandler.Delete, admin)

	ticketsGroup := v1.Group("/tickets")
	ticketsGroup.GET("", ticketHandler.List)
	ticketsGroup.GET("/:id", ticketHandler.Get)
	ticketsGroup.POST("", ticketHandler.Create)
	ticketsGroup.PUT("/:id", ticketHandler.Update)

	return e
}
