package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/registrotec/equipos-api/docs"
	"github.com/registrotec/equipos-api/internal/api/handler"
	"github.com/registrotec/equipos-api/internal/api/middleware"
	"github.com/registrotec/equipos-api/internal/core/domain"
	"github.com/registrotec/equipos-api/internal/core/service"
	"github.com/registrotec/equipos-api/internal/infrastructure/db/postgres"
	"github.com/registrotec/equipos-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Each protected route declares its permitted roles at registration time;
// the guard enforces them per request.
func NewRouter(db *pgxpool.Pool, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("equipos"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	equipmentRepo := postgres.NewEquipmentRepository(db)

	authService := service.NewAuthService(userRepo, roleRepo, jwtSecret, token.DefaultTTL, log)
	userService := service.NewUserService(userRepo, roleRepo, equipmentRepo, log)
	equipmentService := service.NewEquipmentService(equipmentRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	equipmentHandler := handler.NewEquipmentHandler(equipmentService)

	anyRole := middleware.Guard(roleRepo, jwtSecret)
	adminOnly := middleware.Guard(roleRepo, jwtSecret, domain.RoleAdmin)
	clientOnly := middleware.Guard(roleRepo, jwtSecret, domain.RoleClient)

	// --- User routes ---
	users := e.Group("/api/usuarios")
	users.POST("/registro", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.GET("/admin/usuarios", userHandler.List, adminOnly)
	users.PUT("/admin/usuarios/:id", userHandler.ChangeRole, adminOnly)
	users.DELETE("/admin/usuarios/:id", userHandler.Delete, adminOnly)
	users.GET("/:id", userHandler.Profile, anyRole)
	users.PUT("/:id", userHandler.UpdateProfile, anyRole)

	// --- Equipment routes ---
	equipment := e.Group("/api/equipos")
	equipment.POST("", equipmentHandler.Create, clientOnly)
	equipment.GET("/cliente/:id", equipmentHandler.ListByOwner, clientOnly)
	equipment.PUT("/:id", equipmentHandler.UpdateDescription, clientOnly)
	equipment.GET("/admin", equipmentHandler.ListAll, adminOnly)
	equipment.PUT("/admin/:id", equipmentHandler.UpdateStatus, adminOnly)
	equipment.DELETE("/admin/:id", equipmentHandler.Delete, adminOnly)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
