package router

import (
	"database/sql"

	"menu_tracker_backend/internal/handlers"
	"menu_tracker_backend/internal/middleware"
	"menu_tracker_backend/internal/repositories"
	"menu_tracker_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application. Repositories share the
// connection pool; services that need multi-statement writes open their own
// transactions rather than relying on any request-global handle.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	menuRepo := repositories.NewMenuItemRepository(db)
	saleRepo := repositories.NewSaleRecordRepository(db)
	authRepo := repositories.NewAuthRepository(db)

	// Initialize Services
	menuService := services.NewMenuService(menuRepo, saleRepo, db)
	reportService := services.NewReportService(saleRepo, menuRepo)
	authService := services.NewAuthService(authRepo, db)

	// Initialize Handlers
	menuHandler := handlers.NewMenuHandler(menuService)
	reportHandler := handlers.NewReportHandler(reportService)
	authHandler := handlers.NewAuthHandler(authService)

	apiV1 := engine.Group("/api/v1")

	// Public authentication routes
	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler)

	// Authenticated routes
	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)
		SetupMenuItemRoutes(authenticated, menuHandler)
		SetupSaleRoutes(authenticated, menuHandler)
		SetupReportRoutes(authenticated, reportHandler)
		SetupDashboardRoutes(authenticated, reportHandler)
	}
}
