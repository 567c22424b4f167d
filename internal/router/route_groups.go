package router

import (
	"menu_tracker_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPublicAuthRoutes registers the unauthenticated auth endpoints.
func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/register", authHandler.RegisterUser)
	group.POST("/login", authHandler.LoginUser)
}

// SetupAuthenticatedAuthRoutes registers auth endpoints that require a valid token.
func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.GET("/me", authHandler.GetCurrentUser)
}

// SetupMenuItemRoutes registers the menu item CRUD endpoints.
func SetupMenuItemRoutes(group *gin.RouterGroup, menuHandler *handlers.MenuHandler) {
	items := group.Group("/menu-items")
	{
		items.POST("", menuHandler.CreateItem)
		items.GET("", menuHandler.GetItems)
		items.GET("/:id", menuHandler.GetItemByID)
		items.PUT("/:id", menuHandler.UpdateItem)
		items.DELETE("/:id", menuHandler.DeleteItem)
	}
}

// SetupSaleRoutes registers the sale logging endpoint.
func SetupSaleRoutes(group *gin.RouterGroup, menuHandler *handlers.MenuHandler) {
	group.POST("/sales", menuHandler.LogSale)
}

// SetupReportRoutes registers the aggregation/reporting endpoints.
func SetupReportRoutes(group *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reports := group.Group("/reports")
	{
		reports.GET("/daily", reportHandler.GetDailySales)
		reports.GET("/weekly", reportHandler.GetWeeklySales)
		reports.GET("/monthly", reportHandler.GetMonthlySales)
		reports.GET("/stats", reportHandler.GetStatsOverview)
		reports.GET("/items/:id/summary", reportHandler.GetItemSummary)
		reports.GET("/items/:id/week-breakdown", reportHandler.GetItemWeekBreakdown)
		reports.GET("/items/:id/month-breakdown", reportHandler.GetItemMonthBreakdown)
	}
}

// SetupDashboardRoutes registers the dashboard summary endpoint.
func SetupDashboardRoutes(group *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	group.GET("/dashboard/summary", reportHandler.GetDashboardSummary)
}
