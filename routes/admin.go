package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminControllers "github.com/Jayasri-Akky/E-commerceWebsite/controllers/admin"
	orderControllers "github.com/Jayasri-Akky/E-commerceWebsite/controllers/order"
	"github.com/Jayasri-Akky/E-commerceWebsite/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Item Management ───────────
		itemAdmin := adminGroup.Group("/items")
		{
			itemAdmin.POST("", adminControllers.CreateItem(db))
			itemAdmin.PUT("/:id", adminControllers.UpdateItem(db))
			itemAdmin.DELETE("/:id", adminControllers.DeleteItem(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", adminControllers.GetAllOrders(db))
			orderAdmin.PUT("/:id/status", adminControllers.UpdateOrderStatus(db))
			orderAdmin.GET("/export", adminControllers.ExportOrdersToExcel(db))

			// websocket feed of newly placed orders
			orderAdmin.GET("/ws", orderControllers.OrderFeed)
		}
	}
}
