package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the shop, account and
// admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public account routes plus the session-protected /logout and /resend
	SetupAccountRoutes(r, db)

	// Catalog, cart and order pages
	SetupShopRoutes(r, db)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}
