package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Jayasri-Akky/E-commerceWebsite/controllers/cart"
	catalogControllers "github.com/Jayasri-Akky/E-commerceWebsite/controllers/catalog"
	orderControllers "github.com/Jayasri-Akky/E-commerceWebsite/controllers/order"
	"github.com/Jayasri-Akky/E-commerceWebsite/middleware"
)

// SetupShopRoutes registers the catalog, cart and order endpoints.
func SetupShopRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Browse (public) ────────────────
	r.GET("/", catalogControllers.Home(db))
	r.GET("/item/:id", catalogControllers.ItemDetail(db))
	r.GET("/search", catalogControllers.Search(db))
	r.GET("/payment_success", catalogControllers.PaymentSuccess())
	r.GET("/payment_failure", catalogControllers.PaymentFailure())

	// ──────────────── Cart & Orders (login required) ────────────────
	authed := r.Group("/")
	authed.Use(middleware.RequireLogin)
	{
		authed.POST("/add/:id", cartControllers.AddToCart(db))
		authed.GET("/cart", cartControllers.ViewCart(db))
		authed.GET("/remove/:id/:quantity", cartControllers.RemoveFromCart(db))

		authed.GET("/orders", orderControllers.ListOrders(db))
		authed.GET("/checkout", orderControllers.ShowCheckout())
		authed.POST("/checkout", orderControllers.Checkout(db))
		authed.POST("/place_order", orderControllers.PlaceOrder(db))
	}
}
