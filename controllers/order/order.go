package orderControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Jayasri-Akky/E-commerceWebsite/middleware"
	"github.com/Jayasri-Akky/E-commerceWebsite/models"
	"github.com/Jayasri-Akky/E-commerceWebsite/web"
)

var ErrCartEmpty = errors.New("cart is empty")

// generateOrderRef returns a unique order reference.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// MapOrderStatus validates a status string from the admin API.
func MapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// -------- Core Logic --------

// Place converts the user's cart into an order plus its line items and clears
// the cart, all inside one transaction. Either the order and every line item
// exist and the cart is empty, or nothing changed.
func Place(db *gorm.DB, userID uint) (models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		q := tx.Preload("Item").Where("user_id = ?", userID)
		if tx.Dialector.Name() == "postgres" {
			// sqlite (tests) has no SELECT ... FOR UPDATE
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var entries []models.CartEntry
		if err := q.Find(&entries).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return ErrCartEmpty
		}

		order = models.Order{
			UserID:    userID,
			OrderRef:  generateOrderRef(),
			Status:    models.OrderStatusPending,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		var total float64
		for _, entry := range entries {
			line := models.OrderedItem{
				OrderID:   order.ID,
				ItemID:    entry.ItemID,
				ItemName:  entry.Item.Name,
				UnitPrice: entry.Item.Price,
				Quantity:  entry.Quantity,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, line)
			total += entry.Item.Price * float64(entry.Quantity)

			if err := tx.Where("user_id = ? AND item_id = ?", userID, entry.ItemID).
				Delete(&models.CartEntry{}).Error; err != nil {
				return err
			}
		}

		order.TotalAmount = total
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("total_amount", total).Error
	})
	if err != nil {
		return models.Order{}, err
	}

	broadcastNewOrder(order)
	return order, nil
}

// UserOrders returns the user's orders, newest first, line items preloaded.
func UserOrders(db *gorm.DB, userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// -------- Handlers --------

// POST /place_order
func PlaceOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, err := Place(db, middleware.UserID(c))
		if errors.Is(err, ErrCartEmpty) {
			web.Flash(c, web.FlashError, "Your cart is empty. Please add items to your cart before placing an order.")
			c.Redirect(http.StatusFound, "/cart")
			return
		}
		if err != nil {
			web.Flash(c, web.FlashError, "An error occurred while placing the order: "+err.Error())
			c.Redirect(http.StatusFound, "/cart")
			return
		}

		web.Flash(c, web.FlashSuccess, "Order placed successfully! Cash on Delivery selected.")
		c.Redirect(http.StatusFound, "/orders")
	}
}

// GET /orders
func ListOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := UserOrders(db, middleware.UserID(c))
		if err != nil {
			web.Flash(c, web.FlashError, "Failed to load orders.")
		}
		web.Render(c, "orders.html", gin.H{"Orders": orders})
	}
}

// GET /checkout
func ShowCheckout() gin.HandlerFunc {
	return func(c *gin.Context) {
		web.Render(c, "checkout.html", nil)
	}
}

// POST /checkout
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, err := Place(db, middleware.UserID(c))
		if errors.Is(err, ErrCartEmpty) {
			web.Flash(c, web.FlashError, "Your cart is empty. Please add items to your cart before placing an order.")
			c.Redirect(http.StatusFound, "/cart")
			return
		}
		if err != nil {
			web.Flash(c, web.FlashError, "An error occurred while placing the order: "+err.Error())
			c.Redirect(http.StatusFound, "/cart")
			return
		}

		web.Flash(c, web.FlashSuccess, "Order placed successfully. Cash on Delivery selected.")
		c.Redirect(http.StatusFound, "/orders")
	}
}
