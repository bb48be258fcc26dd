package cartControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jayasri-Akky/E-commerceWebsite/middleware"
	"github.com/Jayasri-Akky/E-commerceWebsite/models"
	"github.com/Jayasri-Akky/E-commerceWebsite/web"
)

// Quantities must be whole numbers >= 1; anything else is rejected before any
// state change. Removing more than the current holding clamps to zero and
// deletes the entry.
var ErrBadQuantity = errors.New("quantity must be a positive whole number")

// -------- Core Logic --------

// AddItem creates the (user, item) cart entry or increments an existing one.
// Returns the item so callers can name it in the flash message.
func AddItem(db *gorm.DB, userID, itemID uint, quantity int) (models.Item, error) {
	if quantity < 1 {
		return models.Item{}, ErrBadQuantity
	}

	var item models.Item
	if err := db.First(&item, itemID).Error; err != nil {
		return models.Item{}, err
	}

	var entry models.CartEntry
	err := db.Where("user_id = ? AND item_id = ?", userID, itemID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry = models.CartEntry{
			UserID:   userID,
			ItemID:   itemID,
			Quantity: quantity,
			AddedAt:  time.Now(),
		}
		if err := db.Create(&entry).Error; err != nil {
			return models.Item{}, err
		}
		return item, nil
	}
	if err != nil {
		return models.Item{}, err
	}

	entry.Quantity += quantity
	entry.AddedAt = time.Now()
	if err := db.Save(&entry).Error; err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// RemoveItem decrements the entry by quantity, deleting it once the requested
// amount reaches or exceeds the current holding.
func RemoveItem(db *gorm.DB, userID, itemID uint, quantity int) error {
	if quantity < 1 {
		return ErrBadQuantity
	}

	var entry models.CartEntry
	if err := db.Where("user_id = ? AND item_id = ?", userID, itemID).First(&entry).Error; err != nil {
		return err
	}

	if quantity >= entry.Quantity {
		return db.Delete(&entry).Error
	}
	entry.Quantity -= quantity
	return db.Save(&entry).Error
}

// Contents returns the user's cart entries (items preloaded) and the computed
// total price.
func Contents(db *gorm.DB, userID uint) ([]models.CartEntry, float64, error) {
	var entries []models.CartEntry
	if err := db.Preload("Item").Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	var total float64
	for _, entry := range entries {
		total += entry.Item.Price * float64(entry.Quantity)
	}
	return entries, total, nil
}

// -------- Handlers --------

// POST /add/:id
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			web.Flash(c, web.FlashError, "Invalid item ID.")
			c.Redirect(http.StatusFound, "/")
			return
		}
		quantity, err := strconv.Atoi(c.PostForm("quantity"))
		if err != nil || quantity < 1 {
			web.Flash(c, web.FlashError, "Quantity must be a positive whole number.")
			c.Redirect(http.StatusFound, "/")
			return
		}

		item, err := AddItem(db, middleware.UserID(c), uint(itemID), quantity)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			web.Flash(c, web.FlashError, "Item not found.")
			c.Redirect(http.StatusFound, "/")
			return
		}
		if err != nil {
			web.Flash(c, web.FlashError, "Failed to add item to the cart.")
			c.Redirect(http.StatusFound, "/")
			return
		}

		web.Flash(c, web.FlashSuccess, item.Name+" successfully added to the cart. View cart!")
		c.Redirect(http.StatusFound, "/")
	}
}

// GET /cart
func ViewCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, total, err := Contents(db, middleware.UserID(c))
		if err != nil {
			web.Flash(c, web.FlashError, "Failed to load the cart.")
		}
		web.Render(c, "cart.html", gin.H{
			"Entries": entries,
			"Total":   total,
		})
	}
}

// GET /remove/:id/:quantity
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			web.Flash(c, web.FlashError, "Invalid item ID.")
			c.Redirect(http.StatusFound, "/cart")
			return
		}
		quantity, err := strconv.Atoi(c.Param("quantity"))
		if err != nil || quantity < 1 {
			web.Flash(c, web.FlashError, "Quantity must be a positive whole number.")
			c.Redirect(http.StatusFound, "/cart")
			return
		}

		err = RemoveItem(db, middleware.UserID(c), uint(itemID), quantity)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			web.Flash(c, web.FlashError, "Cart item not found.")
		} else if err != nil {
			web.Flash(c, web.FlashError, fmt.Sprintf("Failed to update the cart: %v", err))
		}
		c.Redirect(http.StatusFound, "/cart")
	}
}
