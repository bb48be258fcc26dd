package catalogControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jayasri-Akky/E-commerceWebsite/models"
	"github.com/Jayasri-Akky/E-commerceWebsite/web"
)

// -------- Core Logic --------

// ListItems returns the whole catalog.
func ListItems(db *gorm.DB) ([]models.Item, error) {
	var items []models.Item
	if err := db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SearchItems matches item names by case-insensitive substring. LOWER/LIKE
// keeps the query portable between postgres and the sqlite test database.
func SearchItems(db *gorm.DB, query string) ([]models.Item, error) {
	var items []models.Item
	pattern := "%" + query + "%"
	if err := db.Where("LOWER(name) LIKE LOWER(?)", pattern).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem returns one item or gorm.ErrRecordNotFound.
func GetItem(db *gorm.DB, id uint) (models.Item, error) {
	var item models.Item
	if err := db.First(&item, id).Error; err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// -------- Handlers --------

// GET /
func Home(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := ListItems(db)
		if err != nil {
			web.Flash(c, web.FlashError, "Failed to load the catalog.")
		}
		web.Render(c, "home.html", gin.H{"Items": items})
	}
}

// GET /item/:id
func ItemDetail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			web.Flash(c, web.FlashError, "Invalid item ID.")
			c.Redirect(http.StatusFound, "/")
			return
		}

		item, err := GetItem(db, uint(id))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			web.Flash(c, web.FlashError, "Item not found.")
			c.Redirect(http.StatusFound, "/")
			return
		}
		if err != nil {
			web.Flash(c, web.FlashError, "Failed to load item.")
			c.Redirect(http.StatusFound, "/")
			return
		}
		web.Render(c, "item.html", gin.H{"Item": item})
	}
}

// GET /search?query=
func Search(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("query")
		items, err := SearchItems(db, query)
		if err != nil {
			web.Flash(c, web.FlashError, "Search failed.")
		}
		web.Render(c, "home.html", gin.H{
			"Items":  items,
			"Search": true,
			"Query":  query,
		})
	}
}

// GET /payment_success
func PaymentSuccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		web.Render(c, "success.html", nil)
	}
}

// GET /payment_failure
func PaymentFailure() gin.HandlerFunc {
	return func(c *gin.Context) {
		web.Render(c, "failure.html", nil)
	}
}
