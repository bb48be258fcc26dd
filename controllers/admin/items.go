package adminControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jayasri-Akky/E-commerceWebsite/models"
)

type ItemInput struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
	PriceID  string  `json:"price_id"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
	Details  string  `json:"details"`
	Stock    int     `json:"stock"`
}

type ItemUpdateInput struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	PriceID  *string  `json:"price_id"`
	Category *string  `json:"category"`
	Image    *string  `json:"image"`
	Details  *string  `json:"details"`
	Stock    *int     `json:"stock"`
}

// POST /admin/items
func CreateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item := models.Item{
			Name:     input.Name,
			Price:    input.Price,
			PriceID:  input.PriceID,
			Category: input.Category,
			Image:    input.Image,
			Details:  input.Details,
			Stock:    input.Stock,
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /admin/items/:id
func UpdateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.Item
		if err := db.First(&item, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch item"})
			}
			return
		}

		var input ItemUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Price != nil {
			updates["price"] = *input.Price
		}
		if input.PriceID != nil {
			updates["price_id"] = *input.PriceID
		}
		if input.Category != nil {
			updates["category"] = *input.Category
		}
		if input.Image != nil {
			updates["image"] = *input.Image
		}
		if input.Details != nil {
			updates["details"] = *input.Details
		}
		if input.Stock != nil {
			updates["stock"] = *input.Stock
		}

		if len(updates) > 0 {
			if err := db.Model(&item).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
				return
			}
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /admin/items/:id
func DeleteItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Item{}, c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
	}
}
