package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alexw14/orange-box/models"
)

type CreateProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"gte=0"`
	BrandID     uint     `json:"brand" binding:"required"`
	CategoryID  uint     `json:"category" binding:"required"`
	Size        int      `json:"size"`
	Stock       int      `json:"stock" binding:"gte=0"`
	Shipping    *bool    `json:"shipping"`
	Images      []string `json:"images"`
}

// CreateProduct adds a product to the catalog. Admin only.
// POST /api/products/sneakers
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			BrandID:     input.BrandID,
			CategoryID:  input.CategoryID,
			Size:        input.Size,
			Stock:       input.Stock,
			Shipping:    true,
			Images:      input.Images,
		}
		if input.Shipping != nil {
			product.Shipping = *input.Shipping
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "sneakers": product})
	}
}
