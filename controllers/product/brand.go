package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alexw14/orange-box/models"
)

type BrandInput struct {
	Name string `json:"name" binding:"required"`
}

// CreateBrand adds a brand. Names are unique; a duplicate is a store
// rejection, not a crash. Admin only.
// POST /api/products/brands
func CreateBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BrandInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
			return
		}

		brand := models.Brand{Name: input.Name}
		if err := db.Create(&brand).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Failed to create brand"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "brand": brand})
	}
}

// GetBrands lists every brand.
// GET /api/products/brands
func GetBrands(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		brands := []models.Brand{}
		if err := db.Find(&brands).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch brands"})
			return
		}
		c.JSON(http.StatusOK, brands)
	}
}
