package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alexw14/orange-box/catalog"
)

// GetCollections returns the unfiltered product collection with resolved
// brand/category, capped at 100 items.
// GET /api/products/sneakers/collections?order=&sortBy=&limit=
func GetCollections(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		order := c.DefaultQuery("order", "asc")
		sortBy := c.DefaultQuery("sortBy", "_id")

		limit := catalog.CollectionsLimit
		if limitStr := c.Query("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
				return
			}
			limit = parsed
		}

		plan, err := catalog.BuildPlan(order, sortBy, 0, limit, nil)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		products, _, err := plan.Run(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
