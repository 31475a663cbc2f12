package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alexw14/orange-box/catalog"
)

type ShopInput struct {
	Order   string                   `json:"order"`
	SortBy  string                   `json:"sortBy"`
	Limit   int                      `json:"limit"`
	Skip    int                      `json:"skip"`
	Filters map[string][]interface{} `json:"filters"`
}

// Shop runs the facet-filtered, sorted, paginated storefront search.
// POST /api/products/shop
func Shop(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ShopInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Order == "" {
			input.Order = "desc"
		}
		if input.SortBy == "" {
			input.SortBy = "_id"
		}
		if input.Limit <= 0 {
			input.Limit = catalog.ShopLimit
		}

		plan, err := catalog.BuildPlan(input.Order, input.SortBy, input.Skip, input.Limit, input.Filters)
		if err != nil {
			var vErr *catalog.ValidationError
			if errors.As(err, &vErr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "field": vErr.Field})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		products, _, err := plan.Run(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"size":     len(products),
			"sneakers": products,
		})
	}
}
