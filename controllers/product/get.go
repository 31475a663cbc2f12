package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alexw14/orange-box/catalog"
)

// GetByIDs looks up products by id. With type=array the id parameter is a
// comma-delimited list. Ids that match nothing are silently dropped.
// GET /api/products/sneakers?type=&id=
func GetByIDs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids := catalog.ParseIDList(c.Query("id"), c.Query("type"))

		products, err := catalog.FindByIDs(db, ids)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
