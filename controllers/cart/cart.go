package cartcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alexw14/orange-box/cart"
	"github.com/alexw14/orange-box/middleware"
)

// AddToCart puts one unit of a product in the caller's cart and returns the
// updated cart.
// POST /api/users/addToCart?productId=
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		productID, err := strconv.ParseUint(c.Query("productId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
			return
		}

		items, err := cart.Add(db, user.ID, uint(productID))
		if err != nil {
			if errors.Is(err, cart.ErrProductNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// RemoveFromCart drops a product from the caller's cart, returning both the
// raw cart and the resolved product detail so the client can render without
// another round trip. Removing something that is not in the cart succeeds.
// GET /api/users/removeFromCart?_id=
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		productID, err := strconv.ParseUint(c.Query("_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid _id"})
			return
		}

		items, detail, err := cart.Remove(db, user.ID, uint(productID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"cartDetail": detail,
			"cart":       items,
		})
	}
}
