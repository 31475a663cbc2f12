package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/alexw14/orange-box/controllers/product"
	"github.com/alexw14/orange-box/middleware"
	"github.com/alexw14/orange-box/session"
)

// SetupProductRoutes registers the "/api/products/*" endpoints. Reads are
// public; catalog writes sit behind the auth + admin gate.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB, sessions *session.Service) {
	products := r.Group("/api/products")
	{
		products.GET("/sneakers/collections", productcontroller.GetCollections(db))
		products.GET("/sneakers", productcontroller.GetByIDs(db))
		products.POST("/shop", productcontroller.Shop(db))
		products.GET("/brands", productcontroller.GetBrands(db))
		products.GET("/categories", productcontroller.GetCategories(db))
	}

	adminProducts := r.Group("/api/products")
	adminProducts.Use(middleware.Auth(db, sessions), middleware.AdminOnly())
	{
		adminProducts.POST("/sneakers", productcontroller.CreateProduct(db))
		adminProducts.POST("/brands", productcontroller.CreateBrand(db))
		adminProducts.POST("/categories", productcontroller.CreateCategory(db))
		adminProducts.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
	}
}
