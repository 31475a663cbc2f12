package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartcontroller "github.com/alexw14/orange-box/controllers/cart"
	usercontroller "github.com/alexw14/orange-box/controllers/user"
	"github.com/alexw14/orange-box/middleware"
	"github.com/alexw14/orange-box/session"
)

// SetupUserRoutes registers the "/api/users/*" endpoints: public
// register/login, then the session-protected account and cart surface.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, sessions *session.Service) {
	users := r.Group("/api/users")
	{
		users.POST("/register", usercontroller.Register(db))
		users.POST("/login", usercontroller.Login(db, sessions))
	}

	authed := r.Group("/api/users")
	authed.Use(middleware.Auth(db, sessions))
	{
		authed.GET("/auth", usercontroller.Auth(db))
		authed.GET("/logout", usercontroller.Logout(db, sessions))

		authed.POST("/addToCart", cartcontroller.AddToCart(db))
		authed.GET("/removeFromCart", cartcontroller.RemoveFromCart(db))
	}

	adminUsers := r.Group("/api/users")
	adminUsers.Use(middleware.Auth(db, sessions), middleware.AdminOnly())
	{
		adminUsers.POST("/uploadimage", usercontroller.UploadImage())
		adminUsers.GET("/removeimage", usercontroller.RemoveImage())
	}
}
