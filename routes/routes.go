package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alexw14/orange-box/session"
)

// SetupRoutes wires up the product and user route groups. The db handle and
// session service are built once in main and passed down from here.
func SetupRoutes(r *gin.Engine, db *gorm.DB, sessions *session.Service) {
	SetupProductRoutes(r, db, sessions)
	SetupUserRoutes(r, db, sessions)
}
