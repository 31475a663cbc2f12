package usercontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alexw14/orange-box/cart"
	"github.com/alexw14/orange-box/middleware"
	"github.com/alexw14/orange-box/models"
	"github.com/alexw14/orange-box/session"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Lastname string `json:"lastname" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a user with a hashed credential.
// POST /api/users/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
			return
		}

		user := models.User{
			Email:    input.Email,
			Name:     input.Name,
			Lastname: input.Lastname,
			Role:     models.RoleStandard,
		}
		if err := user.SetPassword(input.Password); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to hash password"})
			return
		}

		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Failed to create user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// Login checks the credential and issues a session token, delivered as a
// cookie. A login replaces any session the user had elsewhere.
// POST /api/users/login
func Login(db *gorm.DB, sessions *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"loginSuccess": false, "message": "Invalid input"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, gin.H{"loginSuccess": false, "message": "Email not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"loginSuccess": false, "message": "Failed to look up user"})
			return
		}

		if !user.ComparePassword(input.Password) {
			c.JSON(http.StatusOK, gin.H{"loginSuccess": false, "message": "Wrong password"})
			return
		}

		token, err := sessions.Issue(db, &user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"loginSuccess": false, "message": "Failed to create session"})
			return
		}

		c.SetCookie(middleware.SessionCookie, token, int(sessions.TTL().Seconds()), "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"loginSuccess": true})
	}
}

// Logout revokes the caller's session and clears the cookie.
// GET /api/users/logout
func Logout(db *gorm.DB, sessions *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := sessions.Revoke(db, user.ID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false})
			return
		}
		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// Auth reports the caller's session snapshot, cart included.
// GET /api/users/auth
func Auth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		items, err := cart.Items(db, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"isAdmin":  user.IsAdmin(),
			"isAuth":   true,
			"email":    user.Email,
			"name":     user.Name,
			"lastname": user.Lastname,
			"role":     user.Role,
			"cart":     items,
			"history":  user.History,
		})
	}
}
