package usercontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const imagePublicPath = "/uploads"

// UploadDir resolves where product images land on disk. The same directory
// is served statically under /uploads by main.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// UploadImage stores a product image on local disk and returns its handle.
// Admin only.
// POST /api/users/uploadimage
func UploadImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "file is required"})
			return
		}

		if err := os.MkdirAll(UploadDir(), os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create upload folder"})
			return
		}

		ext := filepath.Ext(file.Filename)
		filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
		savePath := filepath.Join(UploadDir(), filename)

		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save image"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"public_id": strings.TrimSuffix(filename, ext),
			"url":       fmt.Sprintf("%s/%s", imagePublicPath, filename),
		})
	}
}

// RemoveImage deletes a previously uploaded image by its handle. Admin only.
// GET /api/users/removeimage?public_id=
func RemoveImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		publicID := c.Query("public_id")
		if publicID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "public_id is required"})
			return
		}

		// public_id is a bare name; Base strips any path the client smuggles in.
		pattern := filepath.Join(UploadDir(), filepath.Base(publicID)+".*")
		matches, err := filepath.Glob(pattern)
		if err != nil || len(matches) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Image not found"})
			return
		}

		for _, match := range matches {
			if err := os.Remove(match); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to remove image"})
				return
			}
		}
		c.String(http.StatusOK, "Removed")
	}
}
