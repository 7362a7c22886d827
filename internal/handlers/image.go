package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"myblog/internal/config"
	"myblog/internal/db"
	"myblog/internal/middleware"
	"myblog/internal/models"
	"myblog/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ImageHandler struct {
	cfg *config.Config
}

func NewImageHandler(cfg *config.Config) *ImageHandler {
	return &ImageHandler{cfg: cfg}
}

func (h *ImageHandler) GetMomentImages(c *gin.Context) {
	momentID := utils.StringToUint(c.Param("moment_id"))

	var moment models.Moment
	if err := db.DB.Select("id").First(&moment, momentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success":    false,
				"error":      "Moment not found",
				"error_code": "MOMENT_NOT_FOUND",
			})
			return
		}
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	var images []models.MomentImage
	if err := db.DB.Where("moment_id = ?", momentID).Order("display_order ASC").Find(&images).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "images": images})
}

// UploadMomentImage stores a multipart image under the configured upload
// directory with a generated filename and records its URL and display
// order against the moment.
func (h *ImageHandler) UploadMomentImage(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	momentID := utils.StringToUint(c.Param("moment_id"))

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":    false,
			"error":      "Image file is required",
			"error_code": "IMAGE_FILE_REQUIRED",
		})
		return
	}

	displayOrder := utils.StringToInt(c.DefaultPostForm("display_order", "1"))
	if displayOrder < 1 {
		displayOrder = 1
	}

	var moment models.Moment
	if err := db.DB.First(&moment, momentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success":    false,
				"error":      "Moment not found",
				"error_code": "MOMENT_NOT_FOUND",
			})
			return
		}
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	if !middleware.CanModify(identity, moment.UserID) {
		c.JSON(http.StatusForbidden, gin.H{
			"success":    false,
			"error":      "No permission to modify this moment",
			"error_code": "PERMISSION_DENIED",
		})
		return
	}

	if err := os.MkdirAll(h.cfg.UploadDir, 0o755); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to prepare upload directory")
		return
	}

	filename := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(h.cfg.UploadDir, filename)); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to save image")
		return
	}

	image := models.MomentImage{
		MomentID:     momentID,
		ImageURL:     "/uploads/" + filename,
		DisplayOrder: displayOrder,
	}
	if err := db.DB.Create(&image).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Image added successfully",
		"image_id": image.ID,
	})
}

func (h *ImageHandler) DeleteMomentImage(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	imageID := utils.StringToUint(c.Param("image_id"))

	var image models.MomentImage
	if err := db.DB.Preload("Moment").First(&image, imageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success":    false,
				"error":      "Image not found",
				"error_code": "IMAGE_NOT_FOUND",
			})
			return
		}
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	if !middleware.CanModify(identity, image.Moment.UserID) {
		c.JSON(http.StatusForbidden, gin.H{
			"success":    false,
			"error":      "No permission to delete this image",
			"error_code": "PERMISSION_DENIED",
		})
		return
	}

	if err := db.DB.Delete(&image).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Image deleted successfully"})
}
