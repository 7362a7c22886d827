package handlers

import (
	"errors"
	"net/http"

	"myblog/internal/db"
	"myblog/internal/middleware"
	"myblog/internal/models"
	"myblog/internal/services"
	"myblog/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MomentHandler struct{}

func NewMomentHandler() *MomentHandler {
	return &MomentHandler{}
}

// momentPayload assembles one moment with its live counts, author and
// images. Counts are always fresh COUNT(*) queries; moments store no
// counter columns.
func momentPayload(moment models.Moment) (gin.H, error) {
	var likeCount int64
	if err := db.DB.Model(&models.MomentLike{}).Where("moment_id = ?", moment.ID).Count(&likeCount).Error; err != nil {
		return nil, err
	}

	var comments []models.MomentComment
	if err := db.DB.Where("moment_id = ?", moment.ID).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, err
	}

	var images []models.MomentImage
	if err := db.DB.Where("moment_id = ?", moment.ID).Order("display_order ASC").Find(&images).Error; err != nil {
		return nil, err
	}

	var user models.User
	username := ""
	if err := db.DB.Select("id, username").First(&user, moment.UserID).Error; err == nil {
		username = user.Username
	}

	return gin.H{
		"id":            moment.ID,
		"user_id":       moment.UserID,
		"content":       moment.Content,
		"publish_time":  moment.CreatedAt,
		"user":          gin.H{"id": moment.UserID, "username": username},
		"likes_count":   likeCount,
		"comment_count": len(comments),
		"comments":      comments,
		"images":        images,
	}, nil
}

func (h *MomentHandler) GetMoments(c *gin.Context) {
	page := utils.StringToInt(c.DefaultQuery("page", "1"))
	perPage := utils.StringToInt(c.DefaultQuery("per_page", "20"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > services.MaxPageSize {
		perPage = 20
	}

	var total int64
	if err := db.DB.Model(&models.Moment{}).Count(&total).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	var moments []models.Moment
	err := db.DB.Order("created_at DESC, id DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&moments).Error
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	payloads := make([]gin.H, 0, len(moments))
	for _, moment := range moments {
		payload, err := momentPayload(moment)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		payloads = append(payloads, payload)
	}

	c.JSON(http.StatusOK, gin.H{
		"moments":     payloads,
		"total":       total,
		"page":        page,
		"per_page":    perPage,
		"total_pages": services.TotalPages(total, perPage),
	})
}

type momentRequest struct {
	Content string `json:"content"`
}

func (h *MomentHandler) CreateMoment(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var req momentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":    false,
			"message":    "Moment content is required",
			"error_code": "CONTENT_REQUIRED",
		})
		return
	}

	moment := models.Moment{
		UserID:  identity.UserID,
		Content: req.Content,
	}
	if err := db.DB.Create(&moment).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	payload, err := momentPayload(moment)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Moment created successfully", "data": payload})
}

func (h *MomentHandler) GetMoment(c *gin.Context) {
	momentID := utils.StringToUint(c.Param("moment_id"))

	var moment models.Moment
	if err := db.DB.First(&moment, momentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success":    false,
				"message":    "Moment not found",
				"error_code": "MOMENT_NOT_FOUND",
			})
			return
		}
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	payload, err := momentPayload(moment)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, payload)
}

func (h *MomentHandler) UpdateMoment(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	momentID := utils.StringToUint(c.Param("moment_id"))

	var req momentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":    false,
			"message":    "Moment content is required",
			"error_code": "CONTENT_REQUIRED",
		})
		return
	}

	var moment models.Moment
	if err := db.DB.First(&moment, momentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success":    false,
				"message":    "Moment not found",
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
			"message":    "No permission to modify this moment",
			"error_code": "PERMISSION_DENIED",
		})
		return
	}

	if err := db.DB.Model(&moment).UpdateColumn("content", req.Content).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Moment updated successfully"})
}

func (h *MomentHandler) DeleteMoment(c *gin.Context) {
	momentID := utils.StringToUint(c.Param("moment_id"))

	result := db.DB.Delete(&models.Moment{}, momentID)
	if result.Error != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success":    false,
			"message":    "Moment not found",
			"error_code": "MOMENT_NOT_FOUND",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Moment deleted successfully"})
}

func (h *MomentHandler) ToggleLike(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	momentID := utils.StringToUint(c.Param("moment_id"))

	result, err := services.ToggleMomentLike(momentID, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success":    false,
				"message":    "Moment not found",
				"error_code": "MOMENT_NOT_FOUND",
			})
		case errors.Is(err, services.ErrDuplicateAction):
			c.JSON(http.StatusBadRequest, gin.H{
				"success":    false,
				"message":    "Duplicate like action, please try again",
				"error_code": "DUPLICATE_LIKE_ACTION",
			})
		default:
			respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		}
		return
	}

	message := "Moment liked"
	if !result.Liked {
		message = "Like removed"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    message,
		"like_count": result.LikeCount,
	})
}

type momentCommentRequest struct {
	Content string `json:"content"`
}

func (h *MomentHandler) CreateComment(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	momentID := utils.StringToUint(c.Param("moment_id"))

	var req momentCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":    false,
			"message":    "Comment content is required",
			"error_code": "CONTENT_REQUIRED",
		})
		return
	}

	var moment models.Moment
	if err := db.DB.Select("id").First(&moment, momentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success":    false,
				"message":    "Moment not found",
				"error_code": "MOMENT_NOT_FOUND",
			})
			return
		}
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	comment := models.MomentComment{
		MomentID: momentID,
		UserID:   identity.UserID,
		Content:  req.Content,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Comment added successfully", "comment_id": comment.ID})
}
