package handlers

import (
	"fmt"
	"net/http"

	"myblog/internal/db"
	"myblog/internal/middleware"
	"myblog/internal/models"
	"myblog/internal/services"
	"myblog/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

// List pages over root comments; each root carries all of its transitive
// replies as a flat list. A post with no comments answers 200 with empty
// data, never 404.
func (h *CommentHandler) List(c *gin.Context) {
	postID := utils.StringToUint(c.Param("post_id"))
	page := utils.StringToInt(c.DefaultQuery("page", "1"))
	pageSize := utils.StringToInt(c.DefaultQuery("page_size", "5"))

	nodes, pagination, err := services.ListCommentPage(postID, page, pageSize)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       nodes,
		"pagination": pagination,
	})
}

// ListAll returns the complete comment forest for a post, nested to
// arbitrary depth.
func (h *CommentHandler) ListAll(c *gin.Context) {
	postID := utils.StringToUint(c.Param("post_id"))

	nodes, err := services.ListCommentTree(postID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": nodes})
}

type commentRequest struct {
	PostID   uint   `json:"post_id"`
	Content  string `json:"content"`
	ParentID *uint  `json:"parent_id"`
}

func (h *CommentHandler) Create(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PostID == 0 || req.Content == "" {
		respondError(c, http.StatusBadRequest, "Missing required parameters: post_id, content")
		return
	}

	var post models.Post
	if err := db.DB.Select("id").First(&post, req.PostID).Error; err != nil {
		respondServiceError(c, err, "Post not found")
		return
	}

	content := req.Content
	if req.ParentID != nil {
		var parent models.PostComment
		if err := db.DB.Preload("User").First(&parent, *req.ParentID).Error; err != nil {
			respondServiceError(c, err, "Parent comment not found")
			return
		}
		if parent.User.Username != "" {
			content = fmt.Sprintf("@%s %s", parent.User.Username, content)
		}
	}

	comment := models.PostComment{
		UserID:   identity.UserID,
		PostID:   req.PostID,
		ParentID: req.ParentID,
		Content:  content,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		return refreshCommentCount(tx, req.PostID)
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Comment added successfully", "comment_id": comment.ID})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	commentID := utils.StringToUint(c.Param("comment_id"))

	var comment models.PostComment
	if err := db.DB.First(&comment, commentID).Error; err != nil {
		respondServiceError(c, err, "Comment not found")
		return
	}

	if !middleware.CanModify(identity, comment.UserID) {
		respondError(c, http.StatusForbidden, "No permission to delete this comment")
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&comment).Error; err != nil {
			return err
		}
		return refreshCommentCount(tx, comment.PostID)
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// refreshCommentCount reconciles the post's denormalized counter with the
// live row count, inside the caller's transaction.
func refreshCommentCount(tx *gorm.DB, postID uint) error {
	var count int64
	if err := tx.Model(&models.PostComment{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return err
	}
	return tx.Model(&models.Post{}).Where("id = ?", postID).
		UpdateColumn("comment_count", count).Error
}
