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
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

func (h *PostHandler) GetPosts(c *gin.Context) {
	var posts []models.Post
	if err := db.DB.Order("id ASC").Find(&posts).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetFirstPost returns the oldest post; the front page renders it as the
// pinned "about" article.
func (h *PostHandler) GetFirstPost(c *gin.Context) {
	var post models.Post
	if err := db.DB.Order("id ASC").First(&post).Error; err != nil {
		respondServiceError(c, err, "No posts found")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	postID := utils.StringToUint(c.Param("post_id"))

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		respondServiceError(c, err, "Post not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            post.ID,
		"user_id":       post.UserID,
		"title":         post.Title,
		"content":       post.Content,
		"content_html":  utils.RenderMarkdown(post.Content),
		"like_count":    post.LikeCount,
		"comment_count": post.CommentCount,
		"created_at":    post.CreatedAt,
		"updated_at":    post.UpdatedAt,
	})
}

type postRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Content == "" {
		respondError(c, http.StatusBadRequest, "Title and content are required")
		return
	}

	post := models.Post{
		UserID:  identity.UserID,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Post created successfully", "post_id": post.ID})
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID := utils.StringToUint(c.Param("post_id"))

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.Title == "" && req.Content == "") {
		respondError(c, http.StatusBadRequest, "No data provided for update")
		return
	}

	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Content != "" {
		updates["content"] = req.Content
	}

	result := db.DB.Model(&models.Post{}).Where("id = ?", postID).Updates(updates)
	if result.Error != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "Post not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post updated successfully"})
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	postID := utils.StringToUint(c.Param("post_id"))

	result := db.DB.Delete(&models.Post{}, postID)
	if result.Error != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "Post not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// ToggleLike flips the caller's like on a post. First call likes, second
// unlikes, and so on.
func (h *PostHandler) ToggleLike(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	postID := utils.StringToUint(c.Param("post_id"))

	result, err := services.TogglePostLike(postID, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success":    false,
				"message":    "Post not found",
				"error_code": "POST_NOT_FOUND",
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

	message := "Post liked"
	if !result.Liked {
		message = "Like removed"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    message,
		"like_count": result.LikeCount,
	})
}
