package handlers

import (
	"errors"
	"net/http"
	"time"

	"myblog/internal/config"
	"myblog/internal/db"
	"myblog/internal/middleware"
	"myblog/internal/models"
	"myblog/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Missing username or password")
		return
	}

	var existing models.User
	err := db.DB.Where("username = ?", req.Username).First(&existing).Error
	if err == nil {
		respondError(c, http.StatusBadRequest, "User already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		Username: req.Username,
		Password: hash,
		Role:     models.RoleGuest,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "role": user.Role})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	var user models.User
	if err := db.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		respondError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	expiration := time.Duration(h.cfg.JWTExpirationHours) * time.Hour
	token, err := middleware.IssueToken(&user, h.cfg.SecretKey, expiration)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}

// UserInfo echoes the identity carried by the token.
func (h *AuthHandler) UserInfo(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	c.JSON(http.StatusOK, gin.H{
		"username": identity.Username,
		"role":     identity.Role,
	})
}
