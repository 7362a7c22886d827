package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"myblog/internal/config"
	"myblog/internal/db"
	"myblog/internal/router"

	"github.com/gin-gonic/gin"
)

const distDir = "./web/dist"

func main() {
	cfg := config.Load()

	// Initialize Database
	db.Init(cfg.DatabaseURL)

	// Initialize Gin
	r := gin.Default()

	// API routes
	router.RegisterRoutes(r, cfg)

	// Uploaded moment images
	r.Static("/uploads", cfg.UploadDir)

	// Front-end SPA build. Any non-API path that is not a real file falls
	// back to index.html so client-side routes resolve.
	r.Static("/assets", filepath.Join(distDir, "assets"))
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		requested := filepath.Join(distDir, filepath.Clean(c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}
		c.File(filepath.Join(distDir, "index.html"))
	})

	log.Printf("Blog server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
