package router

import (
	"myblog/internal/config"
	"myblog/internal/handlers"
	"myblog/internal/middleware"
	"myblog/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config) {
	// Handlers
	authHandler := handlers.NewAuthHandler(cfg)
	postHandler := handlers.NewPostHandler()
	commentHandler := handlers.NewCommentHandler()
	momentHandler := handlers.NewMomentHandler()
	imageHandler := handlers.NewImageHandler(cfg)
	projectHandler := handlers.NewProjectHandler()

	api := r.Group("/api")

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// Authenticated routes
	authed := api.Group("/")
	authed.Use(middleware.AuthRequired(cfg.SecretKey))
	{
		authed.GET("/userinfo", authHandler.UserInfo)

		authed.GET("/posts", postHandler.GetPosts)
		authed.GET("/post/first", postHandler.GetFirstPost)
		authed.GET("/post/:post_id", postHandler.GetPost)
		authed.POST("/post/:post_id/like", postHandler.ToggleLike)

		authed.GET("/comments/:post_id", commentHandler.List)
		authed.GET("/comments/:post_id/all", commentHandler.ListAll)
		authed.POST("/comments", commentHandler.Create)
		authed.DELETE("/comments/:comment_id", commentHandler.Delete)

		authed.GET("/moments", momentHandler.GetMoments)
		authed.POST("/moment", momentHandler.CreateMoment)
		authed.GET("/moment/:moment_id", momentHandler.GetMoment)
		authed.PUT("/moment/:moment_id", momentHandler.UpdateMoment)
		authed.POST("/moment/:moment_id/like", momentHandler.ToggleLike)
		authed.POST("/moment/:moment_id/comment", momentHandler.CreateComment)
		authed.GET("/moment/:moment_id/images", imageHandler.GetMomentImages)
		authed.POST("/moment/:moment_id/images", imageHandler.UploadMomentImage)
		authed.DELETE("/moment/image/:image_id", imageHandler.DeleteMomentImage)

		authed.GET("/projects", projectHandler.GetProjects)
		authed.GET("/project/:project_id", projectHandler.GetProject)
	}

	// Author-only routes
	author := api.Group("/")
	author.Use(middleware.AuthRequired(cfg.SecretKey), middleware.RoleRequired(models.RoleAuthor))
	{
		author.POST("/post", postHandler.CreatePost)
		author.PUT("/post/:post_id", postHandler.UpdatePost)
		author.DELETE("/post/:post_id", postHandler.DeletePost)

		author.DELETE("/moment/:moment_id", momentHandler.DeleteMoment)

		author.POST("/project", projectHandler.CreateProject)
		author.PUT("/project/:project_id", projectHandler.UpdateProject)
		author.DELETE("/project/:project_id", projectHandler.DeleteProject)
	}
}
