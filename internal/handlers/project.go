package handlers

import (
	"net/http"
	"time"

	"myblog/internal/db"
	"myblog/internal/models"
	"myblog/internal/utils"

	"github.com/gin-gonic/gin"
)

const projectListCacheKey = "projects:list"

type ProjectHandler struct{}

func NewProjectHandler() *ProjectHandler {
	return &ProjectHandler{}
}

func projectPayload(p models.Project) gin.H {
	return gin.H{
		"id":           p.ID,
		"name":         p.Name,
		"description":  p.Description,
		"img":          p.Img,
		"technologies": p.TechnologyList(),
		"start_date":   p.StartDate,
		"end_date":     p.EndDate,
		"role":         p.Role,
		"demo_url":     p.DemoURL,
		"project_url":  p.ProjectURL,
	}
}

// GetProjects lists the portfolio. The list changes rarely, so it is
// cached for a minute.
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	if cached := utils.GetCache().Get(projectListCacheKey); cached != nil {
		if payloads, ok := cached.([]gin.H); ok {
			c.JSON(http.StatusOK, payloads)
			return
		}
	}

	var projects []models.Project
	if err := db.DB.Order("id ASC").Find(&projects).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	payloads := make([]gin.H, 0, len(projects))
	for _, p := range projects {
		payloads = append(payloads, projectPayload(p))
	}

	utils.GetCache().Set(projectListCacheKey, payloads, 1*time.Minute)
	c.JSON(http.StatusOK, payloads)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID := utils.StringToUint(c.Param("project_id"))

	var project models.Project
	if err := db.DB.First(&project, projectID).Error; err != nil {
		respondServiceError(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusOK, projectPayload(project))
}

type projectRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Img          *string  `json:"img"`
	Technologies []string `json:"technologies"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	Role         *string  `json:"role"`
	DemoURL      *string  `json:"demo_url"`
	ProjectURL   *string  `json:"project_url"`
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == nil || *req.Name == "" || req.Description == nil || *req.Description == "" {
		respondError(c, http.StatusBadRequest, "Name and description are required")
		return
	}

	project := models.Project{
		Name:        *req.Name,
		Description: *req.Description,
	}
	if req.Img != nil {
		project.Img = *req.Img
	}
	if req.StartDate != nil {
		project.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = *req.EndDate
	}
	if req.Role != nil {
		project.Role = *req.Role
	}
	if req.DemoURL != nil {
		project.DemoURL = *req.DemoURL
	}
	if req.ProjectURL != nil {
		project.ProjectURL = *req.ProjectURL
	}
	if err := project.SetTechnologyList(req.Technologies); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid technologies list")
		return
	}

	if err := db.DB.Create(&project).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	utils.GetCache().Delete(projectListCacheKey)
	c.JSON(http.StatusCreated, gin.H{"message": "Project created successfully", "project_id": project.ID})
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID := utils.StringToUint(c.Param("project_id"))

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Img != nil {
		updates["img"] = *req.Img
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.DemoURL != nil {
		updates["demo_url"] = *req.DemoURL
	}
	if req.ProjectURL != nil {
		updates["project_url"] = *req.ProjectURL
	}
	if req.Technologies != nil {
		var p models.Project
		if err := p.SetTechnologyList(req.Technologies); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid technologies list")
			return
		}
		updates["technologies"] = p.Technologies
	}

	if len(updates) == 0 {
		respondError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	result := db.DB.Model(&models.Project{}).Where("id = ?", projectID).Updates(updates)
	if result.Error != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "Project not found")
		return
	}

	utils.GetCache().Delete(projectListCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "Project updated successfully"})
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID := utils.StringToUint(c.Param("project_id"))

	result := db.DB.Delete(&models.Project{}, projectID)
	if result.Error != nil {
		respondError(c, http.StatusInternalServerError, "Database error: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "Project not found")
		return
	}

	utils.GetCache().Delete(projectListCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
