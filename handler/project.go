package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arrebolmedia/video-editor/model"
	"github.com/arrebolmedia/video-editor/pkg/logger"
	"github.com/arrebolmedia/video-editor/service"
)

type ProjectHandler struct {
	store service.Store
}

func NewProjectHandler(store service.Store) *ProjectHandler {
	return &ProjectHandler{store: store}
}

// List returns projects, restricted to assigned ones for editors.
func (h *ProjectHandler) List(c *gin.Context) {
	assignedTo := ""
	if c.Query("role") == "editor" {
		assignedTo = c.Query("user")
	}

	projects, err := h.store.ListProjects(c.Request.Context(), assignedTo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	WeddingDate *string `json:"wedding_date"`
	FrameRate   int     `json:"frame_rate"`
}

// Create creates a project and seeds its default scenes, versions and the
// full cut's scene references. Children are not returned inline.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project name is required"})
		return
	}
	if req.FrameRate == 0 {
		req.FrameRate = model.DefaultFrameRate
	}

	ctx := c.Request.Context()
	p := model.Project{
		Name:        req.Name,
		WeddingDate: req.WeddingDate,
		FrameRate:   req.FrameRate,
	}
	if err := h.store.CreateProject(ctx, &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating project"})
		return
	}
	if err := service.SeedProjectDefaults(ctx, h.store, p.ID); err != nil {
		logger.Error(ctx, "project defaults seeding failed", "project_id", p.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating project"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	p, err := h.store.GetProject(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Project not found")
		return
	}
	c.JSON(http.StatusOK, p)
}

type UpdateProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	WeddingDate *string `json:"wedding_date"`
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project name is required"})
		return
	}
	p, err := h.store.UpdateProject(c.Request.Context(), id, req.Name, req.WeddingDate)
	if err != nil {
		storeError(c, err, "Project not found")
		return
	}
	c.JSON(http.StatusOK, p)
}

type AssignProjectRequest struct {
	AssignedTo *string `json:"assigned_to"`
}

// Assign sets or clears the editor responsible for a project.
func (h *ProjectHandler) Assign(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req AssignProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	p, err := h.store.AssignProject(c.Request.Context(), id, req.AssignedTo)
	if err != nil {
		storeError(c, err, "Project not found")
		return
	}
	c.JSON(http.StatusOK, p)
}

// InitializeScenes backfills the default taxonomy into an empty project.
func (h *ProjectHandler) InitializeScenes(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := h.store.GetProject(ctx, id); err != nil {
		storeError(c, err, "Project not found")
		return
	}
	seeded, err := service.InitializeScenes(ctx, h.store, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error initializing scenes"})
		return
	}
	if !seeded {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project already has scenes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Default scenes created"})
}

// DeleteAll wipes every project and its children.
func (h *ProjectHandler) DeleteAll(c *gin.Context) {
	ctx := c.Request.Context()
	count, err := h.store.DeleteAllProjects(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting all projects"})
		return
	}
	logger.Warn(ctx, "all projects deleted", "count", count)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Deleted %d projects", count),
		"count":   count,
	})
}
