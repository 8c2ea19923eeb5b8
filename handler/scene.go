package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arrebolmedia/video-editor/model"
	"github.com/arrebolmedia/video-editor/service"
)

type SceneHandler struct {
	store service.Store
}

func NewSceneHandler(store service.Store) *SceneHandler {
	return &SceneHandler{store: store}
}

// List returns a project's scenes in scene_order.
func (h *SceneHandler) List(c *gin.Context) {
	projectID, ok := idParam(c, "projectId")
	if !ok {
		return
	}
	scenes, err := h.store.ListScenes(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching scenes"})
		return
	}
	c.JSON(http.StatusOK, scenes)
}

type CreateSceneRequest struct {
	ProjectID         int    `json:"project_id"`
	Name              string `json:"name" binding:"required"`
	Division          string `json:"division"`
	Description       string `json:"description"`
	PlannedDuration   int    `json:"planned_duration"`
	IsAnchorMoment    string `json:"is_anchor_moment"`
	AnchorDescription string `json:"anchor_description"`
	Priority          string `json:"priority"`
	SceneOrder        int    `json:"scene_order"`
}

// Create accepts the project either from the nested route or the body.
func (h *SceneHandler) Create(c *gin.Context) {
	var req CreateSceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if c.Param("projectId") != "" {
		projectID, ok := idParam(c, "projectId")
		if !ok {
			return
		}
		req.ProjectID = projectID
	}
	if req.ProjectID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project id is required"})
		return
	}
	if req.IsAnchorMoment == "" {
		req.IsAnchorMoment = model.AnchorNo
	}

	s := model.Scene{
		ProjectID:         req.ProjectID,
		Name:              req.Name,
		Division:          req.Division,
		Description:       req.Description,
		PlannedDuration:   req.PlannedDuration,
		IsAnchorMoment:    req.IsAnchorMoment,
		AnchorDescription: req.AnchorDescription,
		Priority:          req.Priority,
		SceneOrder:        req.SceneOrder,
	}
	if err := h.store.CreateScene(c.Request.Context(), &s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating scene"})
		return
	}
	c.JSON(http.StatusOK, s)
}

type UpdateSceneRequest struct {
	Name              string `json:"name"`
	Division          string `json:"division"`
	Description       string `json:"description"`
	PlannedDuration   int    `json:"planned_duration"`
	IsAnchorMoment    string `json:"is_anchor_moment"`
	AnchorDescription string `json:"anchor_description"`
	Priority          string `json:"priority"`
}

// Update replaces the scene's editable fields wholesale.
func (h *SceneHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req UpdateSceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	s, err := h.store.UpdateScene(c.Request.Context(), id, service.SceneUpdate{
		Name:              req.Name,
		Division:          req.Division,
		Description:       req.Description,
		PlannedDuration:   req.PlannedDuration,
		IsAnchorMoment:    req.IsAnchorMoment,
		AnchorDescription: req.AnchorDescription,
		Priority:          req.Priority,
	})
	if err != nil {
		storeError(c, err, "Scene not found")
		return
	}
	c.JSON(http.StatusOK, s)
}

type ReorderScenesRequest struct {
	Scenes []SceneOrderUpdate `json:"scenes" binding:"required"`
}

type SceneOrderUpdate struct {
	ID         int `json:"id"`
	SceneOrder int `json:"scene_order"`
}

// Reorder applies position updates one by one. Contiguity is the caller's
// responsibility; unknown IDs are skipped silently.
func (h *SceneHandler) Reorder(c *gin.Context) {
	var req ReorderScenesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	ctx := c.Request.Context()
	for _, upd := range req.Scenes {
		if err := h.store.SetSceneOrder(ctx, upd.ID, upd.SceneOrder); err != nil && err != service.ErrNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reordering scenes"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
