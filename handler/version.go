package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arrebolmedia/video-editor/model"
	"github.com/arrebolmedia/video-editor/pkg/logger"
	"github.com/arrebolmedia/video-editor/service"
)

type VersionHandler struct {
	store     service.Store
	suggester *service.Suggester
	syncer    *service.Syncer
}

func NewVersionHandler(store service.Store, suggester *service.Suggester, syncer *service.Syncer) *VersionHandler {
	return &VersionHandler{store: store, suggester: suggester, syncer: syncer}
}

func (h *VersionHandler) List(c *gin.Context) {
	projectID, ok := idParam(c, "projectId")
	if !ok {
		return
	}
	versions, err := h.store.ListVersions(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching versions"})
		return
	}
	c.JSON(http.StatusOK, versions)
}

type CreateVersionRequest struct {
	ProjectID         int    `json:"project_id"`
	Name              string `json:"name" binding:"required"`
	Type              string `json:"type" binding:"required"`
	TargetDurationMin int    `json:"target_duration_min"`
	TargetDurationMax int    `json:"target_duration_max"`
}

// Create accepts the project either from the nested route or the body.
func (h *VersionHandler) Create(c *gin.Context) {
	var req CreateVersionRequest
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
	v := model.Version{
		ProjectID:         req.ProjectID,
		Name:              req.Name,
		Type:              req.Type,
		TargetDurationMin: req.TargetDurationMin,
		TargetDurationMax: req.TargetDurationMax,
		Status:            model.StatusPendiente,
	}
	if err := h.store.CreateVersion(c.Request.Context(), &v); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating version"})
		return
	}
	c.JSON(http.StatusOK, v)
}

// GetScenes returns the IDs of the scenes included in a version, in ref order.
func (h *VersionHandler) GetScenes(c *gin.Context) {
	versionID, ok := idParam(c, "versionId")
	if !ok {
		return
	}
	ids, err := h.store.ListVersionSceneIDs(c.Request.Context(), versionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching version scenes"})
		return
	}
	if ids == nil {
		ids = []int{}
	}
	c.JSON(http.StatusOK, ids)
}

type SetVersionScenesRequest struct {
	SceneIDs []int `json:"sceneIds"`
}

// SetScenes replaces a version's scene selection. IDs absent from the list
// become excluded by omission; an empty list clears the version.
func (h *VersionHandler) SetScenes(c *gin.Context) {
	versionID, ok := idParam(c, "versionId")
	if !ok {
		return
	}
	var req SetVersionScenesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := h.store.ReplaceVersionScenes(c.Request.Context(), versionID, req.SceneIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving version scenes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetSuggestions returns the cached suggestion snapshot, computing and
// persisting one when none exists or when ?regenerate=1 is passed.
func (h *VersionHandler) GetSuggestions(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	version, err := h.store.GetVersion(ctx, id)
	if err != nil {
		storeError(c, err, "Version not found")
		return
	}

	regenerate := c.Query("regenerate") == "1"
	if version.HasSuggestions() && !regenerate {
		c.JSON(http.StatusOK, gin.H{
			"songs":         version.SuggestedSongs,
			"openingScenes": version.SuggestedOpeningScenes,
			"closingScenes": version.SuggestedClosingScenes,
		})
		return
	}

	scenes, err := h.store.ListScenes(ctx, version.ProjectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching scenes"})
		return
	}

	sug := h.suggester.Suggest(version, scenes)
	if err := h.store.SaveSuggestions(ctx, id, sug.Songs, sug.Opening, sug.Closing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving suggestions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"songs":         sug.Songs,
		"openingScenes": sug.Opening,
		"closingScenes": sug.Closing,
		"anchorScenes":  sug.Anchor,
	})
}

type SaveSuggestionsRequest struct {
	Songs         model.SongList  `json:"songs"`
	OpeningScenes model.SceneList `json:"openingScenes"`
	ClosingScenes model.SceneList `json:"closingScenes"`
}

// SaveSuggestions persists a client-computed suggestion snapshot.
func (h *VersionHandler) SaveSuggestions(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req SaveSuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := h.store.SaveSuggestions(c.Request.Context(), id, req.Songs, req.OpeningScenes, req.ClosingScenes); err != nil {
		storeError(c, err, "Version not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type UpdateVersionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus changes a version's status and mirrors it to the CRM when the
// owning project is linked. The push is best effort: a CRM failure is logged
// and the local update still succeeds.
func (h *VersionHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req UpdateVersionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}
	ctx := c.Request.Context()

	version, err := h.store.UpdateVersionStatus(ctx, id, req.Status)
	if err != nil {
		storeError(c, err, "Version not found")
		return
	}

	if project, err := h.store.GetProject(ctx, version.ProjectID); err == nil {
		if err := h.syncer.PushVersionStatus(ctx, project, version); err != nil {
			logger.Error(ctx, "baserow status push failed",
				"version_id", version.ID, "project_id", project.ID, "error", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "version": version})
}
