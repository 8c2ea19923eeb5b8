package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arrebolmedia/video-editor/model"
	"github.com/arrebolmedia/video-editor/service"
)

type LandingHandler struct {
	store    service.Store
	landings *service.LandingService
}

func NewLandingHandler(store service.Store, landings *service.LandingService) *LandingHandler {
	return &LandingHandler{store: store, landings: landings}
}

func (h *LandingHandler) List(c *gin.Context) {
	landings, err := h.store.ListLandings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching landings"})
		return
	}
	c.JSON(http.StatusOK, landings)
}

type LandingRequest struct {
	Slug            string  `json:"slug" binding:"required"`
	Title           string  `json:"title" binding:"required"`
	Subtitle        string  `json:"subtitle"`
	HeroImage       string  `json:"hero_image"`
	LandingType     string  `json:"landing_type"`
	AdjustmentType  string  `json:"adjustment_type"`
	AdjustmentValue float64 `json:"adjustment_value"`
	ShowBadge       bool    `json:"show_badge"`
	BadgeText       string  `json:"badge_text"`
}

func (r *LandingRequest) toModel() *model.Landing {
	landingType := r.LandingType
	if landingType == "" {
		landingType = model.LandingTypeClient
	}
	adjustmentType := r.AdjustmentType
	if adjustmentType == "" {
		adjustmentType = model.AdjustmentNone
	}
	return &model.Landing{
		Slug:            r.Slug,
		Title:           r.Title,
		Subtitle:        r.Subtitle,
		HeroImage:       r.HeroImage,
		LandingType:     landingType,
		AdjustmentType:  adjustmentType,
		AdjustmentValue: r.AdjustmentValue,
		ShowBadge:       r.ShowBadge,
		BadgeText:       r.BadgeText,
	}
}

func (h *LandingHandler) Create(c *gin.Context) {
	var req LandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slug and title are required"})
		return
	}
	l := req.toModel()
	if err := h.store.CreateLanding(c.Request.Context(), l); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating landing"})
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *LandingHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req LandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slug and title are required"})
		return
	}
	l, err := h.store.UpdateLanding(c.Request.Context(), id, req.toModel())
	if err != nil {
		storeError(c, err, "Landing not found")
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *LandingHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.store.DeleteLanding(c.Request.Context(), id); err != nil {
		storeError(c, err, "Landing not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Seed imports the default landing catalog.
func (h *LandingHandler) Seed(c *gin.Context) {
	created, err := h.landings.Seed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("%d landings importadas", created),
	})
}

// Generate materializes the landing's page files into the site project.
func (h *LandingHandler) Generate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	msg, err := h.landings.Generate(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Landing not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

// Preview writes a transient copy of an unsaved landing and returns the URL
// path the client should open.
func (h *LandingHandler) Preview(c *gin.Context) {
	var req LandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slug and title are required"})
		return
	}
	previewURL, err := h.landings.Preview(c.Request.Context(), req.toModel())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"previewUrl": previewURL})
}
