package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arrebolmedia/video-editor/service"
)

type SyncHandler struct {
	syncer *service.Syncer
}

func NewSyncHandler(syncer *service.Syncer) *SyncHandler {
	return &SyncHandler{syncer: syncer}
}

// SyncBaserow imports closed-won upcoming weddings from the CRM.
func (h *SyncHandler) SyncBaserow(c *gin.Context) {
	res, err := h.syncer.SyncUpcoming(c.Request.Context())
	if err != nil {
		h.syncFailed(c, err, "Error syncing with Baserow")
		return
	}
	c.JSON(http.StatusOK, res)
}

// SyncPastWeddings imports closed-won weddings that already happened.
func (h *SyncHandler) SyncPastWeddings(c *gin.Context) {
	res, err := h.syncer.SyncPast(c.Request.Context())
	if err != nil {
		h.syncFailed(c, err, "Error syncing past weddings")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *SyncHandler) syncFailed(c *gin.Context, err error, msg string) {
	if errors.Is(err, service.ErrBaserowNotConfigured) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Baserow token not configured"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg, "message": err.Error()})
}
