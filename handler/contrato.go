package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arrebolmedia/video-editor/model"
	"github.com/arrebolmedia/video-editor/pkg/logger"
	"github.com/arrebolmedia/video-editor/pkg/pdfgen"
	"github.com/arrebolmedia/video-editor/service"
)

type ContratoHandler struct {
	store   service.Store
	archive *service.ArchiveService // nil when object storage is not configured
}

func NewContratoHandler(store service.Store, archive *service.ArchiveService) *ContratoHandler {
	return &ContratoHandler{store: store, archive: archive}
}

func (h *ContratoHandler) List(c *gin.Context) {
	contratos, err := h.store.ListContratos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching contratos"})
		return
	}
	c.JSON(http.StatusOK, contratos)
}

func (h *ContratoHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	contrato, err := h.store.GetContrato(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Contrato not found")
		return
	}
	c.JSON(http.StatusOK, contrato)
}

type ContratoRequest struct {
	ProjectID          *int             `json:"project_id"`
	ClientName         string           `json:"client_name" binding:"required"`
	ClientEmail        string           `json:"client_email"`
	ClientPhone        string           `json:"client_phone"`
	ClientAddress      string           `json:"client_address"`
	WeddingDate        string           `json:"wedding_date"`
	Venue              string           `json:"venue"`
	VenueAddress       string           `json:"venue_address"`
	PackageType        string           `json:"package_type"`
	CoverageHours      int              `json:"coverage_hours"`
	PhotographersCount int              `json:"photographers_count"`
	VideographersCount int              `json:"videographers_count"`
	PhotosQuantity     int              `json:"photos_quantity"`
	Deliverables       model.StringList `json:"deliverables"`
	TotalAmount        float64          `json:"total_amount"`
	DepositAmount      float64          `json:"deposit_amount"`
	SecondPaymentDate  string           `json:"second_payment_date"`
	TravelExpenses     bool             `json:"travel_expenses"`
	MealsCount         int              `json:"meals_count"`
	DepositPaid        bool             `json:"deposit_paid"`
	BalancePaid        bool             `json:"balance_paid"`
	Status             string           `json:"status"`
	SignedContractFile string           `json:"signed_contract_file"`
}

func (r *ContratoRequest) toModel() *model.Contrato {
	status := r.Status
	if status == "" {
		status = model.ContratoDraft
	}
	return &model.Contrato{
		ProjectID:          r.ProjectID,
		ClientName:         r.ClientName,
		ClientEmail:        r.ClientEmail,
		ClientPhone:        r.ClientPhone,
		ClientAddress:      r.ClientAddress,
		WeddingDate:        r.WeddingDate,
		Venue:              r.Venue,
		VenueAddress:       r.VenueAddress,
		PackageType:        r.PackageType,
		CoverageHours:      r.CoverageHours,
		PhotographersCount: r.PhotographersCount,
		VideographersCount: r.VideographersCount,
		PhotosQuantity:     r.PhotosQuantity,
		Deliverables:       r.Deliverables,
		TotalAmount:        r.TotalAmount,
		DepositAmount:      r.DepositAmount,
		SecondPaymentDate:  r.SecondPaymentDate,
		TravelExpenses:     r.TravelExpenses,
		MealsCount:         r.MealsCount,
		DepositPaid:        r.DepositPaid,
		BalancePaid:        r.BalancePaid,
		Status:             status,
		SignedContractFile: r.SignedContractFile,
	}
}

func (h *ContratoHandler) Create(c *gin.Context) {
	var req ContratoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client name is required"})
		return
	}
	contrato := req.toModel()
	if err := h.store.CreateContrato(c.Request.Context(), contrato); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating contrato"})
		return
	}
	c.JSON(http.StatusOK, contrato)
}

func (h *ContratoHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req ContratoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client name is required"})
		return
	}
	ctx := c.Request.Context()

	contrato, err := h.store.UpdateContrato(ctx, id, req.toModel())
	if err != nil {
		storeError(c, err, "Contrato not found")
		return
	}

	// Archive a newly uploaded signed copy; the database blob is the record
	// of truth, the object store is a convenience.
	if h.archive != nil && contrato.SignedContractFile != "" {
		if _, err := h.archive.ArchiveSignedContract(ctx, contrato.ID, contrato.SignedContractFile); err != nil {
			logger.Error(ctx, "signed contract archive failed", "contrato_id", contrato.ID, "error", err)
		}
	}

	c.JSON(http.StatusOK, contrato)
}

type SignedContractRequest struct {
	SignedContractFile string `json:"signed_contract_file" binding:"required"`
}

// UploadSigned stores the signed copy uploaded back by the client (base64) and
// marks the contrato as signed. The object-storage archive is best effort.
func (h *ContratoHandler) UploadSigned(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req SignedContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signed contract file is required"})
		return
	}
	ctx := c.Request.Context()

	contrato, err := h.store.GetContrato(ctx, id)
	if err != nil {
		storeError(c, err, "Contrato not found")
		return
	}
	contrato.SignedContractFile = req.SignedContractFile
	contrato.Status = model.ContratoSigned

	updated, err := h.store.UpdateContrato(ctx, id, contrato)
	if err != nil {
		storeError(c, err, "Contrato not found")
		return
	}

	if h.archive != nil {
		if _, err := h.archive.ArchiveSignedContract(ctx, updated.ID, updated.SignedContractFile); err != nil {
			logger.Error(ctx, "signed contract archive failed", "contrato_id", updated.ID, "error", err)
		}
	}

	c.JSON(http.StatusOK, updated)
}

// SignedURL returns an expiring download link for the archived signed copy.
func (h *ContratoHandler) SignedURL(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if h.archive == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Object storage not configured"})
		return
	}
	ctx := c.Request.Context()

	contrato, err := h.store.GetContrato(ctx, id)
	if err != nil {
		storeError(c, err, "Contrato not found")
		return
	}
	if contrato.SignedContractFile == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "No signed contract uploaded"})
		return
	}

	url, err := h.archive.GetPresignedURL(ctx, fmt.Sprintf("contratos/%d/signed.pdf", contrato.ID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating download link"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *ContratoHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.store.DeleteContrato(c.Request.Context(), id); err != nil {
		storeError(c, err, "Contrato not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PDF renders the service contract document for download.
func (h *ContratoHandler) PDF(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	contrato, err := h.store.GetContrato(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Contrato not found")
		return
	}

	data, err := pdfgen.GenerateContractPDF(contrato)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating PDF"})
		return
	}

	filename := fmt.Sprintf("Contrato_%s_%s.pdf",
		strings.ReplaceAll(contrato.ClientName, " ", "_"), contrato.WeddingDate)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
