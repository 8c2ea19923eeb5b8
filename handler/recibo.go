package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arrebolmedia/video-editor/model"
	"github.com/arrebolmedia/video-editor/pkg/pdfgen"
	"github.com/arrebolmedia/video-editor/service"
)

type ReciboHandler struct {
	store service.Store
}

func NewReciboHandler(store service.Store) *ReciboHandler {
	return &ReciboHandler{store: store}
}

func (h *ReciboHandler) List(c *gin.Context) {
	recibos, err := h.store.ListRecibos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching recibos"})
		return
	}
	c.JSON(http.StatusOK, recibos)
}

func (h *ReciboHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	recibo, err := h.store.GetRecibo(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Recibo not found")
		return
	}
	c.JSON(http.StatusOK, recibo)
}

type ReciboRequest struct {
	ContratoID    *int    `json:"contrato_id"`
	ClientName    string  `json:"client_name" binding:"required"`
	ClientEmail   string  `json:"client_email"`
	ReceiptNumber string  `json:"receipt_number" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	PaymentMethod string  `json:"payment_method"`
	PaymentDate   string  `json:"payment_date"`
	Concept       string  `json:"concept"`
	Notes         string  `json:"notes"`
	Venue         string  `json:"venue"`
	EventDate     string  `json:"event_date"`
}

func (r *ReciboRequest) toModel() *model.Recibo {
	return &model.Recibo{
		ContratoID:    r.ContratoID,
		ClientName:    r.ClientName,
		ClientEmail:   r.ClientEmail,
		ReceiptNumber: r.ReceiptNumber,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		PaymentDate:   r.PaymentDate,
		Concept:       r.Concept,
		Notes:         r.Notes,
		Venue:         r.Venue,
		EventDate:     r.EventDate,
	}
}

func (h *ReciboHandler) Create(c *gin.Context) {
	var req ReciboRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client name, receipt number and amount are required"})
		return
	}
	recibo := req.toModel()
	if err := h.store.CreateRecibo(c.Request.Context(), recibo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating recibo"})
		return
	}
	c.JSON(http.StatusOK, recibo)
}

func (h *ReciboHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req ReciboRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client name, receipt number and amount are required"})
		return
	}
	recibo, err := h.store.UpdateRecibo(c.Request.Context(), id, req.toModel())
	if err != nil {
		storeError(c, err, "Recibo not found")
		return
	}
	c.JSON(http.StatusOK, recibo)
}

func (h *ReciboHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.store.DeleteRecibo(c.Request.Context(), id); err != nil {
		storeError(c, err, "Recibo not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PDF renders the payment receipt document for download.
func (h *ReciboHandler) PDF(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	recibo, err := h.store.GetRecibo(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Recibo not found")
		return
	}

	data, err := pdfgen.GenerateReceiptPDF(recibo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating PDF"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", recibo.ReceiptNumber+".pdf"))
	c.Data(http.StatusOK, "application/pdf", data)
}
