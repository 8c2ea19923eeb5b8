package model

import (
	"time"
)

// Recibo is a payment receipt, optionally pre-filled from a contrato's
// deposit. The receipt number is generated by the caller and must be unique.
type Recibo struct {
	ID            int       `gorm:"primaryKey" json:"id"`
	ContratoID    *int      `json:"contrato_id,omitempty"`
	ClientName    string    `json:"client_name"`
	ClientEmail   string    `json:"client_email"`
	ReceiptNumber string    `gorm:"uniqueIndex" json:"receipt_number"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	PaymentDate   string    `json:"payment_date"`
	Concept       string    `json:"concept"`
	Notes         string    `json:"notes,omitempty"`
	Venue         string    `json:"venue,omitempty"`
	EventDate     string    `json:"event_date,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Recibo) TableName() string {
	return "recibos"
}
