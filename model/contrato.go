package model

import (
	"time"
)

// Contrato statuses
const (
	ContratoDraft     = "draft"
	ContratoSent      = "sent"
	ContratoSigned    = "signed"
	ContratoCancelled = "cancelled"
)

// Contrato is a legal service contract. The signed copy, when uploaded back,
// is embedded as base64 text; an object-storage archive is kept separately
// when configured.
type Contrato struct {
	ID                 int        `gorm:"primaryKey" json:"id"`
	ProjectID          *int       `json:"project_id,omitempty"`
	ClientName         string     `json:"client_name"`
	ClientEmail        string     `json:"client_email"`
	ClientPhone        string     `json:"client_phone"`
	ClientAddress      string     `json:"client_address"`
	WeddingDate        string     `json:"wedding_date"`
	Venue              string     `json:"venue"`
	VenueAddress       string     `json:"venue_address"`
	PackageType        string     `json:"package_type"`
	CoverageHours      int        `json:"coverage_hours"`
	PhotographersCount int        `json:"photographers_count"`
	VideographersCount int        `json:"videographers_count"`
	PhotosQuantity     int        `json:"photos_quantity"`
	Deliverables       StringList `gorm:"type:jsonb" json:"deliverables"`
	TotalAmount        float64    `json:"total_amount"`
	DepositAmount      float64    `json:"deposit_amount"`
	SecondPaymentDate  string     `json:"second_payment_date,omitempty"`
	TravelExpenses     bool       `json:"travel_expenses"`
	MealsCount         int        `json:"meals_count"`
	DepositPaid        bool       `json:"deposit_paid"`
	BalancePaid        bool       `json:"balance_paid"`
	Status             string     `json:"status"`
	SignedContractFile string     `gorm:"type:text" json:"signed_contract_file,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (Contrato) TableName() string {
	return "contratos"
}

// BalanceAmount is the remainder due after the deposit.
func (c *Contrato) BalanceAmount() float64 {
	return c.TotalAmount - c.DepositAmount
}
