package model

import (
	"time"
)

// Landing types
const (
	LandingTypeClient  = "client"
	LandingTypePlanner = "planner"
)

// Price adjustment types
const (
	AdjustmentNone       = "none"
	AdjustmentPercentage = "percentage"
	AdjustmentFixed      = "fixed"
)

// Landing is a marketing landing-page configuration. Generating a landing
// materializes page/layout source files into the site project; the record
// itself only holds the configuration.
type Landing struct {
	ID              int       `gorm:"primaryKey" json:"id"`
	Slug            string    `gorm:"uniqueIndex" json:"slug"`
	Title           string    `json:"title"`
	Subtitle        string    `json:"subtitle"`
	HeroImage       string    `json:"hero_image"`
	LandingType     string    `json:"landing_type"`
	AdjustmentType  string    `json:"adjustment_type"`
	AdjustmentValue float64   `json:"adjustment_value"`
	ShowBadge       bool      `json:"show_badge"`
	BadgeText       string    `json:"badge_text"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Landing) TableName() string {
	return "landings"
}

// AdjustedPrice applies the landing's price adjustment rule to a base price.
func (l *Landing) AdjustedPrice(basePrice float64) float64 {
	switch l.AdjustmentType {
	case AdjustmentPercentage:
		return basePrice * (1 + l.AdjustmentValue/100)
	case AdjustmentFixed:
		return basePrice + l.AdjustmentValue
	default:
		return basePrice
	}
}
