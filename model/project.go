package model

import (
	"time"
)

// Project represents one wedding engagement
type Project struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	WeddingDate *string   `json:"wedding_date"`
	FrameRate   int       `json:"frame_rate"`
	AssignedTo  *string   `json:"assigned_to"`
	BaserowID   *int      `gorm:"index" json:"baserow_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

// DefaultFrameRate is applied when a project is created without one.
const DefaultFrameRate = 24
