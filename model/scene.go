package model

import (
	"time"
)

// Scene divisions — the narrative position of a beat inside the plan.
const (
	DivisionIntroduccion = "INTRODUCCION"
	DivisionNucleo       = "NUCLEO"
	DivisionResolucion   = "RESOLUCION"
)

// Anchor flag values. This is a legacy string enum, not a boolean: stored
// data and import scripts compare against the literal "SI"/"NO".
const (
	AnchorYes = "SI"
	AnchorNo  = "NO"
)

// Scene priorities
const (
	PriorityMustHave   = "must-have"
	PriorityNiceToHave = "nice-to-have"
)

// Scene represents one narrative beat of the wedding video plan
type Scene struct {
	ID                int       `gorm:"primaryKey" json:"id"`
	ProjectID         int       `gorm:"index" json:"project_id"`
	Name              string    `json:"name"`
	Division          string    `json:"division"`
	Description       string    `json:"description"`
	PlannedDuration   int       `json:"planned_duration"`
	ActualDuration    *int      `json:"actual_duration"`
	IsAnchorMoment    string    `json:"is_anchor_moment"`
	AnchorDescription string    `json:"anchor_description"`
	Priority          string    `json:"priority"`
	SceneOrder        int       `json:"scene_order"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Scene) TableName() string {
	return "scenes"
}
