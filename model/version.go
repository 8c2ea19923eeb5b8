package model

import (
	"time"
)

// Version types — one deliverable cut each.
const (
	VersionTypeShort  = "short"
	VersionTypeMedium = "medium"
	VersionTypeLong   = "long"
)

// StatusPendiente is the initial status of every version. The status is a
// free-form string mutated by the editor; the Baserow push forwards it
// verbatim.
const StatusPendiente = "Pendiente"

// Version represents one deliverable cut (teaser/highlights/full)
type Version struct {
	ID                     int       `gorm:"primaryKey" json:"id"`
	ProjectID              int       `gorm:"index" json:"project_id"`
	Name                   string    `json:"name"`
	Type                   string    `json:"type"`
	TargetDurationMin      int       `json:"target_duration_min"`
	TargetDurationMax      int       `json:"target_duration_max"`
	ActualDuration         int       `json:"actual_duration"`
	Status                 string    `json:"status"`
	SuggestedSongs         SongList  `gorm:"type:jsonb" json:"suggested_songs,omitempty"`
	SuggestedOpeningScenes SceneList `gorm:"type:jsonb" json:"suggested_opening_scenes,omitempty"`
	SuggestedClosingScenes SceneList `gorm:"type:jsonb" json:"suggested_closing_scenes,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

func (Version) TableName() string {
	return "versions"
}

// HasSuggestions reports whether any suggestion snapshot has been cached.
func (v *Version) HasSuggestions() bool {
	return len(v.SuggestedSongs) > 0 ||
		len(v.SuggestedOpeningScenes) > 0 ||
		len(v.SuggestedClosingScenes) > 0
}

// SceneReference is the inclusion of a scene in a version, with position.
// The set for a version is fully replaced on every save, never patched.
type SceneReference struct {
	ID               int  `gorm:"primaryKey" json:"id"`
	VersionID        int  `gorm:"index" json:"version_id"`
	SceneID          int  `json:"scene_id"`
	Included         bool `json:"included"`
	RefOrder         int  `json:"ref_order"`
	OverrideDuration *int `json:"override_duration"`
}

func (SceneReference) TableName() string {
	return "scene_references"
}
