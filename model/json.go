package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Song is one entry of the curated suggestion catalogs.
type Song struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Mood   string `json:"mood"`
	Tempo  string `json:"tempo"`
}

// SongList is stored as a jsonb column.
type SongList []Song

// SceneList holds a cached snapshot of suggested scenes, stored as jsonb.
type SceneList []Scene

// StringList is stored as a jsonb column.
type StringList []string

func (l SongList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *SongList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func (l SceneList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *SceneList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value interface{}, dst interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return errors.New(fmt.Sprint("failed to unmarshal jsonb value:", value))
	}
}
