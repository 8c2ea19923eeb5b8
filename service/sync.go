package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arrebolmedia/video-editor/model"
	"github.com/arrebolmedia/video-editor/pkg/logger"
)

// ErrBaserowNotConfigured is returned when sync runs without an API token.
var ErrBaserowNotConfigured = errors.New("baserow token not configured")

// SyncResult summarizes one sync pass over the CRM table.
type SyncResult struct {
	Synced  int      `json:"synced"`
	Skipped int      `json:"skipped"`
	Total   int      `json:"total"`
	Errors  []string `json:"errors,omitempty"`
}

// Syncer imports closed-won weddings from the CRM into projects.
type Syncer struct {
	store  Store
	client *BaserowClient
	// now is swappable in tests
	now func() time.Time
}

func NewSyncer(store Store, client *BaserowClient) *Syncer {
	return &Syncer{store: store, client: client, now: time.Now}
}

// Rows older than this never become projects, regardless of status.
var syncCutoff = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// isClosedWon matches the CRM's "Cerrado Ganado" status loosely, so label
// tweaks with emoji or casing changes keep matching.
func isClosedWon(row BaserowRow) bool {
	if row.Status == nil {
		return false
	}
	s := strings.ToLower(row.Status.Value)
	return strings.Contains(s, "cerrado") && strings.Contains(s, "ganado")
}

func parseEventDate(raw string) (time.Time, error) {
	return time.Parse("2006-01-02", raw)
}

// SyncUpcoming imports every closed-won row with an event date on or after
// the cutoff, creating a fully seeded project per new row. Rows already
// linked to a project are counted as skipped. Row-level failures are
// collected and do not abort the pass.
func (s *Syncer) SyncUpcoming(ctx context.Context) (*SyncResult, error) {
	return s.run(ctx, func(eventDate time.Time) bool {
		return !eventDate.Before(syncCutoff)
	}, true)
}

// SyncPast imports closed-won rows whose event already happened (but still
// after the cutoff). Past weddings get a bare project without the default
// scenes and versions, since the footage is curated by hand afterwards.
func (s *Syncer) SyncPast(ctx context.Context) (*SyncResult, error) {
	today := s.now().Truncate(24 * time.Hour)
	return s.run(ctx, func(eventDate time.Time) bool {
		return !eventDate.Before(syncCutoff) && eventDate.Before(today)
	}, false)
}

func (s *Syncer) run(ctx context.Context, dateOK func(time.Time) bool, seedDefaults bool) (*SyncResult, error) {
	if !s.client.Configured() {
		return nil, ErrBaserowNotConfigured
	}

	rows, err := s.client.ListRows(ctx)
	if err != nil {
		return nil, err
	}

	res := &SyncResult{Total: len(rows)}
	for _, row := range rows {
		if !isClosedWon(row) {
			res.Skipped++
			continue
		}
		eventDate, err := parseEventDate(row.EventDate)
		if err != nil {
			res.Skipped++
			continue
		}
		if !dateOK(eventDate) {
			res.Skipped++
			continue
		}

		if _, err := s.store.FindProjectByBaserowID(ctx, row.ID); err == nil {
			res.Skipped++
			continue
		} else if !errors.Is(err, ErrNotFound) {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", row.ID, err))
			continue
		}

		if err := s.importRow(ctx, row, seedDefaults); err != nil {
			logger.Error(ctx, "sync row failed", "baserow_id", row.ID, "error", err)
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", row.ID, err))
			continue
		}
		res.Synced++
	}

	logger.Info(ctx, "baserow sync finished",
		"synced", res.Synced, "skipped", res.Skipped, "total", res.Total, "errors", len(res.Errors))
	return res, nil
}

func (s *Syncer) importRow(ctx context.Context, row BaserowRow, seedDefaults bool) error {
	baserowID := row.ID
	weddingDate := row.EventDate
	p := model.Project{
		Name:        row.Nombre,
		WeddingDate: &weddingDate,
		FrameRate:   model.DefaultFrameRate,
		BaserowID:   &baserowID,
	}
	if err := s.store.CreateProject(ctx, &p); err != nil {
		return err
	}
	if !seedDefaults {
		return nil
	}
	return SeedProjectDefaults(ctx, s.store, p.ID)
}

// statusFieldByType maps a version type to the CRM column its status is
// pushed into.
var statusFieldByType = map[string]string{
	model.VersionTypeShort:  "Teaser 🎥",
	model.VersionTypeMedium: "Highlights 🎥",
	model.VersionTypeLong:   "Wedding Day 🎥",
}

// PushVersionStatus mirrors a version's status to the CRM row of its project.
// Projects that did not come from the CRM are ignored.
func (s *Syncer) PushVersionStatus(ctx context.Context, project *model.Project, version *model.Version) error {
	if project.BaserowID == nil {
		return nil
	}
	field, ok := statusFieldByType[version.Type]
	if !ok {
		return fmt.Errorf("no status field for version type %q", version.Type)
	}
	return s.client.UpdateRowField(ctx, *project.BaserowID, field, version.Status)
}
