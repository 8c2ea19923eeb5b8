package service

import (
	"context"
	"fmt"

	"github.com/arrebolmedia/video-editor/model"
	"github.com/arrebolmedia/video-editor/pkg/logger"
)

// SeedProjectDefaults populates a freshly created project with the default
// scene taxonomy, the three deliverable cuts and, for the full cut, a scene
// reference for every scene in template order.
func SeedProjectDefaults(ctx context.Context, store Store, projectID int) error {
	sceneIDs := make([]int, 0, len(model.DefaultWeddingScenes))
	for i, tpl := range model.DefaultWeddingScenes {
		sc := model.Scene{
			ProjectID:         projectID,
			Name:              tpl.Name,
			Division:          tpl.Division,
			Description:       tpl.Description,
			PlannedDuration:   tpl.PlannedDuration,
			IsAnchorMoment:    tpl.IsAnchorMoment,
			AnchorDescription: tpl.AnchorDescription,
			Priority:          tpl.Priority,
			SceneOrder:        i,
		}
		if err := store.CreateScene(ctx, &sc); err != nil {
			return fmt.Errorf("seed scene %d: %w", i, err)
		}
		sceneIDs = append(sceneIDs, sc.ID)
	}

	for _, tpl := range model.DefaultVersions {
		v := model.Version{
			ProjectID:         projectID,
			Name:              tpl.Name,
			Type:              tpl.Type,
			TargetDurationMin: tpl.TargetDurationMin,
			TargetDurationMax: tpl.TargetDurationMax,
			Status:            model.StatusPendiente,
		}
		if err := store.CreateVersion(ctx, &v); err != nil {
			return fmt.Errorf("seed version %s: %w", tpl.Type, err)
		}
		// Only the full cut starts with every scene referenced. The shorter
		// cuts begin empty and are curated by the editor.
		if tpl.Type == model.VersionTypeLong {
			if err := store.ReplaceVersionScenes(ctx, v.ID, sceneIDs); err != nil {
				return fmt.Errorf("seed scene references: %w", err)
			}
		}
	}

	logger.Info(ctx, "seeded project defaults",
		"project_id", projectID,
		"scenes", len(sceneIDs),
		"versions", len(model.DefaultVersions))
	return nil
}

// InitializeScenes backfills the default taxonomy into a project that has no
// scenes yet. Projects that already have scenes are left untouched.
func InitializeScenes(ctx context.Context, store Store, projectID int) (bool, error) {
	n, err := store.CountScenes(ctx, projectID)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := SeedProjectDefaults(ctx, store, projectID); err != nil {
		return false, err
	}
	return true, nil
}
