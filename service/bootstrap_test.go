package service

import (
	"context"
	"testing"

	"github.com/arrebolmedia/video-editor/model"
)

func TestSeedProjectDefaults(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	p := model.Project{Name: "Boda Test"}
	if err := store.CreateProject(ctx, &p); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	if err := SeedProjectDefaults(ctx, store, p.ID); err != nil {
		t.Fatalf("SeedProjectDefaults failed: %v", err)
	}

	scenes, err := store.ListScenes(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListScenes failed: %v", err)
	}
	if len(scenes) != len(model.DefaultWeddingScenes) {
		t.Errorf("Expected %d scenes, got %d", len(model.DefaultWeddingScenes), len(scenes))
	}
	for i, sc := range scenes {
		if sc.SceneOrder != i {
			t.Errorf("Scene %d has order %d, want %d", sc.ID, sc.SceneOrder, i)
		}
	}

	versions, err := store.ListVersions(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListVersions failed: %v", err)
	}
	if len(versions) != 3 {
		t.Fatalf("Expected 3 versions, got %d", len(versions))
	}

	wantVersions := map[string]struct {
		name     string
		min, max int
	}{
		model.VersionTypeShort:  {"Teaser", 55, 65},
		model.VersionTypeMedium: {"Highlights", 180, 300},
		model.VersionTypeLong:   {"Full", 1800, 3600},
	}
	for _, v := range versions {
		want, ok := wantVersions[v.Type]
		if !ok {
			t.Errorf("Unexpected version type %q", v.Type)
			continue
		}
		if v.Name != want.name || v.TargetDurationMin != want.min || v.TargetDurationMax != want.max {
			t.Errorf("Version %s = %+v, want %+v", v.Type, v, want)
		}
		if v.Status != model.StatusPendiente {
			t.Errorf("Version %s starts with status %q", v.Type, v.Status)
		}

		ids, err := store.ListVersionSceneIDs(ctx, v.ID)
		if err != nil {
			t.Fatalf("ListVersionSceneIDs failed: %v", err)
		}
		if v.Type == model.VersionTypeLong {
			if len(ids) != len(scenes) {
				t.Errorf("Full cut has %d scene refs, want %d", len(ids), len(scenes))
			}
			for i, id := range ids {
				if id != scenes[i].ID {
					t.Errorf("Full cut ref %d is scene %d, want %d", i, id, scenes[i].ID)
				}
			}
		} else if len(ids) != 0 {
			t.Errorf("Version %s should start empty, has %d refs", v.Type, len(ids))
		}
	}
}

func TestInitializeScenes(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	p := model.Project{Name: "Sin escenas"}
	store.CreateProject(ctx, &p)

	seeded, err := InitializeScenes(ctx, store, p.ID)
	if err != nil {
		t.Fatalf("InitializeScenes failed: %v", err)
	}
	if !seeded {
		t.Error("Expected first call to seed")
	}

	seeded, err = InitializeScenes(ctx, store, p.ID)
	if err != nil {
		t.Fatalf("InitializeScenes failed: %v", err)
	}
	if seeded {
		t.Error("Second call must not seed again")
	}

	scenes, _ := store.ListScenes(ctx, p.ID)
	if len(scenes) != len(model.DefaultWeddingScenes) {
		t.Errorf("Expected %d scenes after repeated init, got %d", len(model.DefaultWeddingScenes), len(scenes))
	}
}
