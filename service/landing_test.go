package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arrebolmedia/video-editor/model"
)

func TestRenderLandingFiles(t *testing.T) {
	files := RenderLandingFiles(&model.Landing{
		Slug:            "colecciones-planners",
		Title:           "Colecciones para Wedding Planners",
		Subtitle:        "Precios preferenciales",
		HeroImage:       "/images/hero.jpg",
		LandingType:     model.LandingTypePlanner,
		AdjustmentType:  model.AdjustmentPercentage,
		AdjustmentValue: -10,
		ShowBadge:       true,
		BadgeText:       "Precio aliado",
	})

	page, ok := files["page.tsx"]
	if !ok {
		t.Fatal("Expected page.tsx to be rendered")
	}
	layout, ok := files["layout.tsx"]
	if !ok {
		t.Fatal("Expected layout.tsx to be rendered")
	}

	for _, want := range []string{
		"slug: 'colecciones-planners'",
		"title: 'Colecciones para Wedding Planners'",
		"adjustmentType: 'percentage'",
		"adjustmentValue: -10",
		"badgeText: 'Precio aliado'",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page.tsx missing %q", want)
		}
	}
	if strings.Contains(page, "__") {
		t.Error("page.tsx still contains unreplaced placeholders")
	}
	if !strings.Contains(layout, `data-landing="colecciones-planners"`) {
		t.Error("layout.tsx missing the slug marker")
	}
}

func TestRenderLandingFilesHiddenBadge(t *testing.T) {
	files := RenderLandingFiles(&model.Landing{
		Slug:      "sin-badge",
		Title:     "Sin Badge",
		BadgeText: "No debería salir",
	})
	if strings.Contains(files["page.tsx"], "No debería salir") {
		t.Error("Badge text rendered although show_badge is false")
	}
}

func TestRenderLandingFilesEscapesQuotes(t *testing.T) {
	files := RenderLandingFiles(&model.Landing{
		Slug:  "quotes",
		Title: "Ana's Wedding",
	})
	if !strings.Contains(files["page.tsx"], `Ana\'s Wedding`) {
		t.Error("Single quote in title not escaped")
	}
}

func TestDirSiteWriter(t *testing.T) {
	root := t.TempDir()
	w := &DirSiteWriter{Root: root}

	err := w.WriteLandingFiles("mi-landing", map[string]string{
		"page.tsx":   "page content",
		"layout.tsx": "layout content",
	})
	if err != nil {
		t.Fatalf("WriteLandingFiles failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "app", "mi-landing", "page.tsx"))
	if err != nil {
		t.Fatalf("Reading generated file failed: %v", err)
	}
	if string(data) != "page content" {
		t.Errorf("Unexpected file content: %q", data)
	}
}

func TestDirSiteWriterWithoutRoot(t *testing.T) {
	w := &DirSiteWriter{}
	if err := w.WriteLandingFiles("slug", nil); err == nil {
		t.Error("Expected an error when no site directory is configured")
	}
}

func TestLandingGenerate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	root := t.TempDir()
	svc := NewLandingService(store, &DirSiteWriter{Root: root})

	l := model.Landing{Slug: "boda-2026", Title: "Boda 2026"}
	if err := store.CreateLanding(ctx, &l); err != nil {
		t.Fatalf("CreateLanding failed: %v", err)
	}

	msg, err := svc.Generate(ctx, l.ID)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if msg != "Archivos generados para /boda-2026" {
		t.Errorf("Unexpected message: %q", msg)
	}

	if _, err := os.Stat(filepath.Join(root, "app", "boda-2026", "layout.tsx")); err != nil {
		t.Errorf("layout.tsx not written: %v", err)
	}
}

func TestLandingPreview(t *testing.T) {
	store := NewMemoryStore()
	root := t.TempDir()
	svc := NewLandingService(store, &DirSiteWriter{Root: root})

	url, err := svc.Preview(context.Background(), &model.Landing{Slug: "borrador", Title: "Borrador"})
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if url != "/preview" {
		t.Errorf("Expected /preview, got %q", url)
	}

	// The preview always lands in the reserved slug, not the landing's own
	if _, err := os.Stat(filepath.Join(root, "app", "preview", "page.tsx")); err != nil {
		t.Errorf("Preview files not written: %v", err)
	}
}

func TestLandingSeedIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := NewLandingService(store, &DirSiteWriter{})

	created, err := svc.Seed(ctx)
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if created != len(defaultLandings) {
		t.Errorf("Expected %d created, got %d", len(defaultLandings), created)
	}

	created, err = svc.Seed(ctx)
	if err != nil {
		t.Fatalf("Second seed failed: %v", err)
	}
	if created != 0 {
		t.Errorf("Second seed should create nothing, got %d", created)
	}

	landings, _ := store.ListLandings(ctx)
	if len(landings) != len(defaultLandings) {
		t.Errorf("Expected %d landings total, got %d", len(defaultLandings), len(landings))
	}
}
