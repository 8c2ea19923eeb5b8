package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/arrebolmedia/video-editor/model"
)

func projectVersions(t *testing.T, router *gin.Engine, projectID int) []model.Version {
	t.Helper()
	w := doJSON(t, router, "GET", fmt.Sprintf("/api/projects/%d/versions", projectID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Fetching versions failed: %d %s", w.Code, w.Body.String())
	}
	var versions []model.Version
	decodeJSON(t, w, &versions)
	return versions
}

func versionByType(t *testing.T, versions []model.Version, versionType string) model.Version {
	t.Helper()
	for _, v := range versions {
		if v.Type == versionType {
			return v
		}
	}
	t.Fatalf("No version of type %q in %+v", versionType, versions)
	return model.Version{}
}

func TestCreateVersion(t *testing.T) {
	router, _ := newTestRouter(t)
	p := createProject(t, router, "Con corte extra")

	w := doJSON(t, router, "POST", "/api/versions", CreateVersionRequest{
		ProjectID:         p.ID,
		Name:              "Documental",
		Type:              model.VersionTypeLong,
		TargetDurationMin: 2400,
		TargetDurationMax: 4800,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var v model.Version
	decodeJSON(t, w, &v)
	if v.Status != model.StatusPendiente {
		t.Errorf("New versions must start pending, got %q", v.Status)
	}
}

func TestVersionScenesRoundTrip(t *testing.T) {
	router, _ := newTestRouter(t)
	p := createProject(t, router, "Selección")

	versions := projectVersions(t, router, p.ID)
	teaser := versionByType(t, versions, model.VersionTypeShort)
	full := versionByType(t, versions, model.VersionTypeLong)

	// The full cut starts with every scene; the teaser starts empty
	var fullIDs []int
	w := doJSON(t, router, "GET", fmt.Sprintf("/api/versions/%d/scenes", full.ID), nil)
	decodeJSON(t, w, &fullIDs)
	if len(fullIDs) != len(model.DefaultWeddingScenes) {
		t.Errorf("Full cut has %d scenes, want %d", len(fullIDs), len(model.DefaultWeddingScenes))
	}

	var teaserIDs []int
	w = doJSON(t, router, "GET", fmt.Sprintf("/api/versions/%d/scenes", teaser.ID), nil)
	decodeJSON(t, w, &teaserIDs)
	if len(teaserIDs) != 0 {
		t.Errorf("Teaser should start empty, has %d", len(teaserIDs))
	}

	pick := []int{fullIDs[3], fullIDs[1], fullIDs[8]}
	w = doJSON(t, router, "POST", fmt.Sprintf("/api/versions/%d/scenes", teaser.ID), SetVersionScenesRequest{SceneIDs: pick})
	if w.Code != http.StatusOK {
		t.Fatalf("Saving selection failed: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, "GET", fmt.Sprintf("/api/versions/%d/scenes", teaser.ID), nil)
	decodeJSON(t, w, &teaserIDs)
	if len(teaserIDs) != 3 || teaserIDs[0] != pick[0] || teaserIDs[1] != pick[1] || teaserIDs[2] != pick[2] {
		t.Errorf("Expected %v in order, got %v", pick, teaserIDs)
	}

	// An empty list clears the selection
	w = doJSON(t, router, "POST", fmt.Sprintf("/api/versions/%d/scenes", teaser.ID), SetVersionScenesRequest{SceneIDs: []int{}})
	if w.Code != http.StatusOK {
		t.Fatalf("Clearing selection failed: %d %s", w.Code, w.Body.String())
	}
	w = doJSON(t, router, "GET", fmt.Sprintf("/api/versions/%d/scenes", teaser.ID), nil)
	decodeJSON(t, w, &teaserIDs)
	if len(teaserIDs) != 0 {
		t.Errorf("Expected empty selection, got %v", teaserIDs)
	}
}

func TestGetSuggestionsComputesAndCaches(t *testing.T) {
	router, _ := newTestRouter(t)
	p := createProject(t, router, "Sugerencias")
	teaser := versionByType(t, projectVersions(t, router, p.ID), model.VersionTypeShort)

	w := doJSON(t, router, "GET", fmt.Sprintf("/api/versions/%d/suggestions", teaser.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var fresh struct {
		Songs         model.SongList  `json:"songs"`
		OpeningScenes model.SceneList `json:"openingScenes"`
		ClosingScenes model.SceneList `json:"closingScenes"`
		AnchorScenes  model.SceneList `json:"anchorScenes"`
	}
	decodeJSON(t, w, &fresh)
	if len(fresh.Songs) != 1 {
		t.Errorf("Teaser expects 1 song, got %d", len(fresh.Songs))
	}
	if len(fresh.AnchorScenes) == 0 {
		t.Error("Fresh computation should include anchor scenes")
	}

	// Second call serves the snapshot, which has no anchor list
	w = doJSON(t, router, "GET", fmt.Sprintf("/api/versions/%d/suggestions", teaser.ID), nil)
	var cached map[string]interface{}
	decodeJSON(t, w, &cached)
	if _, ok := cached["anchorScenes"]; ok {
		t.Error("Cached response should not include anchor scenes")
	}
	if _, ok := cached["songs"]; !ok {
		t.Error("Cached response missing songs")
	}

	// regenerate=1 recomputes
	w = doJSON(t, router, "GET", fmt.Sprintf("/api/versions/%d/suggestions?regenerate=1", teaser.ID), nil)
	var regen map[string]interface{}
	decodeJSON(t, w, &regen)
	if _, ok := regen["anchorScenes"]; !ok {
		t.Error("Regenerated response should include anchor scenes")
	}
}

func TestSaveSuggestions(t *testing.T) {
	router, _ := newTestRouter(t)
	p := createProject(t, router, "Snapshot manual")
	teaser := versionByType(t, projectVersions(t, router, p.ID), model.VersionTypeShort)

	w := doJSON(t, router, "POST", fmt.Sprintf("/api/versions/%d/suggestions", teaser.ID), SaveSuggestionsRequest{
		Songs:         model.SongList{{Title: "At Last", Artist: "Etta James"}},
		OpeningScenes: model.SceneList{{Name: "First Look"}},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	// The saved snapshot is now served as the cache
	w = doJSON(t, router, "GET", fmt.Sprintf("/api/versions/%d/suggestions", teaser.ID), nil)
	var cached struct {
		Songs model.SongList `json:"songs"`
	}
	decodeJSON(t, w, &cached)
	if len(cached.Songs) != 1 || cached.Songs[0].Title != "At Last" {
		t.Errorf("Expected the saved snapshot, got %+v", cached.Songs)
	}

	w = doJSON(t, router, "POST", "/api/versions/999/suggestions", SaveSuggestionsRequest{})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestUpdateVersionStatus(t *testing.T) {
	router, _ := newTestRouter(t)
	p := createProject(t, router, "Estados")
	teaser := versionByType(t, projectVersions(t, router, p.ID), model.VersionTypeShort)

	w := doJSON(t, router, "PATCH", fmt.Sprintf("/api/versions/%d/status", teaser.ID), UpdateVersionStatusRequest{
		Status: "En edición",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool          `json:"success"`
		Version model.Version `json:"version"`
	}
	decodeJSON(t, w, &resp)
	if !resp.Success || resp.Version.Status != "En edición" {
		t.Errorf("Unexpected response: %+v", resp)
	}

	w = doJSON(t, router, "PATCH", fmt.Sprintf("/api/versions/%d/status", teaser.ID), map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 without a status, got %d", w.Code)
	}

	w = doJSON(t, router, "PATCH", "/api/versions/999/status", UpdateVersionStatusRequest{Status: "En edición"})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}
