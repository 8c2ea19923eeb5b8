package handler

import (
	"net/http"
	"testing"
)

func TestSyncEndpointsWithoutToken(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/api/sync/baserow", "/api/sync/past-weddings"} {
		w := doJSON(t, router, "POST", path, nil)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("%s: expected status 500, got %d", path, w.Code)
		}
		var resp map[string]interface{}
		decodeJSON(t, w, &resp)
		if resp["error"] != "Baserow token not configured" {
			t.Errorf("%s: unexpected error: %v", path, resp["error"])
		}
	}
}
