package handler

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/arrebolmedia/video-editor/config"
	"github.com/arrebolmedia/video-editor/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{JWTSecret: "test-secret", TokenExpireHours: 1},
		Users: []config.User{
			{Email: "anthony@arrebolweddings.com", Password: "secret", Name: "Anthony Cazares", Role: "admin"},
			{Email: "andrey@arrebolweddings.com", Password: "secret", Name: "Andrey Luna", Role: "editor"},
		},
	}
}

// newTestRouter wires the API against an in-memory store, mirroring the route
// table of the real server.
func newTestRouter(t *testing.T) (*gin.Engine, service.Store) {
	t.Helper()

	cfg := testConfig()
	store := service.NewMemoryStore()
	baserow := service.NewBaserowClient(&cfg.Baserow)
	syncer := service.NewSyncer(store, baserow)
	suggester := service.NewSuggester(rand.New(rand.NewSource(7)))
	landings := service.NewLandingService(store, &service.DirSiteWriter{Root: t.TempDir()})

	authHandler := NewAuthHandler(cfg)
	projectHandler := NewProjectHandler(store)
	sceneHandler := NewSceneHandler(store)
	versionHandler := NewVersionHandler(store, suggester, syncer)
	landingHandler := NewLandingHandler(store, landings)
	contratoHandler := NewContratoHandler(store, nil)
	reciboHandler := NewReciboHandler(store)
	syncHandler := NewSyncHandler(syncer)

	alias := func(from, to string, fn gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Params = append(c.Params, gin.Param{Key: to, Value: c.Param(from)})
			fn(c)
		}
	}

	router := gin.New()
	api := router.Group("/api")
	{
		api.POST("/login", authHandler.Login)
		api.GET("/users", authHandler.ListUsers)

		api.POST("/sync/baserow", syncHandler.SyncBaserow)
		api.POST("/sync/past-weddings", syncHandler.SyncPastWeddings)

		api.GET("/projects", projectHandler.List)
		api.POST("/projects", projectHandler.Create)
		api.GET("/projects/:id", projectHandler.Get)
		api.PUT("/projects/:id", projectHandler.Update)
		api.PUT("/projects/:id/assign", projectHandler.Assign)
		api.POST("/projects/:id/initialize-scenes", projectHandler.InitializeScenes)
		api.GET("/projects/:id/scenes", alias("id", "projectId", sceneHandler.List))
		api.POST("/projects/:id/scenes", alias("id", "projectId", sceneHandler.Create))
		api.GET("/projects/:id/versions", alias("id", "projectId", versionHandler.List))
		api.POST("/projects/:id/versions", alias("id", "projectId", versionHandler.Create))

		api.POST("/scenes", sceneHandler.Create)
		api.PUT("/scenes/:id", sceneHandler.Update)
		api.PATCH("/scenes/reorder", sceneHandler.Reorder)

		api.POST("/versions", versionHandler.Create)
		api.GET("/versions/:id/scenes", alias("id", "versionId", versionHandler.GetScenes))
		api.POST("/versions/:id/scenes", alias("id", "versionId", versionHandler.SetScenes))
		api.GET("/versions/:id/suggestions", versionHandler.GetSuggestions)
		api.POST("/versions/:id/suggestions", versionHandler.SaveSuggestions)
		api.PATCH("/versions/:id/status", versionHandler.UpdateStatus)

		api.GET("/landings", landingHandler.List)
		api.POST("/landings", landingHandler.Create)
		api.PUT("/landings/:id", landingHandler.Update)
		api.DELETE("/landings/:id", landingHandler.Delete)
		api.POST("/landings/seed", landingHandler.Seed)
		api.POST("/landings/:id/generate", landingHandler.Generate)
		api.POST("/landings/preview", landingHandler.Preview)

		api.GET("/contratos", contratoHandler.List)
		api.POST("/contratos", contratoHandler.Create)
		api.GET("/contratos/:id", contratoHandler.Get)
		api.PUT("/contratos/:id", contratoHandler.Update)
		api.DELETE("/contratos/:id", contratoHandler.Delete)
		api.POST("/contratos/:id/signed", contratoHandler.UploadSigned)
		api.GET("/contratos/:id/signed-url", contratoHandler.SignedURL)
		api.GET("/contratos/:id/pdf", contratoHandler.PDF)

		api.GET("/recibos", reciboHandler.List)
		api.POST("/recibos", reciboHandler.Create)
		api.GET("/recibos/:id", reciboHandler.Get)
		api.PUT("/recibos/:id", reciboHandler.Update)
		api.DELETE("/recibos/:id", reciboHandler.Delete)
		api.GET("/recibos/:id/pdf", reciboHandler.PDF)

		api.DELETE("/projects/all", projectHandler.DeleteAll)
	}

	return router, store
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Marshaling request body failed: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("Decoding response failed: %v\nbody: %s", err, w.Body.String())
	}
}
