package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/arrebolmedia/video-editor/config"
	"github.com/arrebolmedia/video-editor/model"
)

// ErrNotFound is returned by store lookups when the entity does not exist.
var ErrNotFound = errors.New("not found")

// SceneUpdate carries the editable fields of a scene. The PUT handler always
// sends the full field set, so this is a whole-row replace, not a patch.
type SceneUpdate struct {
	Name              string
	Division          string
	Description       string
	PlannedDuration   int
	IsAnchorMoment    string
	AnchorDescription string
	Priority          string
}

// Store abstracts persistence for every entity behind one contract so the
// handlers never branch on the backend. Two implementations exist: the
// relational DBStore and the MemoryStore fallback.
type Store interface {
	// Kind identifies the active backend ("postgresql" or "memory").
	Kind() string

	ListProjects(ctx context.Context, assignedTo string) ([]model.Project, error)
	GetProject(ctx context.Context, id int) (*model.Project, error)
	CreateProject(ctx context.Context, p *model.Project) error
	UpdateProject(ctx context.Context, id int, name string, weddingDate *string) (*model.Project, error)
	AssignProject(ctx context.Context, id int, assignedTo *string) (*model.Project, error)
	DeleteAllProjects(ctx context.Context) (int, error)
	FindProjectByBaserowID(ctx context.Context, baserowID int) (*model.Project, error)

	ListScenes(ctx context.Context, projectID int) ([]model.Scene, error)
	CountScenes(ctx context.Context, projectID int) (int, error)
	CreateScene(ctx context.Context, s *model.Scene) error
	UpdateScene(ctx context.Context, id int, upd SceneUpdate) (*model.Scene, error)
	SetSceneOrder(ctx context.Context, id, order int) error

	ListVersions(ctx context.Context, projectID int) ([]model.Version, error)
	GetVersion(ctx context.Context, id int) (*model.Version, error)
	CreateVersion(ctx context.Context, v *model.Version) error
	UpdateVersionStatus(ctx context.Context, id int, status string) (*model.Version, error)
	SaveSuggestions(ctx context.Context, id int, songs model.SongList, opening, closing model.SceneList) error

	ListVersionSceneIDs(ctx context.Context, versionID int) ([]int, error)
	ReplaceVersionScenes(ctx context.Context, versionID int, sceneIDs []int) error

	ListLandings(ctx context.Context) ([]model.Landing, error)
	GetLanding(ctx context.Context, id int) (*model.Landing, error)
	GetLandingBySlug(ctx context.Context, slug string) (*model.Landing, error)
	CreateLanding(ctx context.Context, l *model.Landing) error
	UpdateLanding(ctx context.Context, id int, l *model.Landing) (*model.Landing, error)
	DeleteLanding(ctx context.Context, id int) error

	ListContratos(ctx context.Context) ([]model.Contrato, error)
	GetContrato(ctx context.Context, id int) (*model.Contrato, error)
	CreateContrato(ctx context.Context, c *model.Contrato) error
	UpdateContrato(ctx context.Context, id int, c *model.Contrato) (*model.Contrato, error)
	DeleteContrato(ctx context.Context, id int) error

	ListRecibos(ctx context.Context) ([]model.Recibo, error)
	GetRecibo(ctx context.Context, id int) (*model.Recibo, error)
	CreateRecibo(ctx context.Context, r *model.Recibo) error
	UpdateRecibo(ctx context.Context, id int, r *model.Recibo) (*model.Recibo, error)
	DeleteRecibo(ctx context.Context, id int) error
}

// OpenStore tries the relational store once and silently downgrades to the
// in-memory fallback when it is unreachable. Operations never retry the
// database afterwards.
func OpenStore(cfg *config.DBConfig) Store {
	db, err := NewDBStore(cfg)
	if err != nil {
		slog.Warn("postgresql not available, using in-memory storage", "error", err)
		return NewMemoryStore()
	}
	slog.Info("connected to postgresql", "host", cfg.Host, "database", cfg.Name)
	return db
}
