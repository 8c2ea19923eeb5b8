package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/arrebolmedia/video-editor/model"
)

// MemoryStore keeps everything in slices behind one mutex. It exists so the
// server stays usable when postgresql is down; data is lost on restart.
// All entities share a single ID counter, matching the relational sequences
// closely enough for the handlers not to care.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int

	projects  []model.Project
	scenes    []model.Scene
	versions  []model.Version
	sceneRefs []model.SceneReference
	landings  []model.Landing
	contratos []model.Contrato
	recibos   []model.Recibo
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (m *MemoryStore) Kind() string { return "memory" }

func (m *MemoryStore) allocID() int {
	id := m.nextID
	m.nextID++
	return id
}

func (m *MemoryStore) ListProjects(_ context.Context, assignedTo string) ([]model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.Project, 0, len(m.projects))
	for _, p := range m.projects {
		if assignedTo != "" && (p.AssignedTo == nil || *p.AssignedTo != assignedTo) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryStore) GetProject(_ context.Context, id int) (*model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.projects {
		if m.projects[i].ID == id {
			p := m.projects[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) CreateProject(_ context.Context, p *model.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	p.ID = m.allocID()
	p.CreatedAt = now
	p.UpdatedAt = now
	m.projects = append(m.projects, *p)
	return nil
}

func (m *MemoryStore) UpdateProject(_ context.Context, id int, name string, weddingDate *string) (*model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.projects {
		if m.projects[i].ID == id {
			m.projects[i].Name = name
			m.projects[i].WeddingDate = weddingDate
			m.projects[i].UpdatedAt = time.Now()
			p := m.projects[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) AssignProject(_ context.Context, id int, assignedTo *string) (*model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.projects {
		if m.projects[i].ID == id {
			m.projects[i].AssignedTo = assignedTo
			m.projects[i].UpdatedAt = time.Now()
			p := m.projects[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// DeleteAllProjects wipes projects and every dependent row, then resets the
// ID counter so a reseeded dataset starts from 1 again.
func (m *MemoryStore) DeleteAllProjects(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.projects)
	m.projects = nil
	m.scenes = nil
	m.versions = nil
	m.sceneRefs = nil
	m.nextID = 1
	return n, nil
}

func (m *MemoryStore) FindProjectByBaserowID(_ context.Context, baserowID int) (*model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.projects {
		if m.projects[i].BaserowID != nil && *m.projects[i].BaserowID == baserowID {
			p := m.projects[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) ListScenes(_ context.Context, projectID int) ([]model.Scene, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []model.Scene
	for _, s := range m.scenes {
		if s.ProjectID == projectID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SceneOrder < out[j].SceneOrder
	})
	return out, nil
}

func (m *MemoryStore) CountScenes(_ context.Context, projectID int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, s := range m.scenes {
		if s.ProjectID == projectID {
			n++
		}
	}
	return n, nil
}

func (m *MemoryStore) CreateScene(_ context.Context, s *model.Scene) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	s.ID = m.allocID()
	s.CreatedAt = now
	s.UpdatedAt = now
	m.scenes = append(m.scenes, *s)
	return nil
}

func (m *MemoryStore) UpdateScene(_ context.Context, id int, upd SceneUpdate) (*model.Scene, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.scenes {
		if m.scenes[i].ID == id {
			m.scenes[i].Name = upd.Name
			m.scenes[i].Division = upd.Division
			m.scenes[i].Description = upd.Description
			m.scenes[i].PlannedDuration = upd.PlannedDuration
			m.scenes[i].IsAnchorMoment = upd.IsAnchorMoment
			m.scenes[i].AnchorDescription = upd.AnchorDescription
			m.scenes[i].Priority = upd.Priority
			m.scenes[i].UpdatedAt = time.Now()
			s := m.scenes[i]
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) SetSceneOrder(_ context.Context, id, order int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.scenes {
		if m.scenes[i].ID == id {
			m.scenes[i].SceneOrder = order
			m.scenes[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) ListVersions(_ context.Context, projectID int) ([]model.Version, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []model.Version
	for _, v := range m.versions {
		if v.ProjectID == projectID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) GetVersion(_ context.Context, id int) (*model.Version, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.versions {
		if m.versions[i].ID == id {
			v := m.versions[i]
			return &v, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) CreateVersion(_ context.Context, v *model.Version) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	v.ID = m.allocID()
	v.CreatedAt = now
	v.UpdatedAt = now
	m.versions = append(m.versions, *v)
	return nil
}

func (m *MemoryStore) UpdateVersionStatus(_ context.Context, id int, status string) (*model.Version, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.versions {
		if m.versions[i].ID == id {
			m.versions[i].Status = status
			m.versions[i].UpdatedAt = time.Now()
			v := m.versions[i]
			return &v, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) SaveSuggestions(_ context.Context, id int, songs model.SongList, opening, closing model.SceneList) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.versions {
		if m.versions[i].ID == id {
			m.versions[i].SuggestedSongs = songs
			m.versions[i].SuggestedOpeningScenes = opening
			m.versions[i].SuggestedClosingScenes = closing
			m.versions[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) ListVersionSceneIDs(_ context.Context, versionID int) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	refs := make([]model.SceneReference, 0)
	for _, r := range m.sceneRefs {
		if r.VersionID == versionID && r.Included {
			refs = append(refs, r)
		}
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].RefOrder < refs[j].RefOrder })

	ids := make([]int, len(refs))
	for i, r := range refs {
		ids[i] = r.SceneID
	}
	return ids, nil
}

// ReplaceVersionScenes drops every reference the version had and reinserts
// the given scene IDs in order.
func (m *MemoryStore) ReplaceVersionScenes(_ context.Context, versionID int, sceneIDs []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.sceneRefs[:0]
	for _, r := range m.sceneRefs {
		if r.VersionID != versionID {
			kept = append(kept, r)
		}
	}
	m.sceneRefs = kept

	for i, sceneID := range sceneIDs {
		m.sceneRefs = append(m.sceneRefs, model.SceneReference{
			ID:        m.allocID(),
			VersionID: versionID,
			SceneID:   sceneID,
			Included:  true,
			RefOrder:  i,
		})
	}
	return nil
}

func (m *MemoryStore) ListLandings(_ context.Context) ([]model.Landing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.Landing, len(m.landings))
	copy(out, m.landings)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) GetLanding(_ context.Context, id int) (*model.Landing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.landings {
		if m.landings[i].ID == id {
			l := m.landings[i]
			return &l, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) GetLandingBySlug(_ context.Context, slug string) (*model.Landing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.landings {
		if m.landings[i].Slug == slug {
			l := m.landings[i]
			return &l, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) CreateLanding(_ context.Context, l *model.Landing) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	l.ID = m.allocID()
	l.CreatedAt = now
	l.UpdatedAt = now
	m.landings = append(m.landings, *l)
	return nil
}

func (m *MemoryStore) UpdateLanding(_ context.Context, id int, l *model.Landing) (*model.Landing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.landings {
		if m.landings[i].ID == id {
			l.ID = id
			l.CreatedAt = m.landings[i].CreatedAt
			l.UpdatedAt = time.Now()
			m.landings[i] = *l
			out := m.landings[i]
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) DeleteLanding(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.landings {
		if m.landings[i].ID == id {
			m.landings = append(m.landings[:i], m.landings[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) ListContratos(_ context.Context) ([]model.Contrato, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.Contrato, len(m.contratos))
	copy(out, m.contratos)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryStore) GetContrato(_ context.Context, id int) (*model.Contrato, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.contratos {
		if m.contratos[i].ID == id {
			c := m.contratos[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) CreateContrato(_ context.Context, c *model.Contrato) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	c.ID = m.allocID()
	c.CreatedAt = now
	c.UpdatedAt = now
	m.contratos = append(m.contratos, *c)
	return nil
}

func (m *MemoryStore) UpdateContrato(_ context.Context, id int, c *model.Contrato) (*model.Contrato, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.contratos {
		if m.contratos[i].ID == id {
			c.ID = id
			c.CreatedAt = m.contratos[i].CreatedAt
			c.UpdatedAt = time.Now()
			m.contratos[i] = *c
			out := m.contratos[i]
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) DeleteContrato(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.contratos {
		if m.contratos[i].ID == id {
			m.contratos = append(m.contratos[:i], m.contratos[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) ListRecibos(_ context.Context) ([]model.Recibo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.Recibo, len(m.recibos))
	copy(out, m.recibos)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryStore) GetRecibo(_ context.Context, id int) (*model.Recibo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.recibos {
		if m.recibos[i].ID == id {
			r := m.recibos[i]
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) CreateRecibo(_ context.Context, r *model.Recibo) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	r.ID = m.allocID()
	r.CreatedAt = now
	r.UpdatedAt = now
	m.recibos = append(m.recibos, *r)
	return nil
}

func (m *MemoryStore) UpdateRecibo(_ context.Context, id int, r *model.Recibo) (*model.Recibo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.recibos {
		if m.recibos[i].ID == id {
			r.ID = id
			r.CreatedAt = m.recibos[i].CreatedAt
			r.UpdatedAt = time.Now()
			m.recibos[i] = *r
			out := m.recibos[i]
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) DeleteRecibo(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.recibos {
		if m.recibos[i].ID == id {
			m.recibos = append(m.recibos[:i], m.recibos[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
