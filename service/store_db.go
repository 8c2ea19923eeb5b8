package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/arrebolmedia/video-editor/config"
	"github.com/arrebolmedia/video-editor/model"
)

// DBStore is the postgresql-backed store.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore opens the connection, tunes the pool and migrates the schema.
func NewDBStore(cfg *config.DBConfig) (*DBStore, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Project{},
		&model.Scene{},
		&model.Version{},
		&model.SceneReference{},
		&model.Landing{},
		&model.Contrato{},
		&model.Recibo{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &DBStore{db: db}, nil
}

func (s *DBStore) Kind() string { return "postgresql" }

func wrapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *DBStore) ListProjects(ctx context.Context, assignedTo string) ([]model.Project, error) {
	q := s.db.WithContext(ctx).Order("created_at DESC")
	if assignedTo != "" {
		q = q.Where("assigned_to = ?", assignedTo)
	}
	var out []model.Project
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DBStore) GetProject(ctx context.Context, id int) (*model.Project, error) {
	var p model.Project
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &p, nil
}

func (s *DBStore) CreateProject(ctx context.Context, p *model.Project) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *DBStore) UpdateProject(ctx context.Context, id int, name string, weddingDate *string) (*model.Project, error) {
	var p model.Project
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	p.Name = name
	p.WeddingDate = weddingDate
	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *DBStore) AssignProject(ctx context.Context, id int, assignedTo *string) (*model.Project, error) {
	var p model.Project
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	p.AssignedTo = assignedTo
	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *DBStore) DeleteAllProjects(ctx context.Context) (int, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Project{}).Count(&count).Error; err != nil {
		return 0, err
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{
			"DELETE FROM scene_references",
			"DELETE FROM versions",
			"DELETE FROM scenes",
			"DELETE FROM projects",
		} {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (s *DBStore) FindProjectByBaserowID(ctx context.Context, baserowID int) (*model.Project, error) {
	var p model.Project
	if err := s.db.WithContext(ctx).Where("baserow_id = ?", baserowID).First(&p).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &p, nil
}

func (s *DBStore) ListScenes(ctx context.Context, projectID int) ([]model.Scene, error) {
	var out []model.Scene
	err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("scene_order ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DBStore) CountScenes(ctx context.Context, projectID int) (int, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&model.Scene{}).
		Where("project_id = ?", projectID).
		Count(&n).Error
	return int(n), err
}

func (s *DBStore) CreateScene(ctx context.Context, sc *model.Scene) error {
	return s.db.WithContext(ctx).Create(sc).Error
}

func (s *DBStore) UpdateScene(ctx context.Context, id int, upd SceneUpdate) (*model.Scene, error) {
	var sc model.Scene
	if err := s.db.WithContext(ctx).First(&sc, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	sc.Name = upd.Name
	sc.Division = upd.Division
	sc.Description = upd.Description
	sc.PlannedDuration = upd.PlannedDuration
	sc.IsAnchorMoment = upd.IsAnchorMoment
	sc.AnchorDescription = upd.AnchorDescription
	sc.Priority = upd.Priority
	if err := s.db.WithContext(ctx).Save(&sc).Error; err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *DBStore) SetSceneOrder(ctx context.Context, id, order int) error {
	res := s.db.WithContext(ctx).Model(&model.Scene{}).
		Where("id = ?", id).
		Update("scene_order", order)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *DBStore) ListVersions(ctx context.Context, projectID int) ([]model.Version, error) {
	var out []model.Version
	err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DBStore) GetVersion(ctx context.Context, id int) (*model.Version, error) {
	var v model.Version
	if err := s.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &v, nil
}

func (s *DBStore) CreateVersion(ctx context.Context, v *model.Version) error {
	return s.db.WithContext(ctx).Create(v).Error
}

func (s *DBStore) UpdateVersionStatus(ctx context.Context, id int, status string) (*model.Version, error) {
	var v model.Version
	if err := s.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	v.Status = status
	if err := s.db.WithContext(ctx).Save(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *DBStore) SaveSuggestions(ctx context.Context, id int, songs model.SongList, opening, closing model.SceneList) error {
	res := s.db.WithContext(ctx).Model(&model.Version{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"suggested_songs":          songs,
			"suggested_opening_scenes": opening,
			"suggested_closing_scenes": closing,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *DBStore) ListVersionSceneIDs(ctx context.Context, versionID int) ([]int, error) {
	var refs []model.SceneReference
	err := s.db.WithContext(ctx).
		Where("version_id = ? AND included = ?", versionID, true).
		Order("ref_order ASC").
		Find(&refs).Error
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(refs))
	for i, r := range refs {
		ids[i] = r.SceneID
	}
	return ids, nil
}

func (s *DBStore) ReplaceVersionScenes(ctx context.Context, versionID int, sceneIDs []int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("version_id = ?", versionID).
			Delete(&model.SceneReference{}).Error; err != nil {
			return err
		}
		for i, sceneID := range sceneIDs {
			ref := model.SceneReference{
				VersionID: versionID,
				SceneID:   sceneID,
				Included:  true,
				RefOrder:  i,
			}
			if err := tx.Create(&ref).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *DBStore) ListLandings(ctx context.Context) ([]model.Landing, error) {
	var out []model.Landing
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DBStore) GetLanding(ctx context.Context, id int) (*model.Landing, error) {
	var l model.Landing
	if err := s.db.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &l, nil
}

func (s *DBStore) GetLandingBySlug(ctx context.Context, slug string) (*model.Landing, error) {
	var l model.Landing
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&l).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &l, nil
}

func (s *DBStore) CreateLanding(ctx context.Context, l *model.Landing) error {
	return s.db.WithContext(ctx).Create(l).Error
}

func (s *DBStore) UpdateLanding(ctx context.Context, id int, l *model.Landing) (*model.Landing, error) {
	var cur model.Landing
	if err := s.db.WithContext(ctx).First(&cur, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	l.ID = id
	l.CreatedAt = cur.CreatedAt
	if err := s.db.WithContext(ctx).Save(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

func (s *DBStore) DeleteLanding(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&model.Landing{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *DBStore) ListContratos(ctx context.Context) ([]model.Contrato, error) {
	var out []model.Contrato
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DBStore) GetContrato(ctx context.Context, id int) (*model.Contrato, error) {
	var c model.Contrato
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &c, nil
}

func (s *DBStore) CreateContrato(ctx context.Context, c *model.Contrato) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *DBStore) UpdateContrato(ctx context.Context, id int, c *model.Contrato) (*model.Contrato, error) {
	var cur model.Contrato
	if err := s.db.WithContext(ctx).First(&cur, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	c.ID = id
	c.CreatedAt = cur.CreatedAt
	if err := s.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (s *DBStore) DeleteContrato(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&model.Contrato{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *DBStore) ListRecibos(ctx context.Context) ([]model.Recibo, error) {
	var out []model.Recibo
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DBStore) GetRecibo(ctx context.Context, id int) (*model.Recibo, error) {
	var r model.Recibo
	if err := s.db.WithContext(ctx).First(&r, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &r, nil
}

func (s *DBStore) CreateRecibo(ctx context.Context, r *model.Recibo) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *DBStore) UpdateRecibo(ctx context.Context, id int, r *model.Recibo) (*model.Recibo, error) {
	var cur model.Recibo
	if err := s.db.WithContext(ctx).First(&cur, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	r.ID = id
	r.CreatedAt = cur.CreatedAt
	if err := s.db.WithContext(ctx).Save(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

func (s *DBStore) DeleteRecibo(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&model.Recibo{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
