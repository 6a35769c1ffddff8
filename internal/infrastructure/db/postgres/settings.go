package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/amankhan2005/DecoderHealth/internal/domain"
)

// SettingsRepo stores the singleton site-settings record as two JSONB
// documents, the shape the admin panel reads directly.
type SettingsRepo struct {
	db *sql.DB
}

func NewSettingsRepo(db *sql.DB) *SettingsRepo { return &SettingsRepo{db: db} }

func (r *SettingsRepo) Get(ctx context.Context) (*domain.SiteSettings, error) {
	row := r.db.QueryRowContext(ctx, getSettingsSQL)

	var (
		id       string
		global   []byte
		metaJSON []byte
	)
	err := row.Scan(&id, &global, &metaJSON)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound("settings not found")
	}
	if err != nil {
		return nil, err
	}

	s := &domain.SiteSettings{ID: id}
	if err := json.Unmarshal(global, &s.Global); err != nil {
		return nil, err
	}
	var meta map[domain.Field]time.Time
	if err := json.Unmarshal(metaJSON, &meta); err != nil {
		return nil, err
	}
	s.Meta = meta
	return s, nil
}

func (r *SettingsRepo) Create(ctx context.Context, s *domain.SiteSettings) error {
	global, meta, err := encode(s)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, insertSettingsSQL, s.ID, global, meta)
	return err
}

func (r *SettingsRepo) Save(ctx context.Context, s *domain.SiteSettings) error {
	global, meta, err := encode(s)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, updateSettingsSQL, s.ID, global, meta)
	return err
}

func encode(s *domain.SiteSettings) ([]byte, []byte, error) {
	global, err := json.Marshal(s.Global)
	if err != nil {
		return nil, nil, err
	}
	meta := s.Meta
	if meta == nil {
		meta = map[domain.Field]time.Time{}
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, nil, err
	}
	return global, metaJSON, nil
}
