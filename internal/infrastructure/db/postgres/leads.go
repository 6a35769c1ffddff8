package postgres

import (
	"context"
	"database/sql"

	"github.com/amankhan2005/DecoderHealth/internal/domain"
)

type LeadRepo struct {
	db *sql.DB
}

func NewLeadRepo(db *sql.DB) *LeadRepo { return &LeadRepo{db: db} }

func (r *LeadRepo) Create(ctx context.Context, l *domain.Lead) error {
	_, err := r.db.ExecContext(ctx, insertLeadSQL,
		l.ID, l.Name, l.Email, l.Phone, l.Message, l.Status, l.LeadSource, l.CreatedAt,
	)
	return err
}

func (r *LeadRepo) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	row := r.db.QueryRowContext(ctx, getLeadSQL, id)

	var l domain.Lead
	err := row.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Message, &l.Status, &l.LeadSource, &l.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound("lead not found")
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// List returns leads newest-first, optionally filtered by exact status
// and/or lead source. Empty filter values match everything.
func (r *LeadRepo) List(ctx context.Context, status, leadSource string) ([]*domain.Lead, error) {
	rows, err := r.db.QueryContext(ctx, listLeadsSQL, status, leadSource)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Lead
	for rows.Next() {
		var l domain.Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Message, &l.Status, &l.LeadSource, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *LeadRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteLeadSQL, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("lead not found")
	}
	return nil
}
