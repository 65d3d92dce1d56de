package repository

import (
	"context"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
)

func (r *Repos) CreateArea(ctx context.Context, a *domain.Area) error {
	return r.db.QueryRowxContext(ctx,
		`INSERT INTO areas(id, project_id, name, photo_url) VALUES ($1,$2,$3,$4) RETURNING created_at`,
		a.ID, a.ProjectID, a.Name, a.PhotoURL,
	).Scan(&a.CreatedAt)
}

func (r *Repos) GetArea(ctx context.Context, id string) (*domain.Area, error) {
	var a domain.Area
	err := r.db.GetContext(ctx, &a, `SELECT id, project_id, name, photo_url, created_at FROM areas WHERE id = $1`, id)
	if err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

func (r *Repos) ListAreas(ctx context.Context, projectID string) ([]domain.Area, error) {
	out := []domain.Area{}
	err := r.db.SelectContext(ctx, &out,
		`SELECT id, project_id, name, photo_url, created_at FROM areas WHERE project_id = $1 ORDER BY created_at`, projectID)
	return out, err
}

func (r *Repos) RenameArea(ctx context.Context, id, name string) error {
	return expectOne(r.db.ExecContext(ctx, `UPDATE areas SET name = $2 WHERE id = $1`, id, name))
}

func (r *Repos) SetAreaPhoto(ctx context.Context, id string, url *string) error {
	return expectOne(r.db.ExecContext(ctx, `UPDATE areas SET photo_url = $2 WHERE id = $1`, id, url))
}

func (r *Repos) DeleteArea(ctx context.Context, id string) error {
	return expectOne(r.db.ExecContext(ctx, `DELETE FROM areas WHERE id = $1`, id))
}
