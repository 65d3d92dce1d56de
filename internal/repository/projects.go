package repository

import (
	"context"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
)

const projectColumns = `id, user_id, client_name, site_address, contact_person, building_type,
	audit_date, auditor_names, tariff_ghs_per_kwh, status, created_at, updated_at`

func (r *Repos) CreateProject(ctx context.Context, p *domain.Project) error {
	return r.db.QueryRowxContext(ctx,
		`INSERT INTO audit_projects(id, user_id, client_name, site_address, contact_person, building_type,
			audit_date, auditor_names, tariff_ghs_per_kwh, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING created_at, updated_at`,
		p.ID, p.UserID, p.ClientName, p.SiteAddress, p.ContactPerson, p.BuildingType,
		p.AuditDate, p.AuditorNames, p.TariffGHSPerKWh, p.Status,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *Repos) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	var p domain.Project
	err := r.db.GetContext(ctx, &p, `SELECT `+projectColumns+` FROM audit_projects WHERE id = $1`, id)
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// ListProjects returns the user's projects, newest first.
func (r *Repos) ListProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	out := []domain.Project{}
	err := r.db.SelectContext(ctx, &out,
		`SELECT `+projectColumns+` FROM audit_projects WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	return out, err
}

func (r *Repos) UpdateProject(ctx context.Context, p *domain.Project) error {
	err := r.db.QueryRowxContext(ctx,
		`UPDATE audit_projects SET client_name = $2, site_address = $3, contact_person = $4,
			building_type = $5, audit_date = $6, auditor_names = $7, tariff_ghs_per_kwh = $8,
			status = $9, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		p.ID, p.ClientName, p.SiteAddress, p.ContactPerson, p.BuildingType,
		p.AuditDate, p.AuditorNames, p.TariffGHSPerKWh, p.Status,
	).Scan(&p.UpdatedAt)
	return notFound(err)
}

func (r *Repos) DeleteProject(ctx context.Context, id string) error {
	return expectOne(r.db.ExecContext(ctx, `DELETE FROM audit_projects WHERE id = $1`, id))
}
