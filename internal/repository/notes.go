package repository

import (
	"context"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
)

const observationColumns = `id, project_id, ventilation_condition, comfort_levels, lighting_adequacy,
	signs_of_waste, maintenance_issues, safety_concerns, created_at`

// GetObservations returns ErrNotFound when the project has none recorded.
func (r *Repos) GetObservations(ctx context.Context, projectID string) (*domain.Observations, error) {
	var o domain.Observations
	err := r.db.GetContext(ctx, &o, `SELECT `+observationColumns+` FROM observations WHERE project_id = $1`, projectID)
	if err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

// UpsertObservations keeps at most one observations row per project.
func (r *Repos) UpsertObservations(ctx context.Context, o *domain.Observations) error {
	return r.db.QueryRowxContext(ctx,
		`INSERT INTO observations(id, project_id, ventilation_condition, comfort_levels, lighting_adequacy,
			signs_of_waste, maintenance_issues, safety_concerns)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (project_id) DO UPDATE SET
			ventilation_condition = EXCLUDED.ventilation_condition,
			comfort_levels = EXCLUDED.comfort_levels,
			lighting_adequacy = EXCLUDED.lighting_adequacy,
			signs_of_waste = EXCLUDED.signs_of_waste,
			maintenance_issues = EXCLUDED.maintenance_issues,
			safety_concerns = EXCLUDED.safety_concerns
		RETURNING id, created_at`,
		o.ID, o.ProjectID, o.VentilationCondition, o.ComfortLevels, o.LightingAdequacy,
		o.SignsOfWaste, o.MaintenanceIssues, o.SafetyConcerns,
	).Scan(&o.ID, &o.CreatedAt)
}

const recommendationColumns = `id, project_id, description, explanation, estimated_savings_kwh_month,
	estimated_savings_ghs_month, created_at`

func (r *Repos) CreateRecommendation(ctx context.Context, rec *domain.Recommendation) error {
	return r.db.QueryRowxContext(ctx,
		`INSERT INTO recommendations(id, project_id, description, explanation,
			estimated_savings_kwh_month, estimated_savings_ghs_month)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at`,
		rec.ID, rec.ProjectID, rec.Description, rec.Explanation,
		rec.EstimatedSavingsKWhMonth, rec.EstimatedSavingsGHSMonth,
	).Scan(&rec.CreatedAt)
}

func (r *Repos) GetRecommendation(ctx context.Context, id string) (*domain.Recommendation, error) {
	var rec domain.Recommendation
	err := r.db.GetContext(ctx, &rec, `SELECT `+recommendationColumns+` FROM recommendations WHERE id = $1`, id)
	if err != nil {
		return nil, notFound(err)
	}
	return &rec, nil
}

// ListRecommendations returns recommendations in creation order.
func (r *Repos) ListRecommendations(ctx context.Context, projectID string) ([]domain.Recommendation, error) {
	out := []domain.Recommendation{}
	err := r.db.SelectContext(ctx, &out,
		`SELECT `+recommendationColumns+` FROM recommendations WHERE project_id = $1 ORDER BY created_at`, projectID)
	return out, err
}

func (r *Repos) DeleteRecommendation(ctx context.Context, id string) error {
	return expectOne(r.db.ExecContext(ctx, `DELETE FROM recommendations WHERE id = $1`, id))
}
