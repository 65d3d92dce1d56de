package repository

import (
	"context"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
)

const equipmentColumns = `e.id, e.area_id, e.category, e.description, e.quantity, e.wattage_w,
	e.hours_per_day, e.days_per_week, e.kwh_per_day, e.kwh_per_month, e.condition, e.notes,
	e.photo_url, e.created_at`

func (r *Repos) CreateEquipment(ctx context.Context, e *domain.Equipment) error {
	return r.db.QueryRowxContext(ctx,
		`INSERT INTO equipment(id, area_id, category, description, quantity, wattage_w, hours_per_day,
			days_per_week, kwh_per_day, kwh_per_month, condition, notes, photo_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING created_at`,
		e.ID, e.AreaID, e.Category, e.Description, e.Quantity, e.WattageW, e.HoursPerDay,
		e.DaysPerWeek, e.KWhPerDay, e.KWhPerMonth, e.Condition, e.Notes, e.PhotoURL,
	).Scan(&e.CreatedAt)
}

func (r *Repos) GetEquipment(ctx context.Context, id string) (*domain.Equipment, error) {
	var e domain.Equipment
	err := r.db.GetContext(ctx, &e, `SELECT `+equipmentColumns+` FROM equipment e WHERE e.id = $1`, id)
	if err != nil {
		return nil, notFound(err)
	}
	return &e, nil
}

func (r *Repos) ListEquipmentByArea(ctx context.Context, areaID string) ([]domain.Equipment, error) {
	out := []domain.Equipment{}
	err := r.db.SelectContext(ctx, &out,
		`SELECT `+equipmentColumns+` FROM equipment e WHERE e.area_id = $1 ORDER BY e.created_at`, areaID)
	return out, err
}

// ListEquipmentByProject returns every item in the project's areas with the
// owning area's name, oldest first.
func (r *Repos) ListEquipmentByProject(ctx context.Context, projectID string) ([]domain.EquipmentWithArea, error) {
	out := []domain.EquipmentWithArea{}
	err := r.db.SelectContext(ctx, &out,
		`SELECT `+equipmentColumns+`, a.name AS area_name
		FROM equipment e JOIN areas a ON a.id = e.area_id
		WHERE a.project_id = $1
		ORDER BY e.created_at`, projectID)
	return out, err
}

// UpdateEquipment writes the editable attributes together with the derived
// consumption fields.
func (r *Repos) UpdateEquipment(ctx context.Context, e *domain.Equipment) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE equipment SET category = $2, description = $3, quantity = $4, wattage_w = $5,
			hours_per_day = $6, days_per_week = $7, kwh_per_day = $8, kwh_per_month = $9,
			condition = $10, notes = $11, photo_url = $12
		WHERE id = $1`,
		e.ID, e.Category, e.Description, e.Quantity, e.WattageW, e.HoursPerDay, e.DaysPerWeek,
		e.KWhPerDay, e.KWhPerMonth, e.Condition, e.Notes, e.PhotoURL,
	))
}

func (r *Repos) SetEquipmentPhoto(ctx context.Context, id string, url *string) error {
	return expectOne(r.db.ExecContext(ctx, `UPDATE equipment SET photo_url = $2 WHERE id = $1`, id, url))
}

func (r *Repos) DeleteEquipment(ctx context.Context, id string) error {
	return expectOne(r.db.ExecContext(ctx, `DELETE FROM equipment WHERE id = $1`, id))
}

// ListPhotos returns project equipment that has a photo, newest first.
func (r *Repos) ListPhotos(ctx context.Context, projectID string) ([]domain.Photo, error) {
	out := []domain.Photo{}
	err := r.db.SelectContext(ctx, &out,
		`SELECT e.id, e.photo_url, e.description, e.category, COALESCE(a.name, 'Unknown Area') AS area_name
		FROM equipment e JOIN areas a ON a.id = e.area_id
		WHERE a.project_id = $1 AND e.photo_url IS NOT NULL
		ORDER BY e.created_at DESC`, projectID)
	return out, err
}
