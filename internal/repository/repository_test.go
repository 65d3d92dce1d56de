package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, *Repos) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return mock, New(sqlx.NewDb(db, "sqlmock"))
}

func TestGetProject_Success(t *testing.T) {
	mock, repo := setupMockDB(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "user_id", "client_name", "site_address", "contact_person",
		"building_type", "audit_date", "auditor_names", "tariff_ghs_per_kwh", "status", "created_at", "updated_at"}).
		AddRow("p1", "u1", "Acme", "Accra", "Ama", "Office", now, "{Kofi,Esi}", 1.2, "draft", now, now)
	mock.ExpectQuery(`SELECT (.+) FROM audit_projects WHERE id = \$1`).
		WithArgs("p1").
		WillReturnRows(rows)

	p, err := repo.GetProject(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Acme", p.ClientName)
	assert.Equal(t, pq.StringArray{"Kofi", "Esi"}, p.AuditorNames)
	assert.Equal(t, domain.StatusDraft, p.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProject_NotFound(t *testing.T) {
	mock, repo := setupMockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM audit_projects`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetProject(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMalformedIDIsNotFound(t *testing.T) {
	mock, repo := setupMockDB(t)
	invalid := &pgconn.PgError{Code: "22P02", Message: `invalid input syntax for type uuid: "abc"`}

	mock.ExpectQuery(`SELECT (.+) FROM audit_projects WHERE id = \$1`).
		WithArgs("abc").
		WillReturnError(invalid)
	_, err := repo.GetProject(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrNotFound)

	mock.ExpectExec(`DELETE FROM areas WHERE id = \$1`).
		WithArgs("abc").
		WillReturnError(invalid)
	assert.ErrorIs(t, repo.DeleteArea(context.Background(), "abc"), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOtherDatabaseErrorsPassThrough(t *testing.T) {
	mock, repo := setupMockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM audit_projects`).
		WithArgs("p1").
		WillReturnError(&pgconn.PgError{Code: "57P01", Message: "terminating connection"})

	_, err := repo.GetProject(context.Background(), "p1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEquipment(t *testing.T) {
	mock, repo := setupMockDB(t)
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	e := &domain.Equipment{
		ID: "e1", AreaID: "a1", Category: "Lighting", Description: "LED Tube",
		Quantity: 4, WattageW: 18, HoursPerDay: 10, DaysPerWeek: 7,
		KWhPerDay: 0.72, KWhPerMonth: 21.6, Condition: "Working",
	}
	mock.ExpectQuery(`INSERT INTO equipment`).
		WithArgs("e1", "a1", "Lighting", "LED Tube", 4, 18.0, 10.0, 7, 0.72, 21.6, "Working", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	require.NoError(t, repo.CreateEquipment(context.Background(), e))
	assert.Equal(t, created, e.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEquipmentByProject(t *testing.T) {
	mock, repo := setupMockDB(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "area_id", "category", "description", "quantity", "wattage_w",
		"hours_per_day", "days_per_week", "kwh_per_day", "kwh_per_month", "condition", "notes", "photo_url",
		"created_at", "area_name"}).
		AddRow("e1", "a1", "Lighting", "LED Tube", 4, 18.0, 10.0, 7, 0.72, 21.6, "Working", nil, nil, now, "Office").
		AddRow("e2", "a2", "Fans", "Ceiling fan", 1, 75.0, 8.0, 5, 0.6, 18.0, "Needs Service", "noisy", nil, now, "Store")
	mock.ExpectQuery(`FROM equipment e JOIN areas a ON a.id = e.area_id`).
		WithArgs("p1").
		WillReturnRows(rows)

	items, err := repo.ListEquipmentByProject(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Office", items[0].AreaName)
	assert.Equal(t, 21.6, items[0].KWhPerMonth)
	require.NotNil(t, items[1].Notes)
	assert.Equal(t, "noisy", *items[1].Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRecommendations_Empty(t *testing.T) {
	mock, repo := setupMockDB(t)
	mock.ExpectQuery(`FROM recommendations WHERE project_id = \$1 ORDER BY created_at`).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	recs, err := repo.ListRecommendations(context.Background(), "p1")
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertObservations(t *testing.T) {
	mock, repo := setupMockDB(t)
	now := time.Now()
	safety := "Exposed wiring"

	o := &domain.Observations{ID: "new-id", ProjectID: "p1", SafetyConcerns: &safety}
	mock.ExpectQuery(`INSERT INTO observations(.+)ON CONFLICT \(project_id\) DO UPDATE`).
		WithArgs("new-id", "p1", nil, nil, nil, nil, nil, "Exposed wiring").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("existing-id", now))

	require.NoError(t, repo.UpsertObservations(context.Background(), o))
	assert.Equal(t, "existing-id", o.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRecommendation_NotFound(t *testing.T) {
	mock, repo := setupMockDB(t)
	mock.ExpectExec(`DELETE FROM recommendations WHERE id = \$1`).
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteRecommendation(context.Background(), "r1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEquipment(t *testing.T) {
	mock, repo := setupMockDB(t)
	e := &domain.Equipment{ID: "e1", Category: "Fans", Description: "Fan", Quantity: 2, WattageW: 60,
		HoursPerDay: 5, DaysPerWeek: 6, KWhPerDay: 0.6, KWhPerMonth: 18, Condition: "Working"}
	mock.ExpectExec(`UPDATE equipment SET`).
		WithArgs("e1", "Fans", "Fan", 2, 60.0, 5.0, 6, 0.6, 18.0, "Working", nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateEquipment(context.Background(), e))
	assert.NoError(t, mock.ExpectationsWereMet())
}
