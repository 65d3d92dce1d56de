package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/energy"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/mocks"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/report"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/service"
)

const (
	owner    = "user-1"
	stranger = "user-2"
	epsilon  = 1e-9
)

var fixedNow = time.Date(2024, 5, 6, 9, 30, 0, 0, time.UTC)

type fixture struct {
	store    *mocks.MockStore
	objects  *mocks.MockObjectStore
	notifier *mocks.MockNotifier
	exports  *mocks.MockExportLog
	svcs     *service.Services
}

func newFixture(t *testing.T, mutate ...func(*service.Options)) *fixture {
	t.Helper()
	f := &fixture{
		store:    mocks.NewMockStore(),
		objects:  mocks.NewMockObjectStore(),
		notifier: &mocks.MockNotifier{},
		exports:  &mocks.MockExportLog{},
	}
	seq := 0
	opts := service.Options{
		CompensateOrphans: true,
		Photos:            f.objects,
		Archive:           f.objects,
		Notifier:          f.notifier,
		Exports:           f.exports,
		Now:               func() time.Time { return fixedNow },
		NewID: func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		},
	}
	for _, m := range mutate {
		m(&opts)
	}
	f.svcs = service.NewWithStore(f.store, opts)
	return f
}

func ptr[T any](v T) *T { return &v }

func (f *fixture) project(t *testing.T, tariff float64) *domain.Project {
	t.Helper()
	p, err := f.svcs.Projects.Create(context.Background(), owner, domain.ProjectInput{
		ClientName:      "Acme Ltd",
		SiteAddress:     "12 Ring Road, Accra",
		ContactPerson:   "Ama Mensah",
		BuildingType:    "Office",
		AuditDate:       "2024-03-15",
		AuditorNames:    []string{" Kofi ", "", "Esi"},
		TariffGHSPerKWh: &tariff,
	})
	require.NoError(t, err)
	return p
}

func (f *fixture) area(t *testing.T, projectID, name string) *domain.Area {
	t.Helper()
	a, err := f.svcs.Areas.Create(context.Background(), owner, projectID, domain.AreaInput{Name: name})
	require.NoError(t, err)
	return a
}

func lamp() domain.EquipmentInput {
	return domain.EquipmentInput{
		Category: "Lighting", Description: "LED Tube", Quantity: 4,
		WattageW: 18, HoursPerDay: 10, DaysPerWeek: 5,
	}
}

func fan() domain.EquipmentInput {
	return domain.EquipmentInput{
		Category: "Fans", Description: "Ceiling fan", Quantity: 1,
		WattageW: 100, HoursPerDay: 4, DaysPerWeek: 7, Condition: "Needs Service",
	}
}

func TestProjectCreateDefaults(t *testing.T) {
	f := newFixture(t)
	p, err := f.svcs.Projects.Create(context.Background(), owner, domain.ProjectInput{
		ClientName: "Acme", SiteAddress: "Accra", ContactPerson: "Ama", BuildingType: "Office",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultTariff, p.TariffGHSPerKWh)
	assert.Equal(t, domain.StatusDraft, p.Status)
	assert.Equal(t, owner, p.UserID)
	assert.Contains(t, f.store.Projects, p.ID)
}

func TestProjectCreateValidation(t *testing.T) {
	f := newFixture(t)
	_, err := f.svcs.Projects.Create(context.Background(), owner, domain.ProjectInput{AuditDate: "15/03/2024"})

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := map[string]bool{}
	for _, v := range verrs {
		fields[v.Field] = true
	}
	assert.True(t, fields["client_name"])
	assert.True(t, fields["audit_date"])
	assert.Empty(t, f.store.Projects)
}

func TestProjectOwnership(t *testing.T) {
	f := newFixture(t)
	p := f.project(t, 1.2)

	_, err := f.svcs.Projects.Get(context.Background(), stranger, p.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	list, err := f.svcs.Projects.List(context.Background(), stranger)
	require.NoError(t, err)
	assert.Empty(t, list)

	err = f.svcs.Projects.Delete(context.Background(), stranger, p.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.Contains(t, f.store.Projects, p.ID)
}

func TestProjectUpdateKeepsOmittedFields(t *testing.T) {
	f := newFixture(t)
	p := f.project(t, 1.2)

	updated, err := f.svcs.Projects.Update(context.Background(), owner, p.ID, domain.ProjectInput{
		ClientName: "Acme Holdings", SiteAddress: p.SiteAddress, ContactPerson: p.ContactPerson,
		BuildingType: p.BuildingType, Status: domain.StatusInProgress,
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Holdings", updated.ClientName)
	assert.Equal(t, 1.2, updated.TariffGHSPerKWh)
	assert.Equal(t, p.AuditDate, updated.AuditDate)
	assert.Equal(t, domain.StatusInProgress, updated.Status)
	assert.Equal(t, []string{"Kofi", "Esi"}, []string(updated.AuditorNames))
}

func TestEquipmentCreateComputesMetrics(t *testing.T) {
	f := newFixture(t)
	p := f.project(t, 1.2)
	a := f.area(t, p.ID, "Office")

	e, err := f.svcs.Equipment.Create(context.Background(), owner, a.ID, lamp(), nil)
	require.NoError(t, err)

	assert.InDelta(t, 0.72, e.KWhPerDay, epsilon)
	assert.InDelta(t, 21.6, e.KWhPerMonth, epsilon)
	assert.Equal(t, "Working", e.Condition)
	stored := f.store.Equipment[e.ID]
	assert.InDelta(t, 21.6, stored.KWhPerMonth, epsilon)
}

func TestEquipmentUpdateRecomputesMetrics(t *testing.T) {
	f := newFixture(t)
	p := f.project(t, 1)
	a := f.area(t, p.ID, "Office")
	e, err := f.svcs.Equipment.Create(context.Background(), owner, a.ID, lamp(), nil)
	require.NoError(t, err)

	in := lamp()
	in.Quantity = 10
	in.HoursPerDay = 12
	updated, err := f.svcs.Equipment.Update(context.Background(), owner, e.ID, in)
	require.NoError(t, err)

	assert.InDelta(t, 2.16, updated.KWhPerDay, epsilon)
	assert.InDelta(t, 64.8, updated.KWhPerMonth, epsilon)
	assert.InDelta(t, 64.8, f.store.Equipment[e.ID].KWhPerMonth, epsilon)
}

func TestEquipmentWeeklyMode(t *testing.T) {
	f := newFixture(t, func(o *service.Options) {
		o.Calculator = energy.NewCalculator(energy.MonthlyWeekly)
	})
	p := f.project(t, 1)
	a := f.area(t, p.ID, "Office")

	e, err := f.svcs.Equipment.Create(context.Background(), owner, a.ID, lamp(), nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.72, e.KWhPerDay, epsilon)
	assert.InDelta(t, 0.72*5*30/7, e.KWhPerMonth, epsilon)
}

func TestEquipmentValidationRejectsBeforeStore(t *testing.T) {
	f := newFixture(t)
	p := f.project(t, 1)
	a := f.area(t, p.ID, "Office")

	bad := lamp()
	bad.Quantity = 0
	bad.HoursPerDay = 25
	bad.Category = "Spaceships"
	_, err := f.svcs.Equipment.Create(context.Background(), owner, a.ID, bad, nil)

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
	assert.Empty(t, f.store.Equipment)
}

func TestEquipmentInForeignAreaIsNotFound(t *testing.T) {
	f := newFixture(t)
	p := f.project(t, 1)
	a := f.area(t, p.ID, "Office")

	_, err := f.svcs.Equipment.Create(context.Background(), stranger, a.ID, lamp(), nil)
	require.ErrorIs(t, err, service.ErrNotFound)
	var opErr *service.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "area", opErr.Entity)
}

func TestEquipmentPhotoCompensation(t *testing.T) {
	for _, compensate := range []bool{true, false} {
		t.Run(fmt.Sprintf("compensate=%v", compensate), func(t *testing.T) {
			f := newFixture(t, func(o *service.Options) { o.CompensateOrphans = compensate })
			p := f.project(t, 1)
			a := f.area(t, p.ID, "Office")
			f.store.CreateEquipmentFunc = func(context.Context, *domain.Equipment) error {
				return errors.New("connection reset")
			}

			photo := &service.PhotoUpload{FileName: "lamp.PNG", ContentType: "image/png", Data: []byte("png")}
			_, err := f.svcs.Equipment.Create(context.Background(), owner, a.ID, lamp(), photo)

			var opErr *service.OpError
			require.ErrorAs(t, err, &opErr)
			assert.Equal(t, "Failed to save equipment", opErr.UserMessage())
			assert.Contains(t, err.Error(), "connection reset")
			if compensate {
				assert.Empty(t, f.objects.Keys())
			} else {
				assert.Len(t, f.objects.Keys(), 1)
			}
		})
	}
}

func TestEquipmentCreateWithPhoto(t *testing.T) {
	f := newFixture(t)
	p := f.project(t, 1)
	a := f.area(t, p.ID, "Office")

	photo := &service.PhotoUpload{FileName: "lamp.png", ContentType: "image/png", Data: []byte("png")}
	e, err := f.svcs.Equipment.Create(context.Background(), owner, a.ID, lamp(), photo)
	require.NoError(t, err)

	key := service.PhotoKey(owner, e.ID, fixedNow, "png")
	assert.Equal(t, fmt.Sprintf("%s/%s-%d.png", owner, e.ID, fixedNow.UnixMilli()), key)
	assert.True(t, f.objects.Has(key))
	require.NotNil(t, e.PhotoURL)
	assert.Equal(t, mocks.MockObjectBase+key, *e.PhotoURL)
}

func TestEquipmentPhotoReplaceAndDelete(t *testing.T) {
	f := newFixture(t)
	p := f.project(t, 1)
	a := f.area(t, p.ID, "Office")
	e, err := f.svcs.Equipment.Create(context.Background(), owner, a.ID, lamp(), nil)
	require.NoError(t, err)

	first, err := f.svcs.Equipment.SetPhoto(context.Background(), owner, e.ID, service.PhotoUpload{Data: []byte("a")})
	require.NoError(t, err)
	firstKey, _ := f.objects.KeyFromURL(*first.PhotoURL)
	assert.Equal(t, fmt.Sprintf("%s/%s-%d.jpg", owner, e.ID, fixedNow.UnixMilli()), firstKey)

	f.store.SetEquipmentPhotoFunc = func(context.Context, string, *string) error { return errors.New("db down") }
	_, err = f.svcs.Equipment.SetPhoto(context.Background(), owner, e.ID, service.PhotoUpload{FileName: "b.webp", Data: []byte("b")})
	require.Error(t, err)
	assert.True(t, f.objects.Has(firstKey), "failed replace keeps the stored photo")
	f.store.SetEquipmentPhotoFunc = nil

	second, err := f.svcs.Equipment.SetPhoto(context.Background(), owner, e.ID, service.PhotoUpload{FileName: "b.webp", Data: []byte("b")})
	require.NoError(t, err)
	secondKey, _ := f.objects.KeyFromURL(*second.PhotoURL)
	assert.False(t, f.objects.Has(firstKey))
	assert.True(t, f.objects.Has(secondKey))

	require.NoError(t, f.svcs.Equipment.Delete(context.Background(), owner, e.ID))
	assert.False(t, f.objects.Has(secondKey))
	assert.Empty(t, f.store.Equipment)
}

func TestPhotosDisabled(t *testing.T) {
	f := newFixture(t, func(o *service.Options) { o.Photos = nil })
	p := f.project(t, 1)
	a := f.area(t, p.ID, "Office")

	_, err := f.svcs.Areas.SetPhoto(context.Background(), owner, a.ID, service.PhotoUpload{Data: []byte("x")})
	assert.ErrorIs(t, err, service.ErrPhotosDisabled)
}

func TestGalleryNewestFirst(t *testing.T) {
	f := newFixture(t)
	p := f.project(t, 1)
	office := f.area(t, p.ID, "Office")
	store := f.area(t, p.ID, "Store")

	photo := &service.PhotoUpload{Data: []byte("x")}
	older, err := f.svcs.Equipment.Create(context.Background(), owner, office.ID, lamp(), photo)
	require.NoError(t, err)
	_, err = f.svcs.Equipment.Create(context.Background(), owner, office.ID, fan(), nil)
	require.NoError(t, err)
	newer, err := f.svcs.Equipment.Create(context.Background(), owner, store.ID, fan(), photo)
	require.NoError(t, err)

	gallery, err := f.svcs.Photos.Gallery(context.Background(), owner, p.ID)
	require.NoError(t, err)
	require.Len(t, gallery, 2)
	assert.Equal(t, newer.ID, gallery[0].EquipmentID)
	assert.Equal(t, "Store", gallery[0].AreaName)
	assert.Equal(t, older.ID, gallery[1].EquipmentID)
}

func TestAreaDeleteRemovesPhotos(t *testing.T) {
	f := newFixture(t)
	p := f.project(t, 1)
	a := f.area(t, p.ID, "Office")
	_, err := f.svcs.Areas.SetPhoto(context.Background(), owner, a.ID, service.PhotoUpload{Data: []byte("a")})
	require.NoError(t, err)
	_, err = f.svcs.Equipment.Create(context.Background(), owner, a.ID, lamp(), &service.PhotoUpload{Data: []byte("e")})
	require.NoError(t, err)
	require.Len(t, f.objects.Keys(), 2)

	require.NoError(t, f.svcs.Areas.Delete(context.Background(), owner, a.ID))
	assert.Empty(t, f.objects.Keys())
	assert.Empty(t, f.store.Equipment)
}

func TestObservationsUpsert(t *testing.T) {
	f := newFixture(t)
	p := f.project(t, 1)

	none, err := f.svcs.Notes.Observations(context.Background(), owner, p.ID)
	require.NoError(t, err)
	assert.Nil(t, none)

	first, err := f.svcs.Notes.SaveObservations(context.Background(), owner, p.ID, domain.ObservationsInput{
		SafetyConcerns: ptr("Exposed wiring"), ComfortLevels: ptr("   "),
	})
	require.NoError(t, err)
	assert.Nil(t, first.ComfortLevels)

	second, err := f.svcs.Notes.SaveObservations(context.Background(), owner, p.ID, domain.ObservationsInput{
		LightingAdequacy: ptr("Poor in store room"),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, f.store.Observations, 1)

	got, err := f.svcs.Notes.Observations(context.Background(), owner, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SafetyConcerns)
	assert.Equal(t, "Poor in store room", *got.LightingAdequacy)
}

func TestRecommendations(t *testing.T) {
	f := newFixture(t)
	p := f.project(t, 1)

	_, err := f.svcs.Notes.AddRecommendation(context.Background(), owner, p.ID, domain.RecommendationInput{})
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	r1, err := f.svcs.Notes.AddRecommendation(context.Background(), owner, p.ID, domain.RecommendationInput{
		Description: "Switch to LED", EstimatedSavingsKWhMonth: ptr(12.5),
	})
	require.NoError(t, err)
	assert.Nil(t, r1.Explanation)
	r2, err := f.svcs.Notes.AddRecommendation(context.Background(), owner, p.ID, domain.RecommendationInput{
		Description: "Service the AC", Explanation: "Filters clogged",
	})
	require.NoError(t, err)

	list, err := f.svcs.Notes.Recommendations(context.Background(), owner, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, r1.ID, list[0].ID)
	assert.Equal(t, r2.ID, list[1].ID)

	assert.ErrorIs(t, f.svcs.Notes.DeleteRecommendation(context.Background(), stranger, r1.ID), service.ErrNotFound)
	require.NoError(t, f.svcs.Notes.DeleteRecommendation(context.Background(), owner, r1.ID))
	assert.ErrorIs(t, f.svcs.Notes.DeleteRecommendation(context.Background(), owner, r1.ID), service.ErrNotFound)
}

func seedReport(t *testing.T, f *fixture) *domain.Project {
	t.Helper()
	p := f.project(t, 1.2)
	office := f.area(t, p.ID, "Office")
	f.area(t, p.ID, "Empty Corridor")
	_, err := f.svcs.Equipment.Create(context.Background(), owner, office.ID, lamp(), nil)
	require.NoError(t, err)
	_, err = f.svcs.Equipment.Create(context.Background(), owner, office.ID, fan(), nil)
	require.NoError(t, err)
	return p
}

func TestSummary(t *testing.T) {
	f := newFixture(t)
	p := seedReport(t, f)

	sum, err := f.svcs.Reports.Summary(context.Background(), owner, p.ID)
	require.NoError(t, err)

	assert.InDelta(t, 33.6, sum.Totals.TotalKWh, epsilon)
	assert.InDelta(t, 40.32, sum.Totals.TotalCost, epsilon)
	assert.Equal(t, 2, sum.Totals.ItemCount)
	require.Len(t, sum.Categories, 2)
	assert.Equal(t, "Lighting", sum.Categories[0].Category)
	require.Len(t, sum.Areas, 1, "areas without equipment are omitted")
	assert.Equal(t, "Office", sum.Areas[0].AreaName)
	assert.InDelta(t, sum.Totals.TotalKWh, sum.Areas[0].TotalKWh, epsilon)
}

func TestExportCSV(t *testing.T) {
	f := newFixture(t)
	p := seedReport(t, f)

	out, err := f.svcs.Reports.Export(context.Background(), owner, p.ID, report.FormatCSV, false)
	require.NoError(t, err)
	assert.Equal(t, "Energy_Audit_Report_Acme_Ltd_2024-05-06.csv", out.FileName)
	assert.Equal(t, report.CSVContentType, out.ContentType)
	assert.Nil(t, out.Archive)
	assert.Empty(t, f.objects.Keys())

	r := csv.NewReader(bytes.NewReader(out.Data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)
	var total, cost []string
	for _, rec := range records {
		switch rec[0] {
		case "TOTAL MONTHLY CONSUMPTION":
			total = rec
		case "TOTAL ESTIMATED MONTHLY COST":
			cost = rec
		}
	}
	assert.Equal(t, []string{"TOTAL MONTHLY CONSUMPTION", "33.60", "kWh"}, total)
	assert.Equal(t, []string{"TOTAL ESTIMATED MONTHLY COST", "40.32", "GHS"}, cost)
}

func TestExportFileNameUsesUTCDate(t *testing.T) {
	local := time.Date(2024, 5, 7, 1, 0, 0, 0, time.FixedZone("UTC+5", 5*60*60))
	f := newFixture(t, func(o *service.Options) {
		o.Now = func() time.Time { return local }
	})
	p := seedReport(t, f)

	out, err := f.svcs.Reports.Export(context.Background(), owner, p.ID, report.FormatCSV, false)
	require.NoError(t, err)
	assert.Equal(t, "Energy_Audit_Report_Acme_Ltd_2024-05-06.csv", out.FileName)
}

func TestExportArchive(t *testing.T) {
	f := newFixture(t)
	p := seedReport(t, f)

	out, err := f.svcs.Reports.Export(context.Background(), owner, p.ID, report.FormatXLSX, true)
	require.NoError(t, err)
	require.NotNil(t, out.Archive)

	key := "reports/" + p.ID + "/Energy_Audit_Report_Acme_Ltd_2024-05-06.xlsx"
	assert.True(t, f.objects.Has(key))
	assert.Equal(t, key, out.Archive.ObjectKey)
	assert.Equal(t, mocks.MockObjectBase+key+"?signed=1", out.Archive.URL)
	assert.InDelta(t, 33.6, out.Archive.TotalKWh, epsilon)
	require.Len(t, f.exports.Items, 1)
	require.Len(t, f.notifier.Sent, 1)
	assert.Equal(t, out.Archive.ID, f.notifier.Sent[0].ID)

	history, err := f.svcs.Reports.Exports(context.Background(), owner, p.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "xlsx", history[0].Format)
}

func TestExportArchiveSurvivesNotifierFailure(t *testing.T) {
	f := newFixture(t)
	p := seedReport(t, f)
	f.notifier.ReportReadyFunc = func(context.Context, domain.ReportExport) error { return errors.New("sns throttled") }

	out, err := f.svcs.Reports.Export(context.Background(), owner, p.ID, report.FormatCSV, true)
	require.NoError(t, err)
	assert.NotNil(t, out.Archive)
}

func TestExportArchiveDisabled(t *testing.T) {
	f := newFixture(t, func(o *service.Options) { o.Archive = nil })
	p := seedReport(t, f)

	_, err := f.svcs.Reports.Export(context.Background(), owner, p.ID, report.FormatCSV, true)
	assert.ErrorIs(t, err, service.ErrArchiveDisabled)
	var opErr *service.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "Failed to export report", opErr.UserMessage())
}

func TestExportFailures(t *testing.T) {
	f := newFixture(t)
	p := seedReport(t, f)

	_, err := f.svcs.Reports.Export(context.Background(), stranger, p.ID, report.FormatCSV, false)
	assert.ErrorIs(t, err, service.ErrNotFound)

	f.store.ListEquipmentByProjFunc = func(context.Context, string) ([]domain.EquipmentWithArea, error) {
		return nil, errors.New("timeout")
	}
	_, err = f.svcs.Reports.Export(context.Background(), owner, p.ID, report.FormatCSV, false)
	var opErr *service.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, service.OpExport, opErr.Op)
	assert.Equal(t, "Failed to export report", opErr.UserMessage())
}

func TestEquipmentFromMQTT(t *testing.T) {
	f := newFixture(t)
	p := f.project(t, 1)
	a := f.area(t, p.ID, "Office")

	payload := fmt.Sprintf(`{"user_id":%q,"area_id":%q,"equipment":{"category":"Fans","description":"Standing fan","quantity":2,"wattage_w":50,"hours_per_day":6,"days_per_week":6}}`, owner, a.ID)
	e, err := f.svcs.Equipment.FromMQTT(context.Background(), "audit/equipment", []byte(payload))
	require.NoError(t, err)
	assert.InDelta(t, 0.6, e.KWhPerDay, epsilon)
	assert.InDelta(t, 18.0, e.KWhPerMonth, epsilon)

	_, err = f.svcs.Equipment.FromMQTT(context.Background(), "audit/equipment", []byte(`{"area_id":"x"}`))
	assert.Error(t, err)
	_, err = f.svcs.Equipment.FromMQTT(context.Background(), "audit/equipment", []byte(`not json`))
	assert.Error(t, err)
}

func TestReportFromMQTT(t *testing.T) {
	f := newFixture(t)
	p := seedReport(t, f)

	payload := fmt.Sprintf(`{"user_id":%q,"project_id":%q,"format":"csv"}`, owner, p.ID)
	out, err := f.svcs.Reports.FromMQTT(context.Background(), "audit/exports", []byte(payload))
	require.NoError(t, err)
	require.NotNil(t, out.Archive)
	assert.Len(t, f.exports.Items, 1)

	_, err = f.svcs.Reports.FromMQTT(context.Background(), "audit/exports", []byte(`{"user_id":"u","project_id":"p","format":"pdf"}`))
	assert.Error(t, err)
}

func TestProjectDeleteRemovesPhotos(t *testing.T) {
	f := newFixture(t)
	p := f.project(t, 1)
	a := f.area(t, p.ID, "Office")
	_, err := f.svcs.Areas.SetPhoto(context.Background(), owner, a.ID, service.PhotoUpload{Data: []byte("a")})
	require.NoError(t, err)
	_, err = f.svcs.Equipment.Create(context.Background(), owner, a.ID, lamp(), &service.PhotoUpload{Data: []byte("e")})
	require.NoError(t, err)

	require.NoError(t, f.svcs.Projects.Delete(context.Background(), owner, p.ID))
	assert.Empty(t, f.objects.Keys())
	assert.Empty(t, f.store.Areas)
}
