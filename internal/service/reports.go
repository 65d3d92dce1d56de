package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/energy"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/metrics"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/report"
)

type ReportService struct {
	store      Store
	own        *owner
	archive    ReportArchive
	notifier   Notifier
	exports    ExportLog
	dateLayout string
	now        func() time.Time
	newID      func() string
}

// Summary aggregates the project's equipment for the summary and chart views.
func (s *ReportService) Summary(ctx context.Context, userID, projectID string) (*energy.Summary, error) {
	p, err := s.own.project(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	areas, err := s.store.ListAreas(ctx, projectID)
	if err != nil {
		return nil, wrap(OpLoad, "areas", err)
	}
	rows, err := s.store.ListEquipmentByProject(ctx, projectID)
	if err != nil {
		return nil, wrap(OpLoad, "equipment", err)
	}
	items := make([]domain.Equipment, len(rows))
	for i, r := range rows {
		items[i] = r.Equipment
	}
	sum := energy.Summarize(p.ID, items, areas, p.TariffGHSPerKWh)
	return &sum, nil
}

// Document gathers everything a report is rendered from. Missing
// observations leave the section out.
func (s *ReportService) Document(ctx context.Context, userID, projectID string) (*report.Document, error) {
	p, err := s.own.project(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.ListEquipmentByProject(ctx, projectID)
	if err != nil {
		return nil, wrap(OpLoad, "equipment", err)
	}
	obs, err := s.store.GetObservations(ctx, projectID)
	if errors.Is(err, ErrNotFound) {
		obs, err = nil, nil
	}
	if err != nil {
		return nil, wrap(OpLoad, "observations", err)
	}
	recs, err := s.store.ListRecommendations(ctx, projectID)
	if err != nil {
		return nil, wrap(OpLoad, "recommendations", err)
	}
	return &report.Document{
		Project:         *p,
		Equipment:       rows,
		Observations:    obs,
		Recommendations: recs,
		DateLayout:      s.dateLayout,
	}, nil
}

// Export is a rendered report file.
type Export struct {
	FileName    string
	ContentType string
	Data        []byte
	// Archive is set when the file was also stored in the report archive.
	Archive *domain.ReportExport
}

// Export renders the project report. With archive the file is also uploaded,
// recorded in the export log and announced; log and notification failures
// do not fail the export.
func (s *ReportService) Export(ctx context.Context, userID, projectID string, format report.Format, archive bool) (*Export, error) {
	out, err := s.export(ctx, userID, projectID, format, archive)
	if err != nil {
		metrics.ExportFailures.WithLabelValues(string(format)).Inc()
		log.Error().Err(err).Str("project_id", projectID).Str("format", string(format)).Msg("report export failed")
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, &OpError{Op: OpExport, Entity: "report", Err: err}
	}
	metrics.ReportsExported.WithLabelValues(string(format)).Inc()
	return out, nil
}

func (s *ReportService) export(ctx context.Context, userID, projectID string, format report.Format, archive bool) (*Export, error) {
	timer := prometheus.NewTimer(metrics.ReportBuildSeconds)
	doc, err := s.Document(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	data, err := format.Render(*doc)
	if err != nil {
		return nil, err
	}
	timer.ObserveDuration()

	now := s.now()
	out := &Export{
		FileName:    report.FileName(doc.Project.ClientName, now.UTC(), string(format)),
		ContentType: format.ContentType(),
		Data:        data,
	}
	if !archive {
		return out, nil
	}
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}

	key := fmt.Sprintf("reports/%s/%s", projectID, out.FileName)
	url, err := s.archive.UploadReport(ctx, key, data, out.ContentType)
	if err != nil {
		return nil, err
	}
	totals := totalsOf(doc)
	exp := domain.ReportExport{
		ID:         s.newID(),
		ProjectID:  projectID,
		UserID:     userID,
		ClientName: doc.Project.ClientName,
		Format:     string(format),
		FileName:   out.FileName,
		ObjectKey:  key,
		URL:        url,
		SizeBytes:  len(data),
		TotalKWh:   totals.TotalKWh,
		TotalCost:  totals.TotalCost,
		CreatedAt:  now.UTC(),
	}
	if s.exports != nil {
		if err := s.exports.PutExport(ctx, exp); err != nil {
			log.Error().Err(err).Str("export_id", exp.ID).Msg("failed to record report export")
		}
	}
	if s.notifier != nil {
		if err := s.notifier.ReportReady(ctx, exp); err != nil {
			log.Error().Err(err).Str("export_id", exp.ID).Msg("failed to send report notification")
		}
	}
	log.Info().Str("project_id", projectID).Str("key", key).Msg("report archived")
	out.Archive = &exp
	return out, nil
}

func totalsOf(doc *report.Document) energy.Totals {
	items := make([]domain.Equipment, len(doc.Equipment))
	for i, r := range doc.Equipment {
		items[i] = r.Equipment
	}
	return energy.ComputeTotals(items, doc.Project.TariffGHSPerKWh)
}

// Exports lists the project's archived reports, newest first.
func (s *ReportService) Exports(ctx context.Context, userID, projectID string) ([]domain.ReportExport, error) {
	if _, err := s.own.project(ctx, userID, projectID); err != nil {
		return nil, err
	}
	if s.exports == nil {
		return []domain.ReportExport{}, nil
	}
	items, err := s.exports.ListExports(ctx, projectID)
	if err != nil {
		return nil, wrap(OpLoad, "exports", err)
	}
	return items, nil
}

// ExportRequest asks for a report to be archived from a field device.
type ExportRequest struct {
	UserID    string `json:"user_id"`
	ProjectID string `json:"project_id"`
	Format    string `json:"format"`
}

// FromMQTT archives the report named by an export request.
func (s *ReportService) FromMQTT(ctx context.Context, topic string, payload []byte) (*Export, error) {
	var r ExportRequest
	if err := json.Unmarshal(payload, &r); err != nil {
		return nil, fmt.Errorf("failed to decode export request on %s: %w", topic, err)
	}
	if r.UserID == "" || r.ProjectID == "" {
		return nil, fmt.Errorf("export request on %s is missing user_id or project_id", topic)
	}
	format, err := report.ParseFormat(r.Format)
	if err != nil {
		return nil, err
	}
	return s.Export(ctx, r.UserID, r.ProjectID, format, true)
}
