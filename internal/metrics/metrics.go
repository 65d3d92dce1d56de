package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReportsExported = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "audit_reports_exported_total",
		Help: "Reports rendered for download or archive",
	}, []string{"format"})

	ExportFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "audit_export_failures_total",
		Help: "Report exports that failed",
	}, []string{"format"})

	EquipmentSaved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "audit_equipment_saved_total",
		Help: "Equipment records created or updated",
	}, []string{"source"})

	PhotoOrphansRemoved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "audit_photo_orphans_removed_total",
		Help: "Uploaded photos deleted after their record write failed",
	})

	ReportBuildSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "audit_report_build_seconds",
		Help:    "Time spent loading and rendering a report",
		Buckets: prometheus.DefBuckets,
	})
)
