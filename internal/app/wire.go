// Package app assembles services from configuration for the binaries.
package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/cloud"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/config"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/database"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/energy"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/service"
)

// Options builds service options from configuration. Cloud collaborators are
// created only when cloud services are enabled.
func Options(ctx context.Context) (service.Options, error) {
	opts := service.Options{
		Calculator:        energy.NewCalculator(config.MonthlyMode()),
		Categories:        config.Categories(),
		DateLayout:        config.DateLayout(),
		CompensateOrphans: config.CompensateOrphans(),
	}
	if !config.UseCloudServices() {
		log.Info().Msg("cloud services disabled; photo upload and report archive unavailable")
		return opts, nil
	}

	photos, err := cloud.NewS3Client(ctx, config.AWSRegion(), config.PhotoBucket(), config.PublicBaseURL())
	if err != nil {
		return opts, fmt.Errorf("failed to init photo storage: %w", err)
	}
	reports, err := cloud.NewS3Client(ctx, config.AWSRegion(), config.ReportBucket(), "")
	if err != nil {
		return opts, fmt.Errorf("failed to init report archive: %w", err)
	}
	exports, err := cloud.NewDynamoDBClient(ctx, config.AWSRegion(), config.ExportTable())
	if err != nil {
		return opts, fmt.Errorf("failed to init export log: %w", err)
	}
	opts.Photos = photos
	opts.Archive = reports
	opts.Exports = exports

	if arn := config.SNSTopicArn(); arn != "" {
		notifier, err := cloud.NewSNSClient(ctx, config.AWSRegion(), arn)
		if err != nil {
			return opts, fmt.Errorf("failed to init notifier: %w", err)
		}
		opts.Notifier = notifier
	}
	log.Info().Str("region", config.AWSRegion()).Str("photo_bucket", config.PhotoBucket()).Msg("cloud services enabled")
	return opts, nil
}

// Open connects to the database, applies the schema when configured and
// builds the services.
func Open(ctx context.Context) (*sqlx.DB, *service.Services, error) {
	db, err := database.Connect()
	if err != nil {
		return nil, nil, err
	}
	if config.DBMigrate() {
		if err := database.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
	}
	opts, err := Options(ctx)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, service.New(db, opts), nil
}
