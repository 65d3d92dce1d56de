package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/cloud"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/config"
)

const probeURLTTL = 5 * time.Minute

// cloudCheckCmd round-trips a probe object through the photo and report
// buckets, reads the export log and optionally publishes a test notification.
func cloudCheckCmd() *cobra.Command {
	var (
		projectID string
		notify    bool
	)
	cmd := &cobra.Command{
		Use:   "cloud-check",
		Short: "Verify the configured S3, DynamoDB and SNS resources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return fmt.Errorf("config load failed: %w", err)
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			out := cmd.OutOrStdout()
			region := config.AWSRegion()

			for _, bucket := range []string{config.PhotoBucket(), config.ReportBucket()} {
				s3c, err := cloud.NewS3Client(ctx, region, bucket, "")
				if err != nil {
					return err
				}
				key := fmt.Sprintf("healthcheck/probe-%d.txt", time.Now().UnixMilli())
				if _, err := s3c.Upload(ctx, key, []byte("probe"), "text/plain"); err != nil {
					return fmt.Errorf("bucket %s: %w", bucket, err)
				}
				if _, err := s3c.PresignGet(ctx, key, probeURLTTL); err != nil {
					return fmt.Errorf("bucket %s: %w", bucket, err)
				}
				if err := s3c.Delete(ctx, key); err != nil {
					return fmt.Errorf("bucket %s: %w", bucket, err)
				}
				fmt.Fprintf(out, "s3 %s: ok\n", bucket)
			}

			ddb, err := cloud.NewDynamoDBClient(ctx, region, config.ExportTable())
			if err != nil {
				return err
			}
			exports, err := ddb.ListExports(ctx, projectID)
			if err != nil {
				return fmt.Errorf("table %s: %w", config.ExportTable(), err)
			}
			fmt.Fprintf(out, "dynamodb %s: ok (%d exports for %s)\n", config.ExportTable(), len(exports), projectID)

			arn := config.SNSTopicArn()
			if !notify || arn == "" {
				fmt.Fprintln(out, "sns: skipped")
				return nil
			}
			sns, err := cloud.NewSNSClient(ctx, region, arn)
			if err != nil {
				return err
			}
			if err := sns.Publish(ctx, "Energy Audit Cloud Check", "Test notification from auditctl cloud-check"); err != nil {
				return fmt.Errorf("topic %s: %w", arn, err)
			}
			fmt.Fprintln(out, "sns: ok")
			return nil
		},
	}
	cmd.Flags().StringVar(&projectID, "project", "healthcheck", "Project id to query in the export log")
	cmd.Flags().BoolVar(&notify, "notify", false, "Publish a test notification")
	return cmd
}
