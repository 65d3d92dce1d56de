package cloud

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
)

// SNSClient publishes audit notifications to one topic.
type SNSClient struct {
	svc      *sns.Client
	topicArn string
}

func NewSNSClient(ctx context.Context, region, topicArn string) (*SNSClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return &SNSClient{
		svc:      sns.NewFromConfig(cfg),
		topicArn: topicArn,
	}, nil
}

func (c *SNSClient) Publish(ctx context.Context, subject, message string) error {
	result, err := c.svc.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(c.topicArn),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	if err != nil {
		return fmt.Errorf("failed to publish to SNS: %w", err)
	}
	log.Debug().Str("message_id", aws.ToString(result.MessageId)).Msg("sns message published")
	return nil
}

// ReportReady announces an archived report export.
func (c *SNSClient) ReportReady(ctx context.Context, exp domain.ReportExport) error {
	return c.Publish(ctx, ReportReadySubject(exp), ReportReadyMessage(exp))
}

func ReportReadySubject(exp domain.ReportExport) string {
	return fmt.Sprintf("Energy Audit Report Ready: %s", exp.ClientName)
}

func ReportReadyMessage(exp domain.ReportExport) string {
	return fmt.Sprintf(
		"Energy Audit Report Exported\n\n"+
			"Client: %s\n"+
			"Project: %s\n"+
			"Format: %s\n"+
			"File: %s\n"+
			"Total Monthly Consumption: %.2f kWh\n"+
			"Total Estimated Monthly Cost: %.2f GHS\n"+
			"Time: %s\n\n"+
			"Download: %s",
		exp.ClientName,
		exp.ProjectID,
		exp.Format,
		exp.FileName,
		exp.TotalKWh,
		exp.TotalCost,
		exp.CreatedAt.Format(time.RFC3339),
		exp.URL,
	)
}
