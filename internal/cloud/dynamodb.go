package cloud

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
)

// DynamoDBClient keeps the report export history. The table is keyed by
// projectId (hash) and createdAt (range, unix millis).
type DynamoDBClient struct {
	svc   *dynamodb.Client
	table string
}

func NewDynamoDBClient(ctx context.Context, region, table string) (*DynamoDBClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return &DynamoDBClient{
		svc:   dynamodb.NewFromConfig(cfg),
		table: table,
	}, nil
}

// ExportItem is the DynamoDB shape of a report export.
type ExportItem struct {
	ProjectID  string  `dynamodbav:"projectId"`
	CreatedAt  int64   `dynamodbav:"createdAt"`
	ExportID   string  `dynamodbav:"exportId"`
	UserID     string  `dynamodbav:"userId"`
	ClientName string  `dynamodbav:"clientName"`
	Format     string  `dynamodbav:"format"`
	FileName   string  `dynamodbav:"fileName"`
	ObjectKey  string  `dynamodbav:"objectKey"`
	URL        string  `dynamodbav:"url"`
	SizeBytes  int     `dynamodbav:"sizeBytes"`
	TotalKWh   float64 `dynamodbav:"totalKwh"`
	TotalCost  float64 `dynamodbav:"totalCost"`
}

func toExportItem(exp domain.ReportExport) ExportItem {
	return ExportItem{
		ProjectID:  exp.ProjectID,
		CreatedAt:  exp.CreatedAt.UnixMilli(),
		ExportID:   exp.ID,
		UserID:     exp.UserID,
		ClientName: exp.ClientName,
		Format:     exp.Format,
		FileName:   exp.FileName,
		ObjectKey:  exp.ObjectKey,
		URL:        exp.URL,
		SizeBytes:  exp.SizeBytes,
		TotalKWh:   exp.TotalKWh,
		TotalCost:  exp.TotalCost,
	}
}

func (it ExportItem) toDomain() domain.ReportExport {
	return domain.ReportExport{
		ID:         it.ExportID,
		ProjectID:  it.ProjectID,
		UserID:     it.UserID,
		ClientName: it.ClientName,
		Format:     it.Format,
		FileName:   it.FileName,
		ObjectKey:  it.ObjectKey,
		URL:        it.URL,
		SizeBytes:  it.SizeBytes,
		TotalKWh:   it.TotalKWh,
		TotalCost:  it.TotalCost,
		CreatedAt:  time.UnixMilli(it.CreatedAt).UTC(),
	}
}

func (c *DynamoDBClient) PutExport(ctx context.Context, exp domain.ReportExport) error {
	item, err := attributevalue.MarshalMap(toExportItem(exp))
	if err != nil {
		return fmt.Errorf("failed to marshal export: %w", err)
	}
	_, err = c.svc.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put item in DynamoDB: %w", err)
	}
	return nil
}

// ListExports returns a project's exports, newest first.
func (c *DynamoDBClient) ListExports(ctx context.Context, projectID string) ([]domain.ReportExport, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(c.table),
		KeyConditionExpression: aws.String("projectId = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
		ScanIndexForward: aws.Bool(false),
	}

	out := []domain.ReportExport{}
	paginator := dynamodb.NewQueryPaginator(c.svc, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query DynamoDB: %w", err)
		}
		var items []ExportItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal exports: %w", err)
		}
		for _, it := range items {
			out = append(out, it.toDomain())
		}
	}
	return out, nil
}
