package cloud

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ReportURLTTL bounds how long an archived report download link stays valid.
const ReportURLTTL = 24 * time.Hour

// S3Client stores photos and archived reports in one bucket.
type S3Client struct {
	svc     *s3.Client
	presign *s3.PresignClient
	bucket  string
	region  string
	baseURL string
}

// NewS3Client creates a client for bucket. publicBaseURL, when set, replaces
// the virtual-hosted bucket URL in PublicURL (CDN or local gateway).
func NewS3Client(ctx context.Context, region, bucket, publicBaseURL string) (*S3Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	svc := s3.NewFromConfig(cfg)
	return &S3Client{
		svc:     svc,
		presign: s3.NewPresignClient(svc),
		bucket:  bucket,
		region:  region,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

func (c *S3Client) put(ctx context.Context, key string, data []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"uploaded-at": time.Now().Format(time.RFC3339),
		},
	}
	if _, err := c.svc.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	return nil
}

// Upload stores a photo and returns its public URL.
func (c *S3Client) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := c.put(ctx, key, data, contentType); err != nil {
		return "", err
	}
	return c.PublicURL(key), nil
}

// UploadReport stores an exported report and returns a presigned download URL.
func (c *S3Client) UploadReport(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := c.put(ctx, key, data, contentType); err != nil {
		return "", err
	}
	return c.PresignGet(ctx, key, ReportURLTTL)
}

func (c *S3Client) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	res, err := c.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = ttl
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return res.URL, nil
}

func (c *S3Client) Delete(ctx context.Context, key string) error {
	_, err := c.svc.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}

func (c *S3Client) PublicURL(key string) string {
	return ObjectURL(c.baseURL, c.bucket, c.region, key)
}

func (c *S3Client) KeyFromURL(raw string) (string, bool) {
	return ObjectKey(c.baseURL, c.bucket, raw)
}

// ObjectURL builds the public URL of key.
func ObjectURL(baseURL, bucket, region, key string) string {
	if baseURL != "" {
		return baseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
}

// ObjectKey recovers the object key from a URL produced by ObjectURL or from
// a path-style URL containing /<bucket>/.
func ObjectKey(baseURL, bucket, raw string) (string, bool) {
	if baseURL != "" && strings.HasPrefix(raw, baseURL+"/") {
		key := strings.TrimPrefix(raw, baseURL+"/")
		return key, key != ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}
	path := strings.TrimPrefix(u.Path, "/")
	if strings.HasPrefix(u.Host, bucket+".") {
		return path, path != ""
	}
	if rest, ok := strings.CutPrefix(path, bucket+"/"); ok && rest != "" {
		return rest, true
	}
	return "", false
}
