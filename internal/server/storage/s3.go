// Package storage wraps the S3-compatible object store holding uploaded
// image attachments.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config holds the settings for the S3-compatible backend.
type Config struct {
	AccessKey    string
	SecretKey    string
	Bucket       string
	Region       string
	BaseEndpoint string
	// UsePathStyle enables path-style addressing, required by MinIO and
	// gofakes3.
	UsePathStyle bool
}

// Client is the single, process-wide handle to the bucket. It is constructed
// once at startup and shared read-only by the services.
type Client struct {
	s3Client *s3.Client
	presign  *s3.PresignClient
	bucket   string
}

// New builds a Client from configuration.
func New(ctx context.Context, cfg Config) (*Client, error) {
	sdkConfig, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	s3Client := s3.NewFromConfig(sdkConfig, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return NewFromS3Client(s3Client, cfg.Bucket), nil
}

// NewFromS3Client wraps an existing S3 client. Used by tests running against
// gofakes3.
func NewFromS3Client(s3Client *s3.Client, bucket string) *Client {
	return &Client{
		s3Client: s3Client,
		presign:  s3.NewPresignClient(s3Client),
		bucket:   bucket,
	}
}

// Put stores content under key with the given content type.
func (c *Client) Put(ctx context.Context, key string, content []byte, contentType string) error {
	_, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("storing object %q: %w", key, err)
	}
	return nil
}

// PresignGet returns a presigned URL from which the object under key can be
// fetched until the URL expires.
func (c *Client) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	req, err := c.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("presigning object %q: %w", key, err)
	}
	return req.URL, nil
}
