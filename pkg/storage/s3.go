// Package storage wraps the S3-compatible object store that receives session audio.
// The server never proxies audio bytes: uploaders get a short-lived presigned PUT
// URL and write directly to the bucket.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// UploadURLExpiry bounds how long a minted upload URL stays usable.
const UploadURLExpiry = 15 * time.Minute

type Config struct {
	Endpoint      string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

type Client struct {
	presign *s3.PresignClient
	cfg     Config
}

func New(cfg Config) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load storage credentials: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return &Client{
		presign: s3.NewPresignClient(client),
		cfg:     cfg,
	}, nil
}

// ChunkKey builds the object key for one audio chunk. The extension comes from the
// MIME subtype, so "audio/wav" chunk 0 lands at sessions/<id>/chunk_0.wav.
func ChunkKey(sessionID string, chunkNumber int, mimeType string) string {
	ext := mimeType
	if idx := strings.LastIndex(mimeType, "/"); idx >= 0 {
		ext = mimeType[idx+1:]
	}
	return fmt.Sprintf("sessions/%s/chunk_%d.%s", sessionID, chunkNumber, ext)
}

// PresignChunkUpload mints a presigned PUT URL for exactly one object key.
func (c *Client) PresignChunkUpload(ctx context.Context, key string) (string, error) {
	req, err := c.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &c.cfg.Bucket,
		Key:    &key,
	}, s3.WithPresignExpires(UploadURLExpiry))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// PublicURL is where the object is readable after upload.
func (c *Client) PublicURL(key string) string {
	base := c.cfg.PublicBaseURL
	if base == "" {
		base = fmt.Sprintf("%s/%s", strings.TrimRight(c.cfg.Endpoint, "/"), c.cfg.Bucket)
	}
	return fmt.Sprintf("%s/%s", strings.TrimRight(base, "/"), key)
}
