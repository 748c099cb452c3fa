package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"repair_desk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectAPI is the part of the S3 client the storage uses.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Storage keeps attachment objects in one bucket.
//
// Public URLs are <publicBaseURL>/<key> when a base URL is configured,
// otherwise the virtual-hosted S3 URL of the bucket.
type S3Storage struct {
	client  ObjectAPI
	bucket  string
	baseURL string
}

var _ interfaces.IFileStorage = (*S3Storage)(nil)

// NewS3Client honours a custom endpoint (MinIO, LocalStack) with path-style
// addressing.
func NewS3Client(awsCfg aws.Config, endpoint string) *s3.Client {
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}

func NewS3Storage(client ObjectAPI, bucket, region, publicBaseURL string) *S3Storage {
	base := strings.TrimRight(strings.TrimSpace(publicBaseURL), "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}
	return &S3Storage{client: client, bucket: bucket, baseURL: base}
}

func (s *S3Storage) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return s.baseURL + "/" + key, nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

// KeyFromURL accepts URLs produced by Put as well as path-style URLs
// ending in /<bucket>/<key>.
func (s *S3Storage) KeyFromURL(fileURL string) (string, bool) {
	if fileURL == "" {
		return "", false
	}
	if strings.HasPrefix(fileURL, s.baseURL+"/") {
		key := strings.TrimPrefix(fileURL, s.baseURL+"/")
		return unescapeKey(key)
	}

	u, err := url.Parse(fileURL)
	if err != nil || u.Path == "" {
		return "", false
	}
	marker := "/" + s.bucket + "/"
	if i := strings.Index(u.Path, marker); i >= 0 {
		return unescapeKey(u.Path[i+len(marker):])
	}
	return "", false
}

func unescapeKey(key string) (string, bool) {
	if k, err := url.PathUnescape(key); err == nil {
		key = k
	}
	key = strings.Trim(key, "/")
	return key, key != ""
}
