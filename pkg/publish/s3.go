package publish

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ContentType is the content type of published documents.
const ContentType = "text/html; charset=utf-8"

// S3API is the part of the S3 client S3Sink uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink puts documents in an S3 bucket.
//
// Example usage:
//
//	client := publish.NewS3Client(publish.S3Config{Region: "eu-west-1"})
//	sink := publish.NewS3Sink(client, "my-bucket", "site/")
type S3Sink struct {
	client S3API
	bucket string
	prefix string

	// CacheControl is set on every object when non-empty.
	CacheControl string
}

// NewS3Sink creates a sink writing to bucket under prefix.
func NewS3Sink(client S3API, bucket, prefix string) *S3Sink {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &S3Sink{client: client, bucket: bucket, prefix: strings.TrimPrefix(prefix, "/")}
}

// Key returns the object key for a document key.
func (s *S3Sink) Key(key string) string {
	return s.prefix + key
}

// Put uploads the document.
func (s *S3Sink) Put(ctx context.Context, key string, html string) error {
	rel, err := cleanKey(key)
	if err != nil {
		return err
	}
	in := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.Key(rel)),
		Body:        strings.NewReader(html),
		ContentType: aws.String(ContentType),
	}
	if s.CacheControl != "" {
		in.CacheControl = aws.String(s.CacheControl)
	}
	if _, err := s.client.PutObject(ctx, in); err != nil {
		return fmt.Errorf("s3 put %s: %w", s.Key(rel), err)
	}
	return nil
}

// S3Config configures the S3 client.
type S3Config struct {
	Region string

	// Endpoint overrides the service endpoint, for S3-compatible stores.
	// Path-style addressing is used when set.
	Endpoint string
}

// NewS3Client creates a client using credentials from
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.
func NewS3Client(cfg S3Config) *s3.Client {
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: aws.NewCredentialsCache(envCredentials{}),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

// envCredentials reads static credentials from the environment.
type envCredentials struct{}

func (envCredentials) Retrieve(ctx context.Context) (aws.Credentials, error) {
	id := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, fmt.Errorf("s3: AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "Environment",
	}, nil
}
