package s3

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/LingarajMishra/ModelPortfolioWebsite/internal/blob"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// Options configures the S3-backed blob store. Endpoint is optional and
// points the client at an S3-compatible backend (MinIO etc). Credentials may
// be nil, in which case the ambient AWS credential chain is used.
type Options struct {
	Bucket      string
	Region      string
	Endpoint    string
	Credentials aws.CredentialsProvider
}

// StaticCredentials builds a fixed key-pair credential provider.
func StaticCredentials(accessKeyID, secretAccessKey string) aws.CredentialsProvider {
	return credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")
}

type Store struct {
	client   *awss3.Client
	presign  *awss3.PresignClient
	bucket   string
	region   string
	endpoint string
}

// New builds a blob.Store backed by a single S3 bucket.
func New(ctx context.Context, opts Options) (*Store, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket name is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.Credentials != nil {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(opts.Credentials))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := awss3.NewFromConfig(cfg, func(o *awss3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Store{
		client:   client,
		presign:  awss3.NewPresignClient(client),
		bucket:   opts.Bucket,
		region:   opts.Region,
		endpoint: opts.Endpoint,
	}, nil
}

func (s *Store) ListObjects(ctx context.Context) ([]blob.Object, error) {
	var objects []blob.Object

	paginator := awss3.NewListObjectsV2Paginator(s.client, &awss3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			objects = append(objects, blob.Object{
				Key: key,
				URL: s.ObjectURL(key),
			})
		}
	}

	return objects, nil
}

func (s *Store) IssueWriteURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := s.presign.PresignPutObject(ctx, &awss3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, awss3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("failed to presign put for %q: %w", key, err)
	}
	return req.URL, nil
}

func (s *Store) ObjectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.endpoint, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func (s *Store) DeleteObject(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %q: %w", key, err)
	}
	return nil
}
