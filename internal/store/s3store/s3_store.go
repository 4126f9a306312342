package s3store

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/continusec/librarian/internal/config"
	"github.com/continusec/librarian/internal/store"
)

var _ store.Store = &S3Store{}

type S3Store struct {
	creds  config.ObjectStoreCredentials
	client *s3.Client
}

// New builds a store around the configured static credentials. The ambient
// AWS credential chain is deliberately not consulted - the tool talks to
// whatever the config document says.
func New(ctx context.Context, creds config.ObjectStoreCredentials) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(creds.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrStoreUnavailable, err)
	}
	return &S3Store{
		creds:  creds,
		client: s3.NewFromConfig(cfg),
	}, nil
}

// Upload puts the file publicly readable under key and returns the
// virtual-hosted-style URL for it.
func (s *S3Store) Upload(ctx context.Context, localPath, key string) (retURL string, retErr error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("error opening file to upload (%s): %w", localPath, err)
	}
	defer func() {
		if err := f.Close(); err != nil && retErr == nil {
			retErr = fmt.Errorf("error closing uploaded file: %w", err)
		}
	}()

	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.creds.Bucket),
		Key:    aws.String(key),
		Body:   f,
		ACL:    types.ObjectCannedACLPublicRead,
	}); err != nil {
		return "", fmt.Errorf("%w for %s: %v", store.ErrUploadFailed, key, err)
	}

	return objectURL(s.creds.Bucket, s.creds.Region, key), nil
}

func (s *S3Store) Download(ctx context.Context, rawURL, localPath string) (retErr error) {
	bucket, key, err := parseObjectURL(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrRetrievalFailed, err)
	}

	// go through the authenticated client rather than plain HTTP - objects
	// are uploaded public-read but the bucket policy may since have changed
	rv, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%w for %s: %v", store.ErrRetrievalFailed, rawURL, err)
	}
	defer func() {
		if err := rv.Body.Close(); err != nil && retErr == nil {
			retErr = fmt.Errorf("error closing object body: %w", err)
		}
	}()

	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return fmt.Errorf("error creating parent dir for %s: %w", localPath, err)
	}
	f, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("error creating local file %s: %w", localPath, err)
	}
	defer func() {
		if err := f.Close(); err != nil && retErr == nil {
			retErr = fmt.Errorf("error closing downloaded file: %w", err)
		}
	}()

	if _, err := io.Copy(f, rv.Body); err != nil {
		return fmt.Errorf("%w while writing %s: %v", store.ErrRetrievalFailed, localPath, err)
	}
	return nil
}

func objectURL(bucket, region, key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
}

// parseObjectURL inverts objectURL, accepting any virtual-hosted-style S3 URL.
func parseObjectURL(rawURL string) (bucket, key string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("error parsing object url (%s): %w", rawURL, err)
	}
	bucket, _, ok := strings.Cut(u.Host, ".s3.")
	if !ok || bucket == "" {
		return "", "", fmt.Errorf("not a virtual-hosted-style S3 url: %s", rawURL)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", fmt.Errorf("object url has no key: %s", rawURL)
	}
	return bucket, key, nil
}
