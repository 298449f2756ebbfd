package publish

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// cacheControl keeps reports briefly cacheable so a re-published report with
// the same name becomes visible within minutes.
const cacheControl = "max-age=300"

// ObjectPutter is the slice of the S3 API the publisher needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Result identifies the published object.
type Result struct {
	URI       string // s3://bucket/key
	PublicURL string // virtual-hosted HTTPS URL
}

// Publisher uploads rendered report documents to one bucket.
type Publisher struct {
	client ObjectPutter
	bucket string
	prefix string
	region string
	log    *slog.Logger
}

// NewPublisher builds a Publisher using the default AWS credential chain for
// the given region.
func NewPublisher(ctx context.Context, bucket, prefix, region string, logger *slog.Logger) (*Publisher, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, &PublishError{Bucket: bucket, Cause: fmt.Errorf("failed to load AWS configuration: %w", err)}
	}
	return &Publisher{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: prefix,
		region: region,
		log:    logger,
	}, nil
}

// NewPublisherWithClient builds a Publisher around an existing S3 client.
// Used by tests to substitute a stub.
func NewPublisherWithClient(client ObjectPutter, bucket, prefix, region string, logger *slog.Logger) *Publisher {
	return &Publisher{client: client, bucket: bucket, prefix: prefix, region: region, log: logger}
}

// ObjectKey returns the destination key for a report filename, applying the
// configured prefix unless the name already carries it.
func (p *Publisher) ObjectKey(filename string) string {
	if p.prefix != "" && strings.HasPrefix(filename, p.prefix) {
		return filename
	}
	return p.prefix + filename
}

// Upload publishes the local file under the computed key with public-read
// access and a text/html content type. The local file is left untouched on
// failure.
func (p *Publisher) Upload(ctx context.Context, localPath, filename string) (*Result, error) {
	key := p.ObjectKey(filename)

	f, err := os.Open(localPath)
	if err != nil {
		return nil, &PublishError{Bucket: p.bucket, Key: key, Cause: fmt.Errorf("failed to open local artifact: %w", err)}
	}
	defer func() { _ = f.Close() }()

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(p.bucket),
		Key:          aws.String(key),
		Body:         f,
		ContentType:  aws.String("text/html"),
		CacheControl: aws.String(cacheControl),
		ACL:          types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return nil, &PublishError{Bucket: p.bucket, Key: key, Cause: err}
	}

	result := &Result{
		URI:       fmt.Sprintf("s3://%s/%s", p.bucket, key),
		PublicURL: fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", p.bucket, p.region, key),
	}
	p.log.Info("report published", "uri", result.URI, "url", result.PublicURL)
	return result, nil
}
