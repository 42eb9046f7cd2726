// Package s3 publishes archived snapshots to an S3 bucket.
package s3

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/fwojciec/llmstxt"
)

// Content types of uploaded objects.
const (
	markdownContentType = "text/markdown; charset=utf-8"
	textContentType     = "text/plain; charset=utf-8"
)

var _ llmstxt.Publisher = (*Publisher)(nil)

// API is the subset of the S3 client used by Publisher.
type API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config selects the bucket and the AWS settings. Empty values fall back
// to the standard AWS configuration chain.
type Config struct {
	Bucket string
	Prefix string

	Region  string
	Profile string

	// Endpoint targets an S3-compatible service instead of AWS.
	Endpoint string

	// UsePathStyle forces path-style addressing.
	UsePathStyle bool
}

// Publisher uploads a snapshot under <prefix>/v<tag>/ and the artifact
// as <prefix>/llms.txt.
type Publisher struct {
	client API
	bucket string
	prefix string
}

// NewPublisher creates a Publisher using client.
func NewPublisher(client API, bucket, prefix string) *Publisher {
	return &Publisher{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Open creates a Publisher backed by an AWS SDK client built from cfg.
func Open(ctx context.Context, cfg Config) (*Publisher, error) {
	if cfg.Bucket == "" {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "bucket required")
	}

	var loadOpts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewPublisher(client, cfg.Bucket, cfg.Prefix), nil
}

// Publish uploads every file of snap followed by the artifact at
// artifactPath. Returns the number of uploaded objects. An upload failure
// stops the publish; objects already uploaded stay in the bucket.
func (p *Publisher) Publish(ctx context.Context, snap *llmstxt.Snapshot, artifactPath string) (int, error) {
	if snap == nil {
		return 0, llmstxt.Errorf(llmstxt.EINVALID, "snapshot required")
	}

	n := 0
	dir := llmstxt.SnapshotPrefix + snap.Tag
	for _, name := range snap.Files {
		if err := p.put(ctx, p.key(dir, name), filepath.Join(snap.Dir, name)); err != nil {
			return n, err
		}
		n++
	}

	if err := p.put(ctx, p.key(llmstxt.ArtifactName), artifactPath); err != nil {
		return n, err
	}
	return n + 1, nil
}

func (p *Publisher) key(parts ...string) string {
	if p.prefix != "" {
		parts = append([]string{p.prefix}, parts...)
	}
	return path.Join(parts...)
}

func (p *Publisher) put(ctx context.Context, key, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	contentType := textContentType
	if strings.HasSuffix(file, llmstxt.DocumentExt) {
		contentType = markdownContentType
	}

	if _, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType),
	}); err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	return nil
}
