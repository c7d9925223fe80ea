package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	aws_config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/kchitera56/bakholokoe-website/internal/config"
)

// IGalleryStorage lists the gallery images shown on the gallery page.
type IGalleryStorage interface {
	ListImageURLs(ctx context.Context) ([]string, error)
}

// s3Gallery implements IGalleryStorage against an S3 bucket.
// Images are uploaded to the bucket out of band; the site only lists them.
type s3Gallery struct {
	cfg      *config.Config
	s3Client *s3.Client
}

// emptyGallery is used when no bucket is configured.
type emptyGallery struct{}

func (emptyGallery) ListImageURLs(ctx context.Context) ([]string, error) {
	return nil, nil
}

// NewGalleryStorage creates the gallery storage service.
// Without an S3 bucket configured the gallery page just renders empty.
func NewGalleryStorage(cfg *config.Config) (IGalleryStorage, error) {
	if cfg.AwsS3Bucket == "" {
		return emptyGallery{}, nil
	}

	awsCfg, err := aws_config.LoadDefaultConfig(context.TODO(),
		aws_config.WithRegion(cfg.AwsRegion),
		aws_config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AwsAccessKeyID,
			cfg.AwsSecretAccessKey,
			"", // session token
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &s3Gallery{
		cfg:      cfg,
		s3Client: s3.NewFromConfig(awsCfg),
	}, nil
}

// ListImageURLs lists objects under the gallery prefix and returns their
// public URLs, bucket order (lexicographic by key).
func (s *s3Gallery) ListImageURLs(ctx context.Context) ([]string, error) {
	var urls []string

	paginator := s3.NewListObjectsV2Paginator(s.s3Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.cfg.AwsS3Bucket),
		Prefix: aws.String(s.cfg.GalleryPrefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list gallery objects: %w", err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if key == "" || strings.HasSuffix(key, "/") {
				continue // skip the prefix placeholder itself
			}
			urls = append(urls, s.objectURL(key))
		}
	}

	return urls, nil
}

func (s *s3Gallery) objectURL(key string) string {
	if s.cfg.GalleryBaseURL != "" {
		return strings.TrimSuffix(s.cfg.GalleryBaseURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.AwsS3Bucket, s.cfg.AwsRegion, key)
}
