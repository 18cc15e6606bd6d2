package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Client is the part of *s3.Client the store uses.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Store struct {
	client  S3Client
	bucket  string
	baseURL string
	Prefix  string
}

// NewS3Store loads the default AWS config for region. When publicBaseURL is
// empty, URLs point at the bucket's virtual-hosted endpoint.
func NewS3Store(ctx context.Context, region, bucket, publicBaseURL string) (*S3Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %v", err)
	}
	if publicBaseURL == "" {
		publicBaseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}
	return NewS3StoreWithClient(s3.NewFromConfig(cfg), bucket, publicBaseURL), nil
}

func NewS3StoreWithClient(client S3Client, bucket, publicBaseURL string) *S3Store {
	return &S3Store{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
		Prefix:  "restaurants",
	}
}

func (s *S3Store) Store(ctx context.Context, img Image) (string, error) {
	ct, ext, err := Detect(img.Data)
	if err != nil {
		return "", err
	}
	key := objectName(s.Prefix, ext)
	in := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(img.Data),
		ContentType: aws.String(ct),
	}
	if _, err := s.client.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}
	return s.baseURL + "/" + key, nil
}

var _ ImageStore = (*S3Store)(nil)
