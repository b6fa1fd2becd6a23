// Package bucket publishes rendered previews to S3 when a bucket is
// configured.
package bucket

import (
	"bytes"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/stepview/stepview/config"
)

type Uploader struct {
	client *s3.S3
	bucket string
}

// NewUploader builds an S3 client from config. Endpoint is optional and
// mainly useful for local S3-compatible stores.
func NewUploader(cfg *config.Config) (*Uploader, error) {
	awsCfg := &aws.Config{
		Region: aws.String(cfg.S3Region),
	}
	if cfg.S3Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.S3Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("creating AWS session: %w", err)
	}
	return &Uploader{client: s3.New(sess), bucket: cfg.S3Bucket}, nil
}

// Upload stores one rendered image under key.
func (u *Uploader) Upload(key string, data []byte) error {
	_, err := u.client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		return fmt.Errorf("uploading %s: %w", key, err)
	}
	return nil
}
