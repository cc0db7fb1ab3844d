package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "github.com/smart-closet/closetctl/config"
	"github.com/smart-closet/closetctl/models"
)

const presignExpiry = 1 * time.Hour

// ItemRegistrar registers an already-uploaded image URL as a closet
// item. Satisfied by the backend client.
type ItemRegistrar interface {
	RegisterItem(ctx context.Context, draft models.ItemDraft) (models.Item, error)
}

// Uploader is the alternate upload path: the image goes to an S3 bucket
// first, then its URL is registered with the backend. Superseded by the
// direct multipart upload for most flows, kept for deployments where
// the backend cannot accept large bodies.
type Uploader struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	prefix  string
}

// NewUploader initializes the S3 clients from the default AWS credential
// chain.
func NewUploader(ctx context.Context, cfg appconfig.StorageConfig) (*Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %v", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &Uploader{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.BucketName,
		prefix:  cfg.KeyPrefix,
	}, nil
}

// UploadItemImage puts the local file into the bucket, presigns a GET
// URL for it and registers that URL with the backend as a new item.
func (u *Uploader) UploadItemImage(ctx context.Context, registrar ItemRegistrar, upload models.ImageUpload, categoryID int) (models.Item, error) {
	file, err := os.Open(upload.Path)
	if err != nil {
		return models.Item{}, fmt.Errorf("open image %s: %v", upload.Path, err)
	}
	defer file.Close()

	filename := upload.Filename
	if filename == "" {
		filename = filepath.Base(upload.Path)
	}
	// ensure unique names
	objectKey := fmt.Sprintf("%s/%d_%s", u.prefix, time.Now().UnixNano(), filename)

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(objectKey),
		Body:        file,
		ContentType: aws.String(upload.MimeType),
	})
	if err != nil {
		return models.Item{}, fmt.Errorf("failed to upload file to S3: %v", err)
	}

	url, err := u.PresignedURL(ctx, objectKey)
	if err != nil {
		return models.Item{}, err
	}

	item, err := registrar.RegisterItem(ctx, models.ItemDraft{
		Name:       filename,
		ImageURL:   url,
		CategoryID: categoryID,
	})
	if err != nil {
		return models.Item{}, fmt.Errorf("register uploaded image: %w", err)
	}
	return item, nil
}

// PresignedURL generates a time-limited GET URL for an object key.
func (u *Uploader) PresignedURL(ctx context.Context, objectKey string) (string, error) {
	request, err := u.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to sign request: %v", err)
	}
	return request.URL, nil
}
