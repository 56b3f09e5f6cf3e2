package storage

import (
	"EcoPanier/internal/utils"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
)

var (
	AllowImage = []string{".png", ".jpg", ".jpeg", ".webp"}

	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrStorageNotReady    = errors.New("object storage not configured")
)

type (
	AwsS3 interface {
		UploadFile(fileName string, file *multipart.FileHeader, folder string, allowed ...string) (string, error)
		UpdateFile(objectKey string, file *multipart.FileHeader, allowed ...string) (string, error)
		DeleteFile(objectKey string) error
		GetObjectKeyFromLink(link string) string
		GetPublicLinkKey(objectKey string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

func NewAwsS3() AwsS3 {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	region := utils.GetConfig("AWS_S3_REGION")

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Errorf("failed to load aws config: %v", err)
		return &awsS3{bucket: bucket, region: region}
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}
}

func (a *awsS3) put(objectKey string, file *multipart.FileHeader, allowed ...string) error {
	if a.client == nil || a.bucket == "" {
		return ErrStorageNotReady
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(allowed) > 0 && !slices.Contains(allowed, ext) {
		return ErrFileTypeNotAllowed
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = a.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	return err
}

func (a *awsS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowed ...string) (string, error) {
	objectKey := fmt.Sprintf("%s/%s%s", folder, fileName, strings.ToLower(filepath.Ext(file.Filename)))
	if err := a.put(objectKey, file, allowed...); err != nil {
		return "", err
	}
	return objectKey, nil
}

func (a *awsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowed ...string) (string, error) {
	newKey := strings.TrimSuffix(objectKey, filepath.Ext(objectKey)) + strings.ToLower(filepath.Ext(file.Filename))
	if err := a.put(newKey, file, allowed...); err != nil {
		return "", err
	}
	if newKey != objectKey {
		_ = a.DeleteFile(objectKey)
	}
	return newKey, nil
}

func (a *awsS3) DeleteFile(objectKey string) error {
	if a.client == nil || a.bucket == "" {
		return ErrStorageNotReady
	}
	_, err := a.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *awsS3) publicPrefix() string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", a.bucket, a.region)
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return a.publicPrefix() + objectKey
}

// GetObjectKeyFromLink returns "" for links that do not point at the bucket.
func (a *awsS3) GetObjectKeyFromLink(link string) string {
	prefix := a.publicPrefix()
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}
