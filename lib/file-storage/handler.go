package filestorage

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"hrms-backend/config"
)

type Provider interface {
	UploadDocument(ctx context.Context, key string, file []byte, contentType string) error
	GetDocument(ctx context.Context, key string) ([]byte, error)
	MakeBucket(ctx context.Context) error
}

var Instance Provider

func NewHandler(client *minio.Client) {
	Instance = &impl{
		s3client: client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadDocument(ctx context.Context, key string, file []byte, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.Bucket, key,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "ошибка загрузки документа %v", key)
	}
	return nil
}

func (i impl) GetDocument(ctx context.Context, key string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка получения документа %v", key)
	}
	defer object.Close()
	body, err := io.ReadAll(object)
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка чтения документа %v", key)
	}
	return body, nil
}

func (i impl) MakeBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.Bucket
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}
