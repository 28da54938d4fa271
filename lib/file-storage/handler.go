package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"solventek-backend/config"
)

type Provider interface {
	// UploadDoc — сохраняет документ кандидата, возвращает ид файла в хранилище
	UploadDoc(ctx context.Context, applicationID string, file []byte, fileName string) (fileID string, err error)
	GetFile(ctx context.Context, fileID string) ([]byte, error)
}

var Instance Provider

func NewHandler(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadDoc(ctx context.Context, applicationID string, file []byte, fileName string) (string, error) {
	fileID := fmt.Sprintf("%s/%s-%s", applicationID, uuid.New().String(), fileName)
	reader := bytes.NewReader(file)
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, fileID, reader, int64(len(file)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения файла в хранилище")
	}
	return fileID, nil
}

func (i impl) GetFile(ctx context.Context, fileID string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, fileID, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения файла из хранилища")
	}
	defer object.Close()
	body, err := io.ReadAll(object)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения файла из хранилища")
	}
	return body, nil
}
