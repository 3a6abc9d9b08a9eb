package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	UploadResume(ctx context.Context, jobID, fileName, contentType string, body []byte) (objectName string, err error)
	GetFile(ctx context.Context, objectName string) ([]byte, error)
	MakeBucket(ctx context.Context) error
}

// Instance - nil, если S3 не настроен
var Instance Provider

type impl struct {
	s3client   *minio.Client
	bucketName string
}

func NewHandler(s3client *minio.Client, bucketName string) {
	if s3client == nil {
		log.Warn("S3 не настроен, архив резюме отключён")
		return
	}
	Instance = &impl{
		s3client:   s3client,
		bucketName: bucketName,
	}
}

func (i impl) UploadResume(ctx context.Context, jobID, fileName, contentType string, body []byte) (string, error) {
	objectName := resumeObjectName(jobID, fileName)
	_, err := i.s3client.PutObject(ctx, i.bucketName, objectName, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"job-id": jobID,
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения резюме в S3")
	}
	return objectName, nil
}

func (i impl) GetFile(ctx context.Context, objectName string) ([]byte, error) {
	obj, err := i.s3client.GetObject(ctx, i.bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения файла из S3")
	}
	defer obj.Close()
	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения файла из S3")
	}
	return body, nil
}

func (i impl) MakeBucket(ctx context.Context) error {
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, i.bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, i.bucketName, minio.MakeBucketOptions{Region: location})
}

func resumeObjectName(jobID, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("resumes/%s/%s%s", jobID, uuid.New().String(), ext)
}
