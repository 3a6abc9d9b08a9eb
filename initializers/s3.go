package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"site-backend/config"
	filestorage "site-backend/lib/file-storage"
	s3client "site-backend/s3"
)

func InitS3(ctx context.Context) {
	if config.Conf.S3.Endpoint == "" {
		log.Info("S3 не настроен")
		filestorage.NewHandler(nil, "")
		return
	}
	minioClient, err := s3client.NewClient(config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
		config.Conf.S3.SecretAccessKey, *config.Conf.S3.UseSSL)
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		filestorage.NewHandler(nil, "")
		return
	}

	// Проверка соединения
	if err = s3client.Ping(ctx, minioClient); err != nil {
		log.WithError(err).Error("S3 соединение не удалось, ListBuckets вернул ошибку")
	}

	s3client.Client = minioClient
	filestorage.NewHandler(minioClient, config.Conf.S3.BucketName)
	if err = filestorage.Instance.MakeBucket(ctx); err != nil {
		log.WithError(err).Error("Ошибка создания бакета для резюме")
	}
	log.Info("S3 клиент успешно инициализирован")
}
