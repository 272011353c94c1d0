package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	filestorage "hrms-backend/lib/file-storage"
	s3client "hrms-backend/s3"
)

func InitS3() {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}
	s3client.Client = minioClient
	filestorage.NewHandler(minioClient)

	if err = filestorage.Instance.MakeBucket(context.Background()); err != nil {
		log.WithError(err).Error("S3 соединение не удалось, бакет недоступен")
		return
	}
	log.Info("S3 клиент успешно инициализирован")
}
