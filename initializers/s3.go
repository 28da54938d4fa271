package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	s3client "solventek-backend/s3"
)

func InitS3(ctx context.Context) {
	_, err := s3client.NewClient(ctx)
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}
	log.Info("S3 клиент успешно инициализирован")
}
