package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "solventek-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Organization{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Organization")
	}
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Job")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Application")
	}
	if err := DB.AutoMigrate(&dbmodels.ApplicationDoc{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApplicationDoc")
	}
	if err := DB.AutoMigrate(&dbmodels.TimelineEvent{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры TimelineEvent")
	}
	if err := DB.AutoMigrate(&dbmodels.NotificationRecord{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры NotificationRecord")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
