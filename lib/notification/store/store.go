package notificationstore

import (
	"gorm.io/gorm"
	"solventek-backend/models"
	dbmodels "solventek-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.NotificationRecord) error
	UnreadIds(userID string, category models.NotificationCategory) ([]string, error)
	Delete(userID string, category models.NotificationCategory, entityIds []string) error
	DeleteAll(userID string, category models.NotificationCategory) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.NotificationRecord) error {
	return i.db.
		Save(&rec).
		Error
}

func (i impl) UnreadIds(userID string, category models.NotificationCategory) (ids []string, err error) {
	err = i.db.
		Model(dbmodels.NotificationRecord{}).
		Distinct("entity_id").
		Where("user_id = ?", userID).
		Where("category = ?", category).
		Pluck("entity_id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (i impl) Delete(userID string, category models.NotificationCategory, entityIds []string) error {
	return i.db.
		Where("user_id = ?", userID).
		Where("category = ?", category).
		Where("entity_id in (?)", entityIds).
		Delete(&dbmodels.NotificationRecord{}).
		Error
}

func (i impl) DeleteAll(userID string, category models.NotificationCategory) error {
	return i.db.
		Where("user_id = ?", userID).
		Where("category = ?", category).
		Delete(&dbmodels.NotificationRecord{}).
		Error
}
