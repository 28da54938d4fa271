package timelinestore

import (
	dbmodels "solventek-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"solventek-backend/models"
)

type Provider interface {
	Create(rec dbmodels.TimelineEvent) (id string, err error)
	ListCount(category models.NotificationCategory, entityID string, filter dbmodels.TimelineFilter) (count int64, err error)
	List(category models.NotificationCategory, entityID string, filter dbmodels.TimelineFilter, page, limit int) (list []dbmodels.TimelineEvent, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TimelineEvent) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListCount(category models.NotificationCategory, entityID string, filter dbmodels.TimelineFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.TimelineEvent{}).
		Where("category = ?", category).
		Where("entity_id = ?", entityID)
	if filter.CommentsOnly {
		tx = tx.Where("action_type = ?", dbmodels.HistoryTypeComment)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("ошибка получения общего количества событий ленты")
		return 0, errors.New("ошибка получения общего количества событий ленты")
	}
	return rowCount, nil
}

func (i impl) List(category models.NotificationCategory, entityID string, filter dbmodels.TimelineFilter, page, limit int) (list []dbmodels.TimelineEvent, err error) {
	list = []dbmodels.TimelineEvent{}
	tx := i.db.
		Model(dbmodels.TimelineEvent{}).
		Where("category = ?", category).
		Where("entity_id = ?", entityID)
	if filter.CommentsOnly {
		tx = tx.Where("action_type = ?", dbmodels.HistoryTypeComment)
	}
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
	tx.Order("created_at")
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
