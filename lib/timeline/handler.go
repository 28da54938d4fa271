package timelinehandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"solventek-backend/db"
	notificationstore "solventek-backend/lib/notification/store"
	timelinestore "solventek-backend/lib/timeline/store"
	userstore "solventek-backend/lib/users/store"
	"solventek-backend/models"
	applicationapimodels "solventek-backend/models/api/application"
	dbmodels "solventek-backend/models/db"
)

type Provider interface {
	List(category models.NotificationCategory, entityID string, filter applicationapimodels.TimelineFilter) ([]applicationapimodels.TimelineView, int64, error)
	// Save — запись события и раздача отметок "непрочитано" получателям.
	// Ошибки здесь только логируются: лента не должна ронять мутацию.
	Save(category models.NotificationCategory, entityID, userID string, action dbmodels.ActionType, changes dbmodels.TimelineChanges, recipientIds []string)
	SaveNote(category models.NotificationCategory, entityID, userID string, note string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:             timelinestore.NewInstance(db.DB),
		userStore:         userstore.NewInstance(db.DB),
		notificationStore: notificationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store             timelinestore.Provider
	userStore         userstore.Provider
	notificationStore notificationstore.Provider
}

func (i impl) List(category models.NotificationCategory, entityID string, filter applicationapimodels.TimelineFilter) ([]applicationapimodels.TimelineView, int64, error) {
	storeFilter := dbmodels.TimelineFilter{CommentsOnly: filter.CommentsOnly}
	rowCount, err := i.store.ListCount(category, entityID, storeFilter)
	if err != nil {
		return nil, 0, err
	}

	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []applicationapimodels.TimelineView{}, rowCount, nil
	}

	list, err := i.store.List(category, entityID, storeFilter, page, limit)
	if err != nil {
		log.WithError(err).Error("ошибка получения ленты событий")
		return nil, 0, errors.New("ошибка получения ленты событий")
	}
	result := make([]applicationapimodels.TimelineView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicationapimodels.TimelineConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Save(category models.NotificationCategory, entityID, userID string, action dbmodels.ActionType, changes dbmodels.TimelineChanges, recipientIds []string) {
	logger := log.
		WithField("category", category).
		WithField("entity_id", entityID).
		WithField("action", action)
	rec := dbmodels.TimelineEvent{
		Category:   category,
		EntityID:   entityID,
		ActionType: action,
		Changes:    changes,
	}
	if userID != "" {
		rec.UserID = &userID
		user, err := i.userStore.GetByID(userID)
		if err != nil {
			logger.WithError(err).Error("ошибка сохранения события ленты, не удалось получить автора изменений")
			return
		}
		if user == nil {
			logger.Error("ошибка сохранения события ленты, автор изменений не найден")
			return
		}
		rec.UserName = user.GetFullName()
	} else {
		rec.UserName = models.SystemUser
	}
	_, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения события ленты")
		return
	}

	for _, recipientID := range recipientIds {
		// автор изменений свое событие уже видел
		if recipientID == userID {
			continue
		}
		notifyRec := dbmodels.NotificationRecord{
			UserID:   recipientID,
			Category: category,
			EntityID: entityID,
		}
		if err = i.notificationStore.Create(notifyRec); err != nil {
			logger.WithError(err).
				WithField("recipient_id", recipientID).
				Error("ошибка создания отметки о непрочитанном")
		}
	}
}

func (i impl) SaveNote(category models.NotificationCategory, entityID, userID string, note string) error {
	logger := log.
		WithField("category", category).
		WithField("entity_id", entityID).
		WithField("action", dbmodels.HistoryTypeComment)

	user, err := i.userStore.GetByID(userID)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения комментария, не удалось получить автора")
		return errors.New("ошибка сохранения комментария, не удалось получить автора")
	}
	if user == nil {
		logger.Error("ошибка сохранения комментария, автор не найден")
		return errors.New("ошибка сохранения комментария, автор не найден")
	}

	rec := dbmodels.TimelineEvent{
		Category:   category,
		EntityID:   entityID,
		UserID:     &userID,
		UserName:   user.GetFullName(),
		ActionType: dbmodels.HistoryTypeComment,
		Changes:    dbmodels.TimelineChanges{Description: note},
	}
	_, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения комментария")
		return errors.New("ошибка сохранения комментария")
	}
	return nil
}
