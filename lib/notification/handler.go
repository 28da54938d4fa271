package notificationhandler

import (
	log "github.com/sirupsen/logrus"
	"solventek-backend/db"
	notificationstore "solventek-backend/lib/notification/store"
	"solventek-backend/models"
)

type Provider interface {
	// GetOverlay — набор непрочитанных ид категории. Деградирует до пустого
	// набора при ошибке стора: оверлей — украшение списка, не его данные.
	GetOverlay(userID string, category models.NotificationCategory) Overlay
	// GetUnreadIds — те же данные плоским срезом для опроса непрочитанного,
	// та же деградация при ошибке стора
	GetUnreadIds(userID string, category models.NotificationCategory) []string
	MarkRead(userID string, category models.NotificationCategory, entityIds []string) error
	// MarkEntityRead — прочтение при открытии карточки, ошибки только логируются
	MarkEntityRead(userID string, category models.NotificationCategory, entityID string)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: notificationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store notificationstore.Provider
}

func (i impl) getLogger(userID string, category models.NotificationCategory) *log.Entry {
	return log.
		WithField("user_id", userID).
		WithField("category", category)
}

func (i impl) GetOverlay(userID string, category models.NotificationCategory) Overlay {
	ids, err := i.store.UnreadIds(userID, category)
	if err != nil {
		i.getLogger(userID, category).WithError(err).Error("ошибка получения непрочитанных событий")
		return NewOverlay(category, nil)
	}
	return NewOverlay(category, ids)
}

func (i impl) GetUnreadIds(userID string, category models.NotificationCategory) []string {
	ids, err := i.store.UnreadIds(userID, category)
	if err != nil {
		i.getLogger(userID, category).WithError(err).Error("ошибка получения непрочитанных событий")
		return []string{}
	}
	if ids == nil {
		ids = []string{}
	}
	return ids
}

func (i impl) MarkRead(userID string, category models.NotificationCategory, entityIds []string) error {
	if len(entityIds) == 0 {
		return i.store.DeleteAll(userID, category)
	}
	return i.store.Delete(userID, category, entityIds)
}

func (i impl) MarkEntityRead(userID string, category models.NotificationCategory, entityID string) {
	err := i.store.Delete(userID, category, []string{entityID})
	if err != nil {
		i.getLogger(userID, category).
			WithError(err).
			WithField("entity_id", entityID).
			Error("ошибка снятия отметки о непрочитанном")
	}
}
