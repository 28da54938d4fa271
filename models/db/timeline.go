package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"solventek-backend/models"
)

type TimelineEvent struct {
	BaseModel
	Category models.NotificationCategory `gorm:"type:varchar(100);index:idx_timeline_entity"`
	EntityID string                      `gorm:"type:varchar(36);index:idx_timeline_entity"`
	UserID   *string
	UserName string
	ActionType ActionType      `gorm:"type:varchar(255)"`
	Changes    TimelineChanges `gorm:"type:jsonb"`
}

func (j TimelineChanges) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *TimelineChanges) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

type TimelineChanges struct {
	Description string           `json:"description"` // Комментарий
	Data        []TimelineChange `json:"data"`        // Список изменений
}

type TimelineChange struct {
	Field    string      `json:"field"`     // Измененное поле
	OldValue interface{} `json:"old_value"` // Старое значение
	NewValue interface{} `json:"new_value"` // Новое значение
}

type ActionType string

const (
	HistoryTypeComment      ActionType = "comment"       // Добавлен комментарий
	HistoryTypeAdded        ActionType = "added"         // Сущность создана
	HistoryTypeUpdate       ActionType = "update"        // Сущность обновлена
	HistoryTypeStatusChange ActionType = "status_change" // Смена статуса воркфлоу
	HistoryTypeDecision     ActionType = "decision"      // Решение заказчика по кандидату
	HistoryTypeDoc          ActionType = "doc"           // Загружен документ
)

// NotificationRecord — отметка "непрочитано" для пользователя по сущности.
// Создается при записи события в ленту, удаляется при прочтении.
type NotificationRecord struct {
	BaseModel
	UserID   string                      `gorm:"type:varchar(36);index:idx_notification_user"`
	Category models.NotificationCategory `gorm:"type:varchar(100);index:idx_notification_user"`
	EntityID string                      `gorm:"type:varchar(36)"`
}

type TimelineFilter struct {
	CommentsOnly bool `json:"comments_only"`
}
