package notificationapimodels

import (
	"github.com/pkg/errors"
	"solventek-backend/models"
)

type UnreadView struct {
	Category models.NotificationCategory `json:"category"`
	Ids      []string                    `json:"ids"` // ид сущностей с непрочитанными событиями
}

type MarkReadRequest struct {
	Category models.NotificationCategory `json:"category"`
	Ids      []string                    `json:"ids"` // пустой список = прочитано все в категории
}

func (r MarkReadRequest) Validate() error {
	if !r.Category.Validate() {
		return errors.Errorf("неизвестная категория (%v)", r.Category)
	}
	return nil
}
