package notifyhandler

import (
	log "github.com/sirupsen/logrus"
	"solventek-backend/db"
	"solventek-backend/lib/smtp"
	userstore "solventek-backend/lib/users/store"
)

// Почтовые уведомления о событиях воркфлоу. Всегда best-effort:
// ошибка доставки логируется и никогда не роняет мутацию.

type Provider interface {
	NotifyUsers(userIds []string, subject, message string)
	NotifyEmail(email, subject, message string)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		userStore: userstore.NewInstance(db.DB),
	}
}

type impl struct {
	userStore userstore.Provider
}

func (i impl) NotifyUsers(userIds []string, subject, message string) {
	for _, userID := range userIds {
		logger := log.
			WithField("user_id", userID).
			WithField("subject", subject)
		user, err := i.userStore.GetByID(userID)
		if err != nil {
			logger.WithError(err).Error("ошибка получения пользователя для уведомления")
			continue
		}
		if user == nil || user.Email == "" {
			continue
		}
		if err = smtp.Instance.SendEMail(user.Email, subject, message); err != nil {
			logger.WithError(err).Error("ошибка отправки уведомления")
		}
	}
}

func (i impl) NotifyEmail(email, subject, message string) {
	if email == "" {
		return
	}
	if err := smtp.Instance.SendEMail(email, subject, message); err != nil {
		log.WithError(err).
			WithField("subject", subject).
			Error("ошибка отправки уведомления")
	}
}
