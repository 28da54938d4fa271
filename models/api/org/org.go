package orgapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"solventek-backend/models"
	apimodels "solventek-backend/models/api"
	dbmodels "solventek-backend/models/db"
)

// RegisterRequest — саморегистрация вендора, попадает в очередь на проверку
type RegisterRequest struct {
	Name         string `json:"name"`          // название организации
	ContactName  string `json:"contact_name"`  // контактное лицо
	ContactEmail string `json:"contact_email"` // почта
	ContactPhone string `json:"contact_phone"` // телефон
	Description  string `json:"description"`   // описание
	// данные первого пользователя организации
	UserEmail    string `json:"user_email"`
	UserPassword string `json:"user_password"`
	UserFirstName string `json:"user_first_name"`
	UserLastName  string `json:"user_last_name"`
}

func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("не указано название организации")
	}
	if r.ContactEmail == "" {
		return errors.New("не указана контактная почта")
	}
	if r.UserEmail == "" {
		return errors.New("не указана почта пользователя")
	}
	if len(r.UserPassword) < 6 {
		return errors.New("пароль должен быть не короче 6 символов")
	}
	return nil
}

type RejectRequest struct {
	Reason string `json:"reason"` // причина отклонения
}

func (r RejectRequest) Validate() error {
	if strings.TrimSpace(r.Reason) == "" {
		return errors.New("не указана причина отклонения")
	}
	return nil
}

type StatusUpdateRequest struct {
	Status models.OrganizationStatus `json:"status"` // новый статус (ACTIVE/INACTIVE)
}

func (r StatusUpdateRequest) Validate() error {
	if !r.Status.Validate() {
		return errors.Errorf("неизвестный статус (%v)", r.Status)
	}
	return nil
}

type OrgView struct {
	ID           string                    `json:"id"`
	Name         string                    `json:"name"`
	OrgType      models.OrgType            `json:"org_type"`
	Status       models.OrganizationStatus `json:"status"`
	StatusHuman  string                    `json:"status_human"`
	ContactName  string                    `json:"contact_name"`
	ContactEmail string                    `json:"contact_email"`
	ContactPhone string                    `json:"contact_phone"`
	Description  string                    `json:"description"`
	RejectReason string                    `json:"reject_reason,omitempty"`
	Unread       bool                      `json:"unread"`
	CreationDate time.Time                 `json:"creation_date"`
	// переходы, доступные текущему пользователю
	AvailableTransitions []string `json:"available_transitions"`
}

type OrgFilter struct {
	apimodels.Pagination
	Search   string                      `json:"search"`
	Statuses []models.OrganizationStatus `json:"statuses"`
	OrgType  models.OrgType              `json:"org_type"`
	Sort     dbmodels.OrganizationSort   `json:"sort"`
}

func (f OrgFilter) Validate() error {
	for _, status := range f.Statuses {
		if !status.Validate() {
			return errors.Errorf("неизвестный статус (%v)", status)
		}
	}
	return nil
}

func (f OrgFilter) ToStoreFilter() dbmodels.OrganizationFilter {
	return dbmodels.OrganizationFilter{
		Search:   f.Search,
		Statuses: f.Statuses,
		OrgType:  f.OrgType,
		Sort:     f.Sort,
	}
}

func OrgConvert(rec dbmodels.Organization) OrgView {
	return OrgView{
		ID:           rec.ID,
		Name:         rec.Name,
		OrgType:      rec.OrgType,
		Status:       rec.Status,
		StatusHuman:  rec.Status.ToHuman(),
		ContactName:  rec.ContactName,
		ContactEmail: rec.ContactEmail,
		ContactPhone: rec.ContactPhone,
		Description:  rec.Description,
		RejectReason: rec.RejectReason,
		CreationDate: rec.CreatedAt,
	}
}
