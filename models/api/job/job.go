package jobapimodels

import (
	"time"

	"github.com/pkg/errors"
	"solventek-backend/models"
	apimodels "solventek-backend/models/api"
	dbmodels "solventek-backend/models/db"
)

type JobData struct {
	OrganizationID  string `json:"organization_id"`  // ид владеющей организации, пусто для внутренних позиций
	Title           string `json:"title"`            // название позиции
	Description     string `json:"description"`      // описание
	Location        string `json:"location"`         // место работы
	OpenedPositions int    `json:"opened_positions"` // кол-во открытых позиций
}

func (j JobData) Validate() error {
	if j.Title == "" {
		return errors.New("не указано название позиции")
	}
	if j.OpenedPositions <= 0 {
		return errors.New("не указано количество вакантных позиций")
	}
	return nil
}

// EnrichData — обязательный пейлоад перехода enrich
type EnrichData struct {
	Skills                   []string `json:"skills"`                     // требуемые навыки
	Experience               string   `json:"experience"`                 // требуемый опыт
	Requirements             string   `json:"requirements"`               // требования
	RolesAndResponsibilities string   `json:"roles_and_responsibilities"` // обязанности
}

func (e EnrichData) Validate() error {
	if len(e.Skills) == 0 {
		return errors.New("не указаны навыки")
	}
	if e.Experience == "" {
		return errors.New("не указан требуемый опыт")
	}
	if e.Requirements == "" {
		return errors.New("не указаны требования")
	}
	if e.RolesAndResponsibilities == "" {
		return errors.New("не указаны обязанности")
	}
	return nil
}

// FinalVerifyData — обязательный пейлоад перехода finalVerify
type FinalVerifyData struct {
	BillRate int `json:"bill_rate"` // ставка для заказчика
	PayRate  int `json:"pay_rate"`  // ставка исполнителю
}

func (f FinalVerifyData) Validate() error {
	if f.BillRate <= 0 {
		return errors.New("не указана ставка bill rate")
	}
	if f.PayRate <= 0 {
		return errors.New("не указана ставка pay rate")
	}
	return nil
}

// TransitionData — общий пейлоад перехода, поля зависят от перехода
type TransitionData struct {
	Enrich      *EnrichData      `json:"enrich,omitempty"`
	FinalVerify *FinalVerifyData `json:"final_verify,omitempty"`
}

type JobInfo struct {
	OrganizationName string           `json:"organization_name"`
	AuthorName       string           `json:"author_name"`
	Status           models.JobStatus `json:"status"`
	StatusHuman      string           `json:"status_human"`
	Unread           bool             `json:"unread"` // есть непросмотренные события по позиции
}

type JobView struct {
	JobData
	JobInfo
	Skills                   []string  `json:"skills"`
	Experience               string    `json:"experience"`
	Requirements             string    `json:"requirements"`
	RolesAndResponsibilities string    `json:"roles_and_responsibilities"`
	BillRate                 int       `json:"bill_rate"`
	PayRate                  int       `json:"pay_rate"`
	ID                       string    `json:"id"`
	CreationDate             time.Time `json:"creation_date"`
	// переходы, доступные текущему пользователю
	AvailableTransitions []string `json:"available_transitions"`
}

type JobFilter struct {
	apimodels.Pagination
	Search         string             `json:"search"`
	Statuses       []models.JobStatus `json:"statuses"`
	OrganizationID string             `json:"organization_id"`
	AuthorID       string             `json:"author_id"`
	Sort           dbmodels.JobSort   `json:"sort"`
}

func (f JobFilter) Validate() error {
	for _, status := range f.Statuses {
		if !status.Validate() {
			return errors.Errorf("неизвестный статус (%v)", status)
		}
	}
	return nil
}

func (f JobFilter) ToStoreFilter() dbmodels.JobFilter {
	return dbmodels.JobFilter{
		Search:         f.Search,
		Statuses:       f.Statuses,
		OrganizationID: f.OrganizationID,
		AuthorID:       f.AuthorID,
		Sort:           f.Sort,
	}
}

func JobConvert(rec dbmodels.Job) JobView {
	result := JobView{
		JobData: JobData{
			Title:           rec.Title,
			Description:     rec.Description,
			Location:        rec.Location,
			OpenedPositions: rec.OpenedPositions,
		},
		JobInfo: JobInfo{
			Status:      rec.Status,
			StatusHuman: rec.Status.ToHuman(),
		},
		Skills:                   rec.Skills,
		Experience:               rec.Experience,
		Requirements:             rec.Requirements,
		RolesAndResponsibilities: rec.RolesAndResponsibilities,
		BillRate:                 rec.BillRate,
		PayRate:                  rec.PayRate,
		ID:                       rec.ID,
		CreationDate:             rec.CreatedAt,
	}
	if rec.OrganizationID != nil {
		result.OrganizationID = *rec.OrganizationID
	}
	if rec.Organization != nil {
		result.OrganizationName = rec.Organization.Name
	}
	if rec.Author != nil {
		result.AuthorName = rec.Author.GetFullName()
	}
	return result
}
