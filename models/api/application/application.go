package applicationapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"solventek-backend/models"
	apimodels "solventek-backend/models/api"
	dbmodels "solventek-backend/models/db"
)

type ApplicationData struct {
	JobID        string `json:"job_id"`        // ид позиции
	FirstName    string `json:"first_name"`    // имя кандидата
	LastName     string `json:"last_name"`     // фамилия кандидата
	Email        string `json:"email"`         // почта кандидата
	Phone        string `json:"phone"`         // телефон кандидата
	ExpectedRate int    `json:"expected_rate"` // ожидаемая ставка
}

func (a ApplicationData) Validate() error {
	if a.JobID == "" {
		return errors.New("не указан идентификатор позиции")
	}
	if strings.TrimSpace(a.FirstName) == "" {
		return errors.New("не указано имя кандидата")
	}
	if a.Email == "" && a.Phone == "" {
		return errors.New("не указаны контакты кандидата")
	}
	return nil
}

type StatusUpdateRequest struct {
	Status models.ApplicationStatus `json:"status"` // новый статус
	// дата интервью, обязательна для статуса INTERVIEW_SCHEDULED
	InterviewAt *time.Time `json:"interview_at,omitempty"`
	Comment     string     `json:"comment"` // комментарий к смене статуса
}

func (r StatusUpdateRequest) Validate() error {
	if !r.Status.Validate() {
		return errors.Errorf("неизвестный статус (%v)", r.Status)
	}
	if r.Status == models.ApplicationStatusInterviewScheduled && r.InterviewAt == nil {
		return errors.New("не указана дата интервью")
	}
	return nil
}

// DecisionRequest — решение заказчика по кандидату, фидбек обязателен
type DecisionRequest struct {
	Approved bool   `json:"approved"` // решение: принять/отклонить
	Feedback string `json:"feedback"` // обоснование решения
}

func (r DecisionRequest) Validate() error {
	if strings.TrimSpace(r.Feedback) == "" {
		return errors.New("не указано обоснование решения")
	}
	return nil
}

type ApplicationInfo struct {
	JobTitle         string                   `json:"job_title"`
	OrganizationName string                   `json:"organization_name"`
	AuthorName       string                   `json:"author_name"`
	Status           models.ApplicationStatus `json:"status"`
	StatusHuman      string                   `json:"status_human"`
	Unread           bool                     `json:"unread"`
}

type ApplicationView struct {
	ApplicationData
	ApplicationInfo
	InterviewAt      *time.Time `json:"interview_at,omitempty"`
	DecisionApproved *bool      `json:"decision_approved,omitempty"`
	DecisionFeedback string     `json:"decision_feedback,omitempty"`
	Docs             []DocView  `json:"docs,omitempty"`
	ID               string     `json:"id"`
	CreationDate     time.Time  `json:"creation_date"`
}

// DocView — загруженный документ кандидата, file_id используется для скачивания
type DocView struct {
	FileID   string `json:"file_id"`
	FileName string `json:"file_name"`
}

func DocConvert(rec dbmodels.ApplicationDoc) DocView {
	return DocView{
		FileID:   rec.FileID,
		FileName: rec.FileName,
	}
}

type ApplicationFilter struct {
	apimodels.Pagination
	Search         string                     `json:"search"`
	JobID          string                     `json:"job_id"`
	Statuses       []models.ApplicationStatus `json:"statuses"`
	OrganizationID string                     `json:"organization_id"`
	Sort           dbmodels.ApplicationSort   `json:"sort"`
}

func (f ApplicationFilter) Validate() error {
	for _, status := range f.Statuses {
		if !status.Validate() {
			return errors.Errorf("неизвестный статус (%v)", status)
		}
	}
	return nil
}

func (f ApplicationFilter) ToStoreFilter() dbmodels.ApplicationFilter {
	return dbmodels.ApplicationFilter{
		Search:         f.Search,
		JobID:          f.JobID,
		Statuses:       f.Statuses,
		OrganizationID: f.OrganizationID,
		Sort:           f.Sort,
	}
}

func ApplicationConvert(rec dbmodels.Application) ApplicationView {
	result := ApplicationView{
		ApplicationData: ApplicationData{
			JobID:        rec.JobID,
			FirstName:    rec.FirstName,
			LastName:     rec.LastName,
			Email:        rec.Email,
			Phone:        rec.Phone,
			ExpectedRate: rec.ExpectedRate,
		},
		ApplicationInfo: ApplicationInfo{
			Status:      rec.Status,
			StatusHuman: rec.Status.ToHuman(),
		},
		InterviewAt:      rec.InterviewAt,
		DecisionApproved: rec.DecisionApproved,
		DecisionFeedback: rec.DecisionFeedback,
		ID:               rec.ID,
		CreationDate:     rec.CreatedAt,
	}
	if rec.Job != nil {
		result.JobTitle = rec.Job.Title
	}
	if rec.Organization != nil {
		result.OrganizationName = rec.Organization.Name
	}
	if rec.Author != nil {
		result.AuthorName = rec.Author.GetFullName()
	}
	return result
}

type ApplicationNote struct {
	Note string `json:"note"` // текст комментария
}

func (n ApplicationNote) Validate() error {
	if strings.TrimSpace(n.Note) == "" {
		return errors.New("не указан текст комментария")
	}
	return nil
}

type TimelineView struct {
	ID          string                    `json:"id"`
	Date        time.Time                 `json:"date"`
	UserName    string                    `json:"user_name"`
	ActionType  dbmodels.ActionType       `json:"action_type"`
	Description string                    `json:"description"`
	Data        []dbmodels.TimelineChange `json:"data,omitempty"`
}

type TimelineFilter struct {
	apimodels.Pagination
	CommentsOnly bool `json:"comments_only"`
}

func TimelineConvert(rec dbmodels.TimelineEvent) TimelineView {
	return TimelineView{
		ID:          rec.ID,
		Date:        rec.CreatedAt,
		UserName:    rec.UserName,
		ActionType:  rec.ActionType,
		Description: rec.Changes.Description,
		Data:        rec.Changes.Data,
	}
}
