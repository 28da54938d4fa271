package dbmodels

import (
	"time"

	"solventek-backend/models"
)

type Application struct {
	BaseModel
	JobID string `gorm:"type:varchar(36);index"`
	Job   *Job
	// организация, подавшая кандидата (вендор), пустая для прямых кандидатов
	OrganizationID *string `gorm:"type:varchar(36);index"`
	Organization   *Organization
	AuthorID       string
	Author         *User `gorm:"foreignKey:AuthorID"`
	FirstName      string `gorm:"type:varchar(255)"`
	LastName       string `gorm:"type:varchar(255)"`
	Email          string `gorm:"type:varchar(255)"`
	Phone          string `gorm:"type:varchar(255)"`
	ExpectedRate   int
	ResumeFileID   string `gorm:"type:varchar(255)"`
	Status         models.ApplicationStatus
	InterviewAt    *time.Time
	// решение заказчика, метаданные к смене статуса
	DecisionApproved *bool
	DecisionFeedback string
	RejectReason     string
}

func (a Application) GetFullName() string {
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}

// GetOrgName — имя подавшей организации
func (a Application) GetOrgName() string {
	if a.Organization == nil {
		return ""
	}
	return a.Organization.Name
}

type ApplicationSort struct {
	CreatedAtDesc bool `json:"created_at_desc"`
}

type ApplicationFilter struct {
	Search         string                     `json:"search"`
	JobID          string                     `json:"job_id"`
	Statuses       []models.ApplicationStatus `json:"statuses"`
	OrganizationID string                     `json:"organization_id"`
	Sort           ApplicationSort            `json:"sort"`
}

type ApplicationDoc struct {
	BaseModel
	ApplicationID string `gorm:"type:varchar(36);index"`
	FileName      string `gorm:"type:varchar(255)"`
	FileID        string `gorm:"type:varchar(255)"`
}
