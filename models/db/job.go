package dbmodels

import (
	"github.com/lib/pq"
	"solventek-backend/models"
)

type Job struct {
	BaseModel
	// владеющая организация, пустая для внутренних позиций
	OrganizationID  *string `gorm:"type:varchar(36);index:idx_job_org"`
	Organization    *Organization
	AuthorID        string
	Author          *User  `gorm:"foreignKey:AuthorID"`
	Title           string `gorm:"type:varchar(255)"`
	Description     string
	Location        string `gorm:"type:varchar(255)"`
	OpenedPositions int
	Rates
	// данные обогащения, заполняются рекрутером на шаге enrich
	Skills                   pq.StringArray `gorm:"type:text[]"`
	Experience               string         `gorm:"type:varchar(255)"`
	Requirements             string
	RolesAndResponsibilities string
	Status                   models.JobStatus
}

type Rates struct {
	BillRate int `gorm:"column:bill_rate"`
	PayRate  int `gorm:"column:pay_rate"`
}

// GetOrgName — имя владеющей организации для проверки org-affinity
func (j Job) GetOrgName() string {
	if j.Organization == nil {
		return ""
	}
	return j.Organization.Name
}

type JobSort struct {
	CreatedAtDesc bool `json:"created_at_desc"` // порядок сортировки false = ASC/ true = DESC
}

type JobFilter struct {
	Search         string             `json:"search"`
	Statuses       []models.JobStatus `json:"statuses"`
	OrganizationID string             `json:"organization_id"`
	AuthorID       string             `json:"author_id"`
	Sort           JobSort            `json:"sort"`
}
