package dbmodels

import (
	"solventek-backend/models"
)

type Organization struct {
	BaseModel
	Name         string         `gorm:"type:varchar(255);uniqueIndex"`
	OrgType      models.OrgType `gorm:"type:varchar(100)"`
	Status       models.OrganizationStatus
	ContactName  string `gorm:"type:varchar(255)"`
	ContactEmail string `gorm:"type:varchar(255)"`
	ContactPhone string `gorm:"type:varchar(255)"`
	Description  string
	RejectReason string
}

type OrganizationSort struct {
	CreatedAtDesc bool `json:"created_at_desc"` // порядок сортировки false = ASC/ true = DESC
}

type OrganizationFilter struct {
	Search   string                      `json:"search"`
	Statuses []models.OrganizationStatus `json:"statuses"`
	OrgType  models.OrgType              `json:"org_type"`
	Sort     OrganizationSort            `json:"sort"`
}
