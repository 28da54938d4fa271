package dbmodels

import (
	"strings"

	"github.com/lib/pq"
	"solventek-backend/models"
)

type User struct {
	BaseModel
	OrganizationID string `gorm:"type:varchar(36);index"`
	Organization   *Organization
	Role           models.UserRole `gorm:"type:varchar(100)"`
	FirstName      string          `gorm:"type:varchar(255)"`
	LastName       string          `gorm:"type:varchar(255)"`
	Email          string          `gorm:"type:varchar(255);uniqueIndex"`
	PhoneNumber    string          `gorm:"type:varchar(255)"`
	Password       string          `gorm:"type:varchar(255)"`
	IsActive       bool
	// выданные права воркфлоу, по умолчанию набор роли
	Permissions pq.StringArray `gorm:"type:text[]"`
}

func (u User) GetFullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u User) GetPermissions() []models.Permission {
	result := make([]models.Permission, 0, len(u.Permissions))
	for _, p := range u.Permissions {
		result = append(result, models.Permission(p))
	}
	return result
}
