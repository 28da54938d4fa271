package db

import (
	log "github.com/sirupsen/logrus"
	"solventek-backend/config"
	orgstore "solventek-backend/lib/organization/store"
	userstore "solventek-backend/lib/users/store"
	authutils "solventek-backend/lib/utils/auth-utils"
	"solventek-backend/models"
	dbmodels "solventek-backend/models/db"
)

func InitPreload() {
	orgID := addSolventekOrg()
	addSuperAdmin(orgID)
}

// addSolventekOrg — внутренняя организация, владеет внутренними пользователями
func addSolventekOrg() string {
	store := orgstore.NewInstance(DB)
	// поиск по типу: переименование организации в настройках не должно плодить дубли
	existedRec, err := store.FindSolventek()
	if err != nil {
		log.WithError(err).Error("ошибка добавления внутренней организации")
		return ""
	}
	if existedRec != nil {
		return existedRec.ID
	}
	id, err := store.Create(dbmodels.Organization{
		Name:    config.Conf.App.OrgName,
		OrgType: models.OrgTypeSolventek,
		Status:  models.OrganizationStatusActive,
	})
	if err != nil {
		log.WithError(err).Error("ошибка добавления внутренней организации")
		return ""
	}
	return id
}

func addSuperAdmin(orgID string) {
	if config.Conf.Admin.Email == "" || config.Conf.Admin.Password == "" {
		log.Warn("суперадмин не добавлен, отсутвует настройка ADMIN_EMAIL/ADMIN_PASSWORD")
		return
	}
	store := userstore.NewInstance(DB)
	existedRec, err := store.FindByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("ошибка добавления суперадмина")
		return
	}
	if existedRec != nil {
		return
	}
	rec := dbmodels.User{
		OrganizationID: orgID,
		IsActive:       true,
		Role:           models.UserRoleSuperAdmin,
		Password:       authutils.GetMD5Hash(config.Conf.Admin.Password),
		FirstName:      config.Conf.Admin.FirstName,
		LastName:       config.Conf.Admin.LastName,
		Email:          config.Conf.Admin.Email,
	}
	_, err = store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка добавления суперадмина")
	}
}
