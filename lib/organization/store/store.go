package orgstore

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	dbmodels "solventek-backend/models/db"
	"solventek-backend/models"
)

type Provider interface {
	Create(rec dbmodels.Organization) (id string, err error)
	GetByID(id string) (rec *dbmodels.Organization, err error)
	FindByName(name string) (rec *dbmodels.Organization, err error)
	Update(id string, updMap map[string]interface{}) error
	ListCount(filter dbmodels.OrganizationFilter) (count int64, err error)
	List(filter dbmodels.OrganizationFilter, page, limit int) (list []dbmodels.Organization, err error)
	FindSolventek() (rec *dbmodels.Organization, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Organization) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Organization, error) {
	rec := dbmodels.Organization{}
	err := i.db.
		Model(&dbmodels.Organization{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) FindByName(name string) (*dbmodels.Organization, error) {
	rec := dbmodels.Organization{}
	err := i.db.
		Model(&dbmodels.Organization{}).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Organization{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	err := tx.Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListCount(filter dbmodels.OrganizationFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.Organization{})
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("ошибка получения общего количества организаций")
		return 0, errors.New("ошибка получения общего количества организаций")
	}
	return rowCount, nil
}

func (i impl) List(filter dbmodels.OrganizationFilter, page, limit int) (list []dbmodels.Organization, err error) {
	list = []dbmodels.Organization{}
	tx := i.db.
		Model(dbmodels.Organization{})
	i.addFilter(tx, filter)
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) FindSolventek() (*dbmodels.Organization, error) {
	rec := dbmodels.Organization{}
	err := i.db.
		Model(&dbmodels.Organization{}).
		Where("org_type = ?", models.OrgTypeSolventek).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.OrganizationFilter) {
	if len(filter.Statuses) != 0 {
		tx = tx.Where("status in (?)", filter.Statuses)
	}
	if filter.OrgType != "" {
		tx = tx.Where("org_type = ?", filter.OrgType)
	}
	if filter.Search != "" {
		tx.Where("LOWER(name) like ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	if filter.Sort.CreatedAtDesc {
		tx.Order("created_at desc")
	} else {
		tx.Order("created_at")
	}
}
