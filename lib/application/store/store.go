package applicationstore

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "solventek-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (rec *dbmodels.Application, err error)
	Update(id string, updMap map[string]interface{}) error
	ListCount(filter dbmodels.ApplicationFilter) (count int64, err error)
	List(filter dbmodels.ApplicationFilter, page, limit int) (list []dbmodels.Application, err error)
	ListAll(filter dbmodels.ApplicationFilter) (list []dbmodels.Application, err error)
	CreateDoc(rec dbmodels.ApplicationDoc) (id string, err error)
	ListDocs(applicationID string) (list []dbmodels.ApplicationDoc, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Preload(clause.Associations).
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
		Model(&dbmodels.Application{}).
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

func (i impl) ListCount(filter dbmodels.ApplicationFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.Application{})
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("ошибка получения общего количества кандидатов")
		return 0, errors.New("ошибка получения общего количества кандидатов")
	}
	return rowCount, nil
}

func (i impl) List(filter dbmodels.ApplicationFilter, page, limit int) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	tx := i.db.
		Model(dbmodels.Application{})
	i.addFilter(tx, filter)
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
	err = tx.Preload(clause.Associations).Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListAll(filter dbmodels.ApplicationFilter) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	tx := i.db.
		Model(dbmodels.Application{})
	i.addFilter(tx, filter)
	err = tx.Preload(clause.Associations).Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) CreateDoc(rec dbmodels.ApplicationDoc) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListDocs(applicationID string) (list []dbmodels.ApplicationDoc, err error) {
	err = i.db.
		Model(dbmodels.ApplicationDoc{}).
		Where("application_id = ?", applicationID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.ApplicationFilter) {
	if filter.JobID != "" {
		tx = tx.Where("job_id = ?", filter.JobID)
	}
	if len(filter.Statuses) != 0 {
		tx = tx.Where("status in (?)", filter.Statuses)
	}
	if filter.OrganizationID != "" {
		tx = tx.Where("organization_id = ?", filter.OrganizationID)
	}
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(first_name) like ? or LOWER(last_name) like ? or LOWER(email) like ?", search, search, search)
	}
	if filter.Sort.CreatedAtDesc {
		tx.Order("created_at desc")
	} else {
		tx.Order("created_at")
	}
}
