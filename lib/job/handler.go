package jobhandler

import (
	"bytes"
	"fmt"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"solventek-backend/db"
	xlsexport "solventek-backend/lib/export/xls"
	jobstore "solventek-backend/lib/job/store"
	"solventek-backend/lib/lifecycle"
	notificationhandler "solventek-backend/lib/notification"
	notifyhandler "solventek-backend/lib/notify"
	orgstore "solventek-backend/lib/organization/store"
	timelinehandler "solventek-backend/lib/timeline"
	userstore "solventek-backend/lib/users/store"
	"solventek-backend/models"
	jobapimodels "solventek-backend/models/api/job"
	dbmodels "solventek-backend/models/db"
)

type Provider interface {
	Create(actor models.Actor, data jobapimodels.JobData) (id string, err error)
	GetByID(actor models.Actor, id string) (item jobapimodels.JobView, err error)
	Update(actor models.Actor, id string, data jobapimodels.JobData) error
	Delete(actor models.Actor, id string) (hMsg string, err error)
	List(actor models.Actor, filter jobapimodels.JobFilter) (list []jobapimodels.JobView, rowCount int64, err error)
	AvailableTransitions(actor models.Actor, id string) (list []string, err error)
	ApplyTransition(actor models.Actor, id string, name string, data jobapimodels.TransitionData) (hMsg string, err error)
	Export(actor models.Actor, filter jobapimodels.JobFilter) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        jobstore.NewInstance(db.DB),
		orgStore:     orgstore.NewInstance(db.DB),
		userStore:    userstore.NewInstance(db.DB),
		timeline:     timelinehandler.Instance,
		notification: notificationhandler.Instance,
		notify:       notifyhandler.Instance,
		export:       xlsexport.Instance,
	}
}

type impl struct {
	store        jobstore.Provider
	orgStore     orgstore.Provider
	userStore    userstore.Provider
	timeline     timelinehandler.Provider
	notification notificationhandler.Provider
	notify       notifyhandler.Provider
	export       xlsexport.Provider
}

func (i impl) getLogger(id, userID string) *log.Entry {
	logger := log.WithField("entity", "job")
	if id != "" {
		logger = logger.WithField("rec_id", id)
	}
	if userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	return logger
}

func (i impl) Create(actor models.Actor, data jobapimodels.JobData) (id string, err error) {
	logger := i.getLogger("", actor.UserID)
	rec := dbmodels.Job{
		AuthorID:        actor.UserID,
		Title:           data.Title,
		Description:     data.Description,
		Location:        data.Location,
		OpenedPositions: data.OpenedPositions,
		Status:          models.JobStatusDraft,
	}
	orgID := data.OrganizationID
	if orgID == "" && actor.OrgType == models.OrgTypeVendor {
		// вендор создает позиции только в своей организации
		org, err := i.orgStore.FindByName(actor.OrgName)
		if err != nil {
			return "", err
		}
		if org == nil {
			return "", errors.New("организация не найдена")
		}
		orgID = org.ID
	}
	if orgID != "" {
		org, err := i.orgStore.GetByID(orgID)
		if err != nil {
			return "", err
		}
		if org == nil {
			return "", errors.New("организация не найдена")
		}
		rec.OrganizationID = &orgID
	}
	recID, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	i.timeline.Save(models.NotificationCategoryJob, recID, actor.UserID,
		dbmodels.HistoryTypeAdded,
		dbmodels.TimelineChanges{Description: fmt.Sprintf("Создана позиция '%v'", data.Title)},
		i.recipients(rec, actor))
	logger.
		WithField("rec_id", recID).
		Info("Создана позиция")
	return recID, nil
}

func (i impl) GetByID(actor models.Actor, id string) (jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	if rec == nil {
		return jobapimodels.JobView{}, errors.New("позиция не найдена")
	}
	item := jobapimodels.JobConvert(*rec)
	item.AvailableTransitions = lifecycle.TransitionNames(
		lifecycle.Job.AvailableTransitions(actor, jobSubject(*rec)))
	// открытие карточки гасит отметку о непрочитанном
	i.notification.MarkEntityRead(actor.UserID, models.NotificationCategoryJob, id)
	return item, nil
}

func (i impl) Update(actor models.Actor, id string, data jobapimodels.JobData) error {
	logger := i.getLogger(id, actor.UserID)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("позиция не найдена")
	}
	updMap := map[string]interface{}{
		"Title":           data.Title,
		"Description":     data.Description,
		"Location":        data.Location,
		"OpenedPositions": data.OpenedPositions,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return errors.Wrap(err, "ошибка обновления позиции")
	}
	i.timeline.Save(models.NotificationCategoryJob, id, actor.UserID,
		dbmodels.HistoryTypeUpdate,
		dbmodels.TimelineChanges{Description: "Позиция обновлена"},
		i.recipients(*rec, actor))
	logger.Info("обновлена позиция")
	return nil
}

func (i impl) Delete(actor models.Actor, id string) (hMsg string, err error) {
	logger := i.getLogger(id, actor.UserID)
	rec, err := i.store.GetByID(id)
	if err != nil || rec == nil {
		return "", err
	}
	// удалить можно только черновик, остальное закрывается через воркфлоу
	if rec.Status != models.JobStatusDraft {
		return "удалить можно только черновик позиции", nil
	}
	err = i.store.Delete(id)
	if err != nil {
		return "", err
	}
	logger.Info("удалена позиция")
	return "", nil
}

func (i impl) List(actor models.Actor, filter jobapimodels.JobFilter) (list []jobapimodels.JobView, rowCount int64, err error) {
	storeFilter := filter.ToStoreFilter()
	if actor.OrgType == models.OrgTypeVendor {
		// вендор видит только позиции своей организации
		org, err := i.orgStore.FindByName(actor.OrgName)
		if err != nil {
			return nil, 0, err
		}
		if org == nil {
			return nil, 0, errors.New("организация не найдена")
		}
		storeFilter.OrganizationID = org.ID
	}

	rowCount, err = i.store.ListCount(storeFilter)
	if err != nil {
		return nil, 0, err
	}

	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []jobapimodels.JobView{}, rowCount, nil
	}

	recList, err := i.store.List(storeFilter, page, limit)
	if err != nil {
		return nil, 0, err
	}

	// оверлей непрочитанного: деградирует до пустого набора, список не блокирует
	overlay := i.notification.GetOverlay(actor.UserID, models.NotificationCategoryJob)
	recList = notificationhandler.Prioritize(recList, overlay,
		func(rec dbmodels.Job) string { return rec.ID }, nil)

	result := make([]jobapimodels.JobView, 0, len(recList))
	for _, rec := range recList {
		item := jobapimodels.JobConvert(rec)
		item.Unread = overlay.IsUnread(rec.ID)
		item.AvailableTransitions = lifecycle.TransitionNames(
			lifecycle.Job.AvailableTransitions(actor, jobSubject(rec)))
		result = append(result, item)
	}
	return result, rowCount, nil
}

func (i impl) AvailableTransitions(actor models.Actor, id string) ([]string, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("позиция не найдена")
	}
	return lifecycle.TransitionNames(
		lifecycle.Job.AvailableTransitions(actor, jobSubject(*rec))), nil
}

func (i impl) ApplyTransition(actor models.Actor, id string, name string, data jobapimodels.TransitionData) (hMsg string, err error) {
	logger := i.getLogger(id, actor.UserID).
		WithField("transition", name)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", errors.New("позиция не найдена")
	}
	transition := lifecycle.TransitionName(name)
	subj := jobSubject(*rec)
	// гард проверяется повторно на мутации, вью могло устареть
	if !lifecycle.Job.CanTransition(actor, subj, transition) {
		return "переход недоступен", nil
	}
	newStatus, ok := lifecycle.Job.Apply(rec.Status, transition)
	if !ok {
		return "переход недоступен", nil
	}

	updMap := map[string]interface{}{
		"Status": newStatus,
	}
	switch transition {
	case lifecycle.JobTransitionEnrich:
		if data.Enrich == nil {
			return "не заполнены данные обогащения", nil
		}
		updMap["Skills"] = pq.StringArray(data.Enrich.Skills)
		updMap["Experience"] = data.Enrich.Experience
		updMap["Requirements"] = data.Enrich.Requirements
		updMap["RolesAndResponsibilities"] = data.Enrich.RolesAndResponsibilities
	case lifecycle.JobTransitionFinalVerify:
		if data.FinalVerify == nil {
			return "не заполнены ставки", nil
		}
		updMap["bill_rate"] = data.FinalVerify.BillRate
		updMap["pay_rate"] = data.FinalVerify.PayRate
	}

	err = i.store.Update(id, updMap)
	if err != nil {
		return "", errors.Wrap(err, "ошибка смены статуса позиции")
	}

	recipients := i.recipients(*rec, actor)
	i.timeline.Save(models.NotificationCategoryJob, id, actor.UserID,
		dbmodels.HistoryTypeStatusChange,
		dbmodels.TimelineChanges{
			Description: fmt.Sprintf("Статус изменен: %v → %v", rec.Status.ToHuman(), newStatus.ToHuman()),
			Data: []dbmodels.TimelineChange{
				{Field: "status", OldValue: rec.Status, NewValue: newStatus},
			},
		},
		recipients)
	i.notify.NotifyUsers(recipients,
		"Смена статуса позиции",
		fmt.Sprintf("Позиция '%v' переведена в статус '%v'", rec.Title, newStatus.ToHuman()))
	logger.
		WithField("old_status", rec.Status).
		WithField("new_status", newStatus).
		Info("изменен статус позиции")
	return "", nil
}

func (i impl) Export(actor models.Actor, filter jobapimodels.JobFilter) (*bytes.Buffer, error) {
	storeFilter := filter.ToStoreFilter()
	if actor.OrgType == models.OrgTypeVendor {
		org, err := i.orgStore.FindByName(actor.OrgName)
		if err != nil {
			return nil, err
		}
		if org == nil {
			return nil, errors.New("организация не найдена")
		}
		storeFilter.OrganizationID = org.ID
	}
	list, err := i.store.ListAll(storeFilter)
	if err != nil {
		return nil, err
	}
	return i.export.ExportJobList(list)
}

// recipients — получатели отметок и писем по событию: автор позиции,
// пользователи владеющей организации и внутренние админские роли
func (i impl) recipients(rec dbmodels.Job, actor models.Actor) []string {
	logger := i.getLogger(rec.ID, actor.UserID)
	seen := map[string]struct{}{}
	result := make([]string, 0, 10)
	add := func(userID string) {
		if userID == "" {
			return
		}
		if _, exist := seen[userID]; exist {
			return
		}
		seen[userID] = struct{}{}
		result = append(result, userID)
	}
	add(rec.AuthorID)
	if rec.OrganizationID != nil {
		orgUsers, err := i.userStore.ListByOrganization(*rec.OrganizationID)
		if err != nil {
			logger.WithError(err).Error("ошибка получения пользователей организации")
		}
		for _, user := range orgUsers {
			add(user.ID)
		}
	}
	admins, err := i.userStore.ListByRoles([]models.UserRole{models.UserRoleSuperAdmin, models.UserRoleHRAdmin, models.UserRoleTA})
	if err != nil {
		logger.WithError(err).Error("ошибка получения внутренних пользователей")
	}
	for _, user := range admins {
		add(user.ID)
	}
	return result
}

func jobSubject(rec dbmodels.Job) lifecycle.Subject[models.JobStatus] {
	return lifecycle.Subject[models.JobStatus]{
		ID:      rec.ID,
		State:   rec.Status,
		OrgName: rec.GetOrgName(),
	}
}
