package applicationhandler

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"solventek-backend/db"
	applicationstore "solventek-backend/lib/application/store"
	xlsexport "solventek-backend/lib/export/xls"
	filestorage "solventek-backend/lib/file-storage"
	jobstore "solventek-backend/lib/job/store"
	"solventek-backend/lib/lifecycle"
	notificationhandler "solventek-backend/lib/notification"
	notifyhandler "solventek-backend/lib/notify"
	orgstore "solventek-backend/lib/organization/store"
	timelinehandler "solventek-backend/lib/timeline"
	userstore "solventek-backend/lib/users/store"
	"solventek-backend/models"
	applicationapimodels "solventek-backend/models/api/application"
	dbmodels "solventek-backend/models/db"
)

type Provider interface {
	Create(actor models.Actor, data applicationapimodels.ApplicationData) (id string, hMsg string, err error)
	GetByID(actor models.Actor, id string) (item applicationapimodels.ApplicationView, err error)
	List(actor models.Actor, filter applicationapimodels.ApplicationFilter) (list []applicationapimodels.ApplicationView, rowCount int64, err error)
	UpdateStatus(actor models.Actor, id string, data applicationapimodels.StatusUpdateRequest) (hMsg string, err error)
	MakeDecision(actor models.Actor, id string, data applicationapimodels.DecisionRequest) (hMsg string, err error)
	AddNote(actor models.Actor, id string, note string) error
	Timeline(actor models.Actor, id string, filter applicationapimodels.TimelineFilter) (list []applicationapimodels.TimelineView, rowCount int64, err error)
	UploadDoc(ctx context.Context, actor models.Actor, id string, file []byte, fileName string) error
	GetDoc(ctx context.Context, actor models.Actor, id, fileID string) ([]byte, error)
	Export(actor models.Actor, filter applicationapimodels.ApplicationFilter) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        applicationstore.NewInstance(db.DB),
		jobStore:     jobstore.NewInstance(db.DB),
		orgStore:     orgstore.NewInstance(db.DB),
		userStore:    userstore.NewInstance(db.DB),
		timeline:     timelinehandler.Instance,
		notification: notificationhandler.Instance,
		notify:       notifyhandler.Instance,
		files:        filestorage.Instance,
		export:       xlsexport.Instance,
	}
}

type impl struct {
	store        applicationstore.Provider
	jobStore     jobstore.Provider
	orgStore     orgstore.Provider
	userStore    userstore.Provider
	timeline     timelinehandler.Provider
	notification notificationhandler.Provider
	notify       notifyhandler.Provider
	files        filestorage.Provider
	export       xlsexport.Provider
}

func (i impl) getLogger(id, userID string) *log.Entry {
	logger := log.WithField("entity", "application")
	if id != "" {
		logger = logger.WithField("rec_id", id)
	}
	if userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	return logger
}

func (i impl) Create(actor models.Actor, data applicationapimodels.ApplicationData) (id string, hMsg string, err error) {
	logger := i.getLogger("", actor.UserID)
	job, err := i.jobStore.GetByID(data.JobID)
	if err != nil {
		return "", "", err
	}
	if job == nil {
		return "", "позиция не найдена", nil
	}
	// кандидатов принимаем только на опубликованные позиции
	if job.Status != models.JobStatusPublished {
		return "", "позиция не опубликована", nil
	}

	rec := dbmodels.Application{
		JobID:        data.JobID,
		AuthorID:     actor.UserID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		Phone:        data.Phone,
		ExpectedRate: data.ExpectedRate,
		Status:       models.ApplicationStatusApplied,
	}
	if actor.OrgType == models.OrgTypeVendor {
		org, err := i.orgStore.FindByName(actor.OrgName)
		if err != nil {
			return "", "", err
		}
		if org == nil {
			return "", "", errors.New("организация не найдена")
		}
		rec.OrganizationID = &org.ID
	}

	recID, err := i.store.Create(rec)
	if err != nil {
		return "", "", err
	}
	i.timeline.Save(models.NotificationCategoryApplication, recID, actor.UserID,
		dbmodels.HistoryTypeAdded,
		dbmodels.TimelineChanges{Description: fmt.Sprintf("Кандидат '%v' подан на позицию '%v'", rec.GetFullName(), job.Title)},
		i.recipients(rec, actor))
	logger.
		WithField("rec_id", recID).
		WithField("job_id", data.JobID).
		Info("создан кандидат")
	return recID, "", nil
}

func (i impl) GetByID(actor models.Actor, id string) (applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if rec == nil {
		return applicationapimodels.ApplicationView{}, errors.New("кандидат не найден")
	}
	if !i.canSee(actor, *rec) {
		return applicationapimodels.ApplicationView{}, errors.New("кандидат не найден")
	}
	item := applicationapimodels.ApplicationConvert(*rec)
	docs, err := i.store.ListDocs(id)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	for _, doc := range docs {
		item.Docs = append(item.Docs, applicationapimodels.DocConvert(doc))
	}
	i.notification.MarkEntityRead(actor.UserID, models.NotificationCategoryApplication, id)
	return item, nil
}

func (i impl) List(actor models.Actor, filter applicationapimodels.ApplicationFilter) (list []applicationapimodels.ApplicationView, rowCount int64, err error) {
	storeFilter := filter.ToStoreFilter()
	if actor.OrgType == models.OrgTypeVendor {
		// вендор видит только своих кандидатов
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
		return []applicationapimodels.ApplicationView{}, rowCount, nil
	}

	recList, err := i.store.List(storeFilter, page, limit)
	if err != nil {
		return nil, 0, err
	}

	overlay := i.notification.GetOverlay(actor.UserID, models.NotificationCategoryApplication)
	recList = notificationhandler.Prioritize(recList, overlay,
		func(rec dbmodels.Application) string { return rec.ID }, nil)

	result := make([]applicationapimodels.ApplicationView, 0, len(recList))
	for _, rec := range recList {
		item := applicationapimodels.ApplicationConvert(rec)
		item.Unread = overlay.IsUnread(rec.ID)
		result = append(result, item)
	}
	return result, rowCount, nil
}

func (i impl) UpdateStatus(actor models.Actor, id string, data applicationapimodels.StatusUpdateRequest) (hMsg string, err error) {
	logger := i.getLogger(id, actor.UserID)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "кандидат не найден", nil
	}
	if !lifecycle.CanUpdateApplicationStatus(actor, applicationSubject(*rec), data.Status) {
		return "смена статуса недоступна", nil
	}

	updMap := map[string]interface{}{
		"Status": data.Status,
	}
	if data.Status == models.ApplicationStatusInterviewScheduled {
		updMap["InterviewAt"] = data.InterviewAt
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", errors.Wrap(err, "ошибка смены статуса кандидата")
	}

	changes := dbmodels.TimelineChanges{
		Description: fmt.Sprintf("Статус изменен: %v → %v", rec.Status.ToHuman(), data.Status.ToHuman()),
		Data: []dbmodels.TimelineChange{
			{Field: "status", OldValue: rec.Status, NewValue: data.Status},
		},
	}
	if data.Comment != "" {
		changes.Description = fmt.Sprintf("%v. %v", changes.Description, data.Comment)
	}
	recipients := i.recipients(*rec, actor)
	i.timeline.Save(models.NotificationCategoryApplication, id, actor.UserID,
		dbmodels.HistoryTypeStatusChange, changes, recipients)
	i.notify.NotifyUsers(recipients,
		"Смена статуса кандидата",
		fmt.Sprintf("Кандидат '%v' переведен в статус '%v'", rec.GetFullName(), data.Status.ToHuman()))
	logger.
		WithField("old_status", rec.Status).
		WithField("new_status", data.Status).
		Info("изменен статус кандидата")
	return "", nil
}

func (i impl) MakeDecision(actor models.Actor, id string, data applicationapimodels.DecisionRequest) (hMsg string, err error) {
	logger := i.getLogger(id, actor.UserID)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "кандидат не найден", nil
	}
	if !lifecycle.CanMakeDecision(actor, applicationSubject(*rec)) {
		return "решение по кандидату сейчас недоступно", nil
	}

	newStatus := lifecycle.DecisionStatus(data.Approved)
	updMap := map[string]interface{}{
		"Status":           newStatus,
		"DecisionApproved": data.Approved,
		"DecisionFeedback": data.Feedback,
	}
	if !data.Approved {
		updMap["RejectReason"] = data.Feedback
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения решения")
	}

	decisionHuman := "принято"
	if !data.Approved {
		decisionHuman = "отклонено"
	}
	recipients := i.recipients(*rec, actor)
	i.timeline.Save(models.NotificationCategoryApplication, id, actor.UserID,
		dbmodels.HistoryTypeDecision,
		dbmodels.TimelineChanges{
			Description: fmt.Sprintf("Решение по кандидату: %v. %v", decisionHuman, data.Feedback),
			Data: []dbmodels.TimelineChange{
				{Field: "status", OldValue: rec.Status, NewValue: newStatus},
			},
		},
		recipients)
	i.notify.NotifyUsers(recipients,
		"Решение по кандидату",
		fmt.Sprintf("По кандидату '%v' принято решение: %v", rec.GetFullName(), decisionHuman))
	logger.
		WithField("approved", data.Approved).
		Info("принято решение по кандидату")
	return "", nil
}

func (i impl) AddNote(actor models.Actor, id string, note string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("кандидат не найден")
	}
	return i.timeline.SaveNote(models.NotificationCategoryApplication, id, actor.UserID, note)
}

func (i impl) Timeline(actor models.Actor, id string, filter applicationapimodels.TimelineFilter) ([]applicationapimodels.TimelineView, int64, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, 0, err
	}
	if rec == nil {
		return nil, 0, errors.New("кандидат не найден")
	}
	if !i.canSee(actor, *rec) {
		return nil, 0, errors.New("кандидат не найден")
	}
	return i.timeline.List(models.NotificationCategoryApplication, id, filter)
}

func (i impl) UploadDoc(ctx context.Context, actor models.Actor, id string, file []byte, fileName string) error {
	logger := i.getLogger(id, actor.UserID)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("кандидат не найден")
	}
	fileID, err := i.files.UploadDoc(ctx, id, file, fileName)
	if err != nil {
		return errors.Wrap(err, "ошибка загрузки документа")
	}
	_, err = i.store.CreateDoc(dbmodels.ApplicationDoc{
		ApplicationID: id,
		FileName:      fileName,
		FileID:        fileID,
	})
	if err != nil {
		return err
	}
	i.timeline.Save(models.NotificationCategoryApplication, id, actor.UserID,
		dbmodels.HistoryTypeDoc,
		dbmodels.TimelineChanges{Description: fmt.Sprintf("Загружен документ '%v'", fileName)},
		i.recipients(*rec, actor))
	logger.
		WithField("file_name", fileName).
		Info("загружен документ кандидата")
	return nil
}

func (i impl) GetDoc(ctx context.Context, actor models.Actor, id, fileID string) ([]byte, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("кандидат не найден")
	}
	if !i.canSee(actor, *rec) {
		return nil, errors.New("кандидат не найден")
	}
	docs, err := i.store.ListDocs(id)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		if doc.FileID == fileID {
			return i.files.GetFile(ctx, fileID)
		}
	}
	// файл чужого кандидата недоступен даже по известному ид
	return nil, errors.New("документ не найден")
}

func (i impl) Export(actor models.Actor, filter applicationapimodels.ApplicationFilter) (*bytes.Buffer, error) {
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
	return i.export.ExportApplicationList(list)
}

// canSee — вендору видны только кандидаты его организации
func (i impl) canSee(actor models.Actor, rec dbmodels.Application) bool {
	if actor.OrgType != models.OrgTypeVendor {
		return true
	}
	return rec.GetOrgName() == actor.OrgName
}

func (i impl) recipients(rec dbmodels.Application, actor models.Actor) []string {
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

func applicationSubject(rec dbmodels.Application) lifecycle.Subject[models.ApplicationStatus] {
	return lifecycle.Subject[models.ApplicationStatus]{
		ID:      rec.ID,
		State:   rec.Status,
		OrgName: rec.GetOrgName(),
	}
}
