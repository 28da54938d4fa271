package orghandler

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"solventek-backend/db"
	"solventek-backend/lib/lifecycle"
	notificationhandler "solventek-backend/lib/notification"
	notifyhandler "solventek-backend/lib/notify"
	orgstore "solventek-backend/lib/organization/store"
	timelinehandler "solventek-backend/lib/timeline"
	userstore "solventek-backend/lib/users/store"
	authutils "solventek-backend/lib/utils/auth-utils"
	"solventek-backend/models"
	orgapimodels "solventek-backend/models/api/org"
	dbmodels "solventek-backend/models/db"
)

type Provider interface {
	Register(data orgapimodels.RegisterRequest) (id string, hMsg string, err error)
	GetByID(actor models.Actor, id string) (item orgapimodels.OrgView, err error)
	List(actor models.Actor, filter orgapimodels.OrgFilter) (list []orgapimodels.OrgView, rowCount int64, err error)
	Approve(actor models.Actor, id string) (hMsg string, err error)
	Reject(actor models.Actor, id string, data orgapimodels.RejectRequest) (hMsg string, err error)
	UpdateStatus(actor models.Actor, id string, data orgapimodels.StatusUpdateRequest) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        orgstore.NewInstance(db.DB),
		userStore:    userstore.NewInstance(db.DB),
		timeline:     timelinehandler.Instance,
		notification: notificationhandler.Instance,
		notify:       notifyhandler.Instance,
	}
}

type impl struct {
	store        orgstore.Provider
	userStore    userstore.Provider
	timeline     timelinehandler.Provider
	notification notificationhandler.Provider
	notify       notifyhandler.Provider
}

func (i impl) getLogger(id string) *log.Entry {
	logger := log.WithField("entity", "organization")
	if id != "" {
		logger = logger.WithField("rec_id", id)
	}
	return logger
}

func (i impl) Register(data orgapimodels.RegisterRequest) (id string, hMsg string, err error) {
	logger := i.getLogger("")
	exist, err := i.store.FindByName(data.Name)
	if err != nil {
		return "", "", err
	}
	if exist != nil {
		return "", "организация с таким названием уже зарегистрирована", nil
	}

	recID, err := i.store.Create(dbmodels.Organization{
		Name:         data.Name,
		OrgType:      models.OrgTypeVendor,
		Status:       models.OrganizationStatusPendingVerification,
		ContactName:  data.ContactName,
		ContactEmail: data.ContactEmail,
		ContactPhone: data.ContactPhone,
		Description:  data.Description,
	})
	if err != nil {
		return "", "", err
	}
	_, err = i.userStore.Create(dbmodels.User{
		OrganizationID: recID,
		Role:           models.UserRoleVendor,
		Email:          data.UserEmail,
		Password:       authutils.GetMD5Hash(data.UserPassword),
		FirstName:      data.UserFirstName,
		LastName:       data.UserLastName,
		IsActive:       true,
	})
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка создания пользователя организации")
	}

	// заявка уходит в очередь на проверку админам
	admins := i.adminIds()
	i.timeline.Save(models.NotificationCategoryOrganization, recID, "",
		dbmodels.HistoryTypeAdded,
		dbmodels.TimelineChanges{Description: fmt.Sprintf("Зарегистрирована организация '%v'", data.Name)},
		admins)
	i.notify.NotifyUsers(admins,
		"Новая организация",
		fmt.Sprintf("Организация '%v' ожидает проверки", data.Name))
	logger.
		WithField("rec_id", recID).
		Info("зарегистрирована организация")
	return recID, "", nil
}

func (i impl) GetByID(actor models.Actor, id string) (orgapimodels.OrgView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return orgapimodels.OrgView{}, err
	}
	if rec == nil {
		return orgapimodels.OrgView{}, errors.New("организация не найдена")
	}
	item := orgapimodels.OrgConvert(*rec)
	item.AvailableTransitions = lifecycle.TransitionNames(
		lifecycle.Organization.AvailableTransitions(actor, orgSubject(*rec)))
	i.notification.MarkEntityRead(actor.UserID, models.NotificationCategoryOrganization, id)
	return item, nil
}

func (i impl) List(actor models.Actor, filter orgapimodels.OrgFilter) (list []orgapimodels.OrgView, rowCount int64, err error) {
	storeFilter := filter.ToStoreFilter()
	rowCount, err = i.store.ListCount(storeFilter)
	if err != nil {
		return nil, 0, err
	}

	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []orgapimodels.OrgView{}, rowCount, nil
	}

	recList, err := i.store.List(storeFilter, page, limit)
	if err != nil {
		return nil, 0, err
	}

	overlay := i.notification.GetOverlay(actor.UserID, models.NotificationCategoryOrganization)
	recList = notificationhandler.Prioritize(recList, overlay,
		func(rec dbmodels.Organization) string { return rec.ID }, nil)

	result := make([]orgapimodels.OrgView, 0, len(recList))
	for _, rec := range recList {
		item := orgapimodels.OrgConvert(rec)
		item.Unread = overlay.IsUnread(rec.ID)
		item.AvailableTransitions = lifecycle.TransitionNames(
			lifecycle.Organization.AvailableTransitions(actor, orgSubject(rec)))
		result = append(result, item)
	}
	return result, rowCount, nil
}

func (i impl) Approve(actor models.Actor, id string) (hMsg string, err error) {
	return i.applyTransition(actor, id, lifecycle.OrgTransitionApprove, nil)
}

func (i impl) Reject(actor models.Actor, id string, data orgapimodels.RejectRequest) (hMsg string, err error) {
	updMap := map[string]interface{}{
		"RejectReason": data.Reason,
	}
	return i.applyTransition(actor, id, lifecycle.OrgTransitionReject, updMap)
}

func (i impl) UpdateStatus(actor models.Actor, id string, data orgapimodels.StatusUpdateRequest) (hMsg string, err error) {
	var transition lifecycle.TransitionName
	switch data.Status {
	case models.OrganizationStatusActive:
		transition = lifecycle.OrgTransitionActivate
	case models.OrganizationStatusInactive:
		transition = lifecycle.OrgTransitionDeactivate
	default:
		return "статус недоступен для смены напрямую", nil
	}
	return i.applyTransition(actor, id, transition, nil)
}

func (i impl) applyTransition(actor models.Actor, id string, transition lifecycle.TransitionName, extraUpd map[string]interface{}) (hMsg string, err error) {
	logger := i.getLogger(id).
		WithField("user_id", actor.UserID).
		WithField("transition", transition)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "организация не найдена", nil
	}
	if !lifecycle.Organization.CanTransition(actor, orgSubject(*rec), transition) {
		return "переход недоступен", nil
	}
	newStatus, ok := lifecycle.Organization.Apply(rec.Status, transition)
	if !ok {
		return "переход недоступен", nil
	}

	updMap := map[string]interface{}{
		"Status": newStatus,
	}
	for key, value := range extraUpd {
		updMap[key] = value
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", errors.Wrap(err, "ошибка смены статуса организации")
	}

	recipients := i.recipients(*rec, actor)
	i.timeline.Save(models.NotificationCategoryOrganization, id, actor.UserID,
		dbmodels.HistoryTypeStatusChange,
		dbmodels.TimelineChanges{
			Description: fmt.Sprintf("Статус изменен: %v → %v", rec.Status.ToHuman(), newStatus.ToHuman()),
			Data: []dbmodels.TimelineChange{
				{Field: "status", OldValue: rec.Status, NewValue: newStatus},
			},
		},
		recipients)
	i.notify.NotifyUsers(recipients,
		"Смена статуса организации",
		fmt.Sprintf("Организация '%v' переведена в статус '%v'", rec.Name, newStatus.ToHuman()))
	// контактное лицо уведомляем напрямую, у него может не быть учетки
	i.notify.NotifyEmail(rec.ContactEmail,
		"Смена статуса организации",
		fmt.Sprintf("Ваша организация '%v' переведена в статус '%v'", rec.Name, newStatus.ToHuman()))
	logger.
		WithField("old_status", rec.Status).
		WithField("new_status", newStatus).
		Info("изменен статус организации")
	return "", nil
}

func (i impl) recipients(rec dbmodels.Organization, actor models.Actor) []string {
	logger := i.getLogger(rec.ID)
	seen := map[string]struct{}{}
	result := make([]string, 0, 10)
	add := func(userID string) {
		if userID == "" || userID == actor.UserID {
			return
		}
		if _, exist := seen[userID]; exist {
			return
		}
		seen[userID] = struct{}{}
		result = append(result, userID)
	}
	orgUsers, err := i.userStore.ListByOrganization(rec.ID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения пользователей организации")
	}
	for _, user := range orgUsers {
		add(user.ID)
	}
	for _, userID := range i.adminIds() {
		add(userID)
	}
	return result
}

func (i impl) adminIds() []string {
	admins, err := i.userStore.ListByRoles([]models.UserRole{models.UserRoleSuperAdmin, models.UserRoleHRAdmin})
	if err != nil {
		i.getLogger("").WithError(err).Error("ошибка получения администраторов")
		return nil
	}
	result := make([]string, 0, len(admins))
	for _, user := range admins {
		result = append(result, user.ID)
	}
	return result
}

func orgSubject(rec dbmodels.Organization) lifecycle.Subject[models.OrganizationStatus] {
	return lifecycle.Subject[models.OrganizationStatus]{
		ID:      rec.ID,
		State:   rec.Status,
		OrgName: rec.Name,
	}
}
