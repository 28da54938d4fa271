package models

// NotificationCategory — категория сущности в ленте событий и оверлее непрочитанного
type NotificationCategory string

const (
	NotificationCategoryJob          NotificationCategory = "JOB"
	NotificationCategoryApplication  NotificationCategory = "APPLICATION"
	NotificationCategoryCandidate    NotificationCategory = "CANDIDATE"
	NotificationCategoryOrganization NotificationCategory = "ORGANIZATION"
	NotificationCategoryProject      NotificationCategory = "PROJECT"
)

// NotificationCategories — порядок стабильный, отдается фронту как есть
var NotificationCategories = []NotificationCategory{
	NotificationCategoryJob,
	NotificationCategoryApplication,
	NotificationCategoryCandidate,
	NotificationCategoryOrganization,
	NotificationCategoryProject,
}

var notificationCategories = map[NotificationCategory]struct{}{
	NotificationCategoryJob:          {},
	NotificationCategoryApplication:  {},
	NotificationCategoryCandidate:    {},
	NotificationCategoryOrganization: {},
	NotificationCategoryProject:      {},
}

func (c NotificationCategory) Validate() bool {
	_, exist := notificationCategories[c]
	return exist
}
