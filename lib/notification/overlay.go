package notificationhandler

import (
	"sort"

	"solventek-backend/models"
)

// Overlay — снимок непрочитанных ид по одной категории. Значение живет в
// рамках одного запроса/вью, всегда полный рефреш без инкрементального кеша.
type Overlay struct {
	Category models.NotificationCategory
	unread   map[string]struct{}
}

func NewOverlay(category models.NotificationCategory, ids []string) Overlay {
	unread := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		unread[id] = struct{}{}
	}
	return Overlay{Category: category, unread: unread}
}

func (o Overlay) IsUnread(id string) bool {
	_, exist := o.unread[id]
	return exist
}

func (o Overlay) Len() int {
	return len(o.unread)
}

// Prioritize — стабильное разбиение: непрочитанные впереди, внутри групп
// сохраняется исходный порядок. Это не сортировка компаратором: фоновое
// обновление набора непрочитанных не перетасовывает список под пользователем.
// Необязательный less задает явный вторичный порядок внутри каждой группы.
func Prioritize[T any](list []T, overlay Overlay, id func(T) string, less func(a, b T) bool) []T {
	unreadPart := make([]T, 0, len(list))
	readPart := make([]T, 0, len(list))
	for _, item := range list {
		if overlay.IsUnread(id(item)) {
			unreadPart = append(unreadPart, item)
		} else {
			readPart = append(readPart, item)
		}
	}
	if less != nil {
		sort.SliceStable(unreadPart, func(i, j int) bool { return less(unreadPart[i], unreadPart[j]) })
		sort.SliceStable(readPart, func(i, j int) bool { return less(readPart[i], readPart[j]) })
	}
	return append(unreadPart, readPart...)
}
