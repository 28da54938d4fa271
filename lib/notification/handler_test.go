package notificationhandler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"solventek-backend/models"
	dbmodels "solventek-backend/models/db"
)

type fakeStore struct {
	ids []string
	err error
}

func (s fakeStore) Create(dbmodels.NotificationRecord) error { return nil }

func (s fakeStore) UnreadIds(string, models.NotificationCategory) ([]string, error) {
	return s.ids, s.err
}

func (s fakeStore) Delete(string, models.NotificationCategory, []string) error { return nil }

func (s fakeStore) DeleteAll(string, models.NotificationCategory) error { return nil }

func TestGetOverlay(t *testing.T) {
	t.Run(`снимок из стора`, func(t *testing.T) {
		h := impl{store: fakeStore{ids: []string{"a", "b"}}}
		overlay := h.GetOverlay("u1", models.NotificationCategoryJob)
		require.True(t, overlay.IsUnread("a"))
		require.Equal(t, 2, overlay.Len())
	})

	t.Run(`ошибка стора деградирует до пустого набора`, func(t *testing.T) {
		h := impl{store: fakeStore{err: errors.New("база недоступна")}}
		overlay := h.GetOverlay("u1", models.NotificationCategoryJob)
		require.Equal(t, 0, overlay.Len())
		require.False(t, overlay.IsUnread("a"))

		// деградированный оверлей не меняет порядок списка
		list := []listItem{{ID: "b"}, {ID: "a"}}
		got := Prioritize(list, overlay, itemID, nil)
		require.Equal(t, list, got)
	})
}

func TestGetUnreadIds(t *testing.T) {
	t.Run(`nil от стора отдается пустым срезом`, func(t *testing.T) {
		h := impl{store: fakeStore{}}
		ids := h.GetUnreadIds("u1", models.NotificationCategoryJob)
		require.NotNil(t, ids)
		require.Empty(t, ids)
	})

	t.Run(`ошибка стора деградирует до пустого среза`, func(t *testing.T) {
		h := impl{store: fakeStore{err: errors.New("база недоступна")}}
		ids := h.GetUnreadIds("u1", models.NotificationCategoryJob)
		require.NotNil(t, ids)
		require.Empty(t, ids)
	})
}
