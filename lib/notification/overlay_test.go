package notificationhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"solventek-backend/models"
)

type listItem struct {
	ID        string
	CreatedAt time.Time
}

func itemID(it listItem) string { return it.ID }

func TestOverlay(t *testing.T) {
	t.Run(`IsUnread по снимку`, func(t *testing.T) {
		overlay := NewOverlay(models.NotificationCategoryJob, []string{"a", "b"})
		require.True(t, overlay.IsUnread("a"))
		require.False(t, overlay.IsUnread("c"))
		require.Equal(t, 2, overlay.Len())
	})

	t.Run(`пустой снимок ничего не считает непрочитанным`, func(t *testing.T) {
		overlay := NewOverlay(models.NotificationCategoryJob, nil)
		require.False(t, overlay.IsUnread("a"))
		require.Equal(t, 0, overlay.Len())
	})
}

func TestPrioritize(t *testing.T) {
	a := listItem{ID: "a"}
	b := listItem{ID: "b"}
	c := listItem{ID: "c"}
	d := listItem{ID: "d"}

	t.Run(`стабильное разбиение`, func(t *testing.T) {
		overlay := NewOverlay(models.NotificationCategoryJob, []string{"a", "c"})
		got := Prioritize([]listItem{a, b, c, d}, overlay, itemID, nil)
		require.Equal(t, []listItem{a, c, b, d}, got)
	})

	t.Run(`идемпотентность при одном наборе`, func(t *testing.T) {
		overlay := NewOverlay(models.NotificationCategoryJob, []string{"a", "c"})
		once := Prioritize([]listItem{a, b, c, d}, overlay, itemID, nil)
		twice := Prioritize(once, overlay, itemID, nil)
		require.Equal(t, once, twice)
	})

	t.Run(`пустой набор не меняет порядок`, func(t *testing.T) {
		overlay := NewOverlay(models.NotificationCategoryJob, nil)
		got := Prioritize([]listItem{b, a, d, c}, overlay, itemID, nil)
		require.Equal(t, []listItem{b, a, d, c}, got)
	})

	t.Run(`вторичный порядок внутри групп`, func(t *testing.T) {
		now := time.Now()
		older := listItem{ID: "old", CreatedAt: now.Add(-time.Hour)}
		newer := listItem{ID: "new", CreatedAt: now}
		unreadOld := listItem{ID: "uold", CreatedAt: now.Add(-2 * time.Hour)}
		unreadNew := listItem{ID: "unew", CreatedAt: now.Add(-time.Minute)}

		overlay := NewOverlay(models.NotificationCategoryJob, []string{"uold", "unew"})
		byCreatedDesc := func(x, y listItem) bool { return x.CreatedAt.After(y.CreatedAt) }

		got := Prioritize([]listItem{older, unreadOld, newer, unreadNew}, overlay, itemID, byCreatedDesc)
		require.Equal(t, []listItem{unreadNew, unreadOld, newer, older}, got)
	})

	t.Run(`исходный срез не модифицируется`, func(t *testing.T) {
		overlay := NewOverlay(models.NotificationCategoryJob, []string{"d"})
		input := []listItem{a, b, c, d}
		_ = Prioritize(input, overlay, itemID, nil)
		require.Equal(t, []listItem{a, b, c, d}, input)
	})
}
