package notification_test

import (
	"context"
	"testing"

	"github.com/nuriddinovv/furniAsia/internal/notification"

	"github.com/stretchr/testify/assert"
)

const cardCode = "C-0001"

func TestNotificationService_RecordOrderPlaced(t *testing.T) {
	repo := notification.NewMemoryRepository()
	svc := notification.NewService(notification.Deps{Repo: repo})
	ctx := context.Background()

	t.Run("recorded_entries_appear_newest_first", func(t *testing.T) {
		assert.NoError(t, svc.RecordOrderPlaced(ctx, cardCode, 1001, 3100))
		assert.NoError(t, svc.RecordOrderPlaced(ctx, cardCode, 1002, 500))

		res, err := svc.List(ctx, cardCode)
		assert.NoError(t, err)
		assert.Len(t, res.Notifications, 2)
		assert.Equal(t, 2, res.UnreadCount)
		assert.Contains(t, res.Notifications[0].Body, "#1002")
		assert.NotEmpty(t, res.Notifications[0].ID)
		assert.False(t, res.Notifications[0].IsRead)
	})

	t.Run("feed_is_per_card", func(t *testing.T) {
		res, err := svc.List(ctx, "C-0099")
		assert.NoError(t, err)
		assert.Empty(t, res.Notifications)
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	repo := notification.NewMemoryRepository()
	svc := notification.NewService(notification.Deps{Repo: repo})
	ctx := context.Background()

	assert.NoError(t, svc.RecordOrderPlaced(ctx, cardCode, 1001, 3100))
	res, err := svc.List(ctx, cardCode)
	assert.NoError(t, err)
	id := res.Notifications[0].ID

	t.Run("marks_entry_and_drops_unread_count", func(t *testing.T) {
		assert.NoError(t, svc.MarkRead(ctx, cardCode, id))

		res, err := svc.List(ctx, cardCode)
		assert.NoError(t, err)
		assert.True(t, res.Notifications[0].IsRead)
		assert.Equal(t, 0, res.UnreadCount)
	})

	t.Run("unknown_id_not_found", func(t *testing.T) {
		err := svc.MarkRead(ctx, cardCode, "missing-id")
		assert.ErrorIs(t, err, notification.ErrNotificationNotFound)
	})
}
