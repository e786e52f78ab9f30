package notification

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"
)

const (
	feedKeyPrefix = "notifications:"
	maxFeedLength = 50
)

//go:generate mockgen -source=notification_store.go -destination=../mock/notification/notification_store_mock.go -package=mock
type Repository interface {
	List(ctx context.Context, cardCode string) ([]Notification, error)
	Push(ctx context.Context, cardCode string, n Notification) error
	MarkRead(ctx context.Context, cardCode string, id string) error
}

// ========================
// redis implementation
// ========================

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) Repository {
	if client == nil {
		panic("redis client cannot be nil")
	}
	return &redisRepository{client: client}
}

func feedKey(cardCode string) string {
	return feedKeyPrefix + cardCode
}

func (r *redisRepository) List(ctx context.Context, cardCode string) ([]Notification, error) {
	raw, err := r.client.LRange(ctx, feedKey(cardCode), 0, -1).Result()
	if err != nil {
		return nil, ErrFeedStoreFailed
	}

	feed := make([]Notification, 0, len(raw))
	for _, item := range raw {
		var n Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			// entri korup dilewati, bukan mematikan seluruh feed
			continue
		}
		feed = append(feed, n)
	}
	return feed, nil
}

func (r *redisRepository) Push(ctx context.Context, cardCode string, n Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}

	key := feedKey(cardCode)
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, maxFeedLength-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return ErrFeedStoreFailed
	}
	return nil
}

func (r *redisRepository) MarkRead(ctx context.Context, cardCode string, id string) error {
	key := feedKey(cardCode)

	raw, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return ErrFeedStoreFailed
	}

	for idx, item := range raw {
		var n Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			continue
		}
		if n.ID != id {
			continue
		}
		if n.IsRead {
			return nil
		}

		n.IsRead = true
		payload, err := json.Marshal(n)
		if err != nil {
			return err
		}
		if err := r.client.LSet(ctx, key, int64(idx), payload).Err(); err != nil {
			return ErrFeedStoreFailed
		}
		return nil
	}

	return ErrNotificationNotFound
}

// ========================
// in-memory implementation
// ========================

type memoryRepository struct {
	mu    sync.RWMutex
	feeds map[string][]Notification
}

func NewMemoryRepository() Repository {
	return &memoryRepository{feeds: make(map[string][]Notification)}
}

func (m *memoryRepository) List(_ context.Context, cardCode string) ([]Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	feed := m.feeds[cardCode]
	out := make([]Notification, len(feed))
	copy(out, feed)
	return out, nil
}

func (m *memoryRepository) Push(_ context.Context, cardCode string, n Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	feed := append([]Notification{n}, m.feeds[cardCode]...)
	if len(feed) > maxFeedLength {
		feed = feed[:maxFeedLength]
	}
	m.feeds[cardCode] = feed
	return nil
}

func (m *memoryRepository) MarkRead(_ context.Context, cardCode string, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	feed := m.feeds[cardCode]
	for idx := range feed {
		if feed[idx].ID == id {
			feed[idx].IsRead = true
			return nil
		}
	}
	return ErrNotificationNotFound
}
