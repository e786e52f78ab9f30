package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=notification_service.go -destination=../mock/notification/notification_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, cardCode string) (ListResponse, error)
	MarkRead(ctx context.Context, cardCode string, id string) error

	// RecordOrderPlaced dipanggil consumer saat event ORDER_PLACED masuk.
	RecordOrderPlaced(ctx context.Context, cardCode string, docNum int, total float64) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

type Deps struct {
	Repo   Repository
	Logger *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("notification repository cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &service{repo: deps.Repo, logger: deps.Logger}
}

func (s *service) List(ctx context.Context, cardCode string) (ListResponse, error) {
	feed, err := s.repo.List(ctx, cardCode)
	if err != nil {
		return ListResponse{}, err
	}

	unread := 0
	for _, n := range feed {
		if !n.IsRead {
			unread++
		}
	}

	return ListResponse{Notifications: feed, UnreadCount: unread}, nil
}

func (s *service) MarkRead(ctx context.Context, cardCode string, id string) error {
	return s.repo.MarkRead(ctx, cardCode, id)
}

func (s *service) RecordOrderPlaced(ctx context.Context, cardCode string, docNum int, total float64) error {
	n := Notification{
		ID:       uuid.NewString(),
		Title:    "Order placed",
		Body:     fmt.Sprintf("Order #%d for %.0f UZS has been received", docNum, total),
		DateTime: time.Now().UTC().Format(time.RFC3339),
		IsRead:   false,
	}

	if err := s.repo.Push(ctx, cardCode, n); err != nil {
		return err
	}

	s.logger.Info("order notification recorded",
		zap.String("card_code", cardCode),
		zap.Int("doc_num", docNum),
	)
	return nil
}
