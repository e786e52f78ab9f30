package profile

import (
	"context"
	"time"

	"github.com/nuriddinovv/furniAsia/internal/erp"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

//go:generate mockgen -source=profile_service.go -destination=../mock/profile/profile_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, cardCode string) (ProfileResponse, error)
	QR(ctx context.Context, cardCode string) (QRResponse, error)
	History(ctx context.Context, cardCode string) ([]erp.Order, error)
	SendFeedback(ctx context.Context, cardCode string, phone string, req FeedbackRequest) error
}

type service struct {
	erpSvc   erp.Service
	validate *validator.Validate
	logger   *zap.Logger
}

type Deps struct {
	ErpSvc erp.Service
	Logger *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.ErpSvc == nil {
		panic("erp service cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		erpSvc:   deps.ErpSvc,
		validate: validator.New(),
		logger:   deps.Logger,
	}
}

func (s *service) Get(ctx context.Context, cardCode string) (ProfileResponse, error) {
	user, err := s.erpSvc.GetUser(ctx, cardCode)
	if err != nil {
		return ProfileResponse{}, err
	}
	if user.Blocked {
		return ProfileResponse{}, ErrProfileBlocked
	}

	cashbacks := make([]CashbackEntry, 0, len(user.LastCashbacks))
	for _, cb := range user.LastCashbacks {
		cashbacks = append(cashbacks, CashbackEntry{
			TransID: cb.TransID,
			Date:    cb.Date,
			Amount:  cb.Amount,
		})
	}

	return ProfileResponse{
		CardCode:        user.CardCode,
		CardName:        user.CardName,
		CurrentCashback: user.CurrentCashback,
		Phone:           user.Phone,
		MonthlyPlan:     user.MonthlyPlan,
		MonthlyFact:     user.MonthlyFact,
		QuarterlyPlan:   user.QuarterlyPlan,
		QuarterlyFact:   user.QuarterlyFact,
		YearlyPlan:      user.YearlyPlan,
		YearlyFact:      user.YearlyFact,
		LastCashbacks:   cashbacks,
	}, nil
}

func (s *service) QR(ctx context.Context, cardCode string) (QRResponse, error) {
	user, err := s.erpSvc.GetUser(ctx, cardCode)
	if err != nil {
		return QRResponse{}, err
	}

	return QRResponse{
		CardCode:        user.CardCode,
		CardName:        user.CardName,
		CurrentCashback: user.CurrentCashback,
		TimeStamp:       time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *service) History(ctx context.Context, cardCode string) ([]erp.Order, error) {
	return s.erpSvc.GetHistory(ctx, cardCode)
}

func (s *service) SendFeedback(ctx context.Context, cardCode string, phone string, req FeedbackRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return ErrInvalidFeedback
	}

	fb := erp.Feedback{
		CardCode:     cardCode,
		Phone:        phone,
		FeedbackType: req.FeedbackType,
		Text:         req.Text,
	}
	if err := s.erpSvc.SendFeedback(ctx, fb); err != nil {
		return err
	}

	s.logger.Info("feedback sent",
		zap.String("card_code", cardCode),
		zap.String("feedback_type", req.FeedbackType),
	)
	return nil
}
