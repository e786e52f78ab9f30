package profile_test

import (
	"context"
	"testing"

	"github.com/nuriddinovv/furniAsia/internal/erp"
	erpmock "github.com/nuriddinovv/furniAsia/internal/mock/erp"
	"github.com/nuriddinovv/furniAsia/internal/profile"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	cardCode = "C-0001"
	phone    = "+998901234567"
)

func newProfileService(t *testing.T) (profile.Service, *erpmock.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	erpSvc := erpmock.NewMockService(ctrl)
	return profile.NewService(profile.Deps{ErpSvc: erpSvc}), erpSvc
}

func TestProfileService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("maps_user_and_cashbacks", func(t *testing.T) {
		svc, erpSvc := newProfileService(t)
		erpSvc.EXPECT().GetUser(ctx, cardCode).Return(erp.User{
			CardCode:        cardCode,
			CardName:        "Aziz",
			CurrentCashback: 12500,
			LastCashbacks:   []erp.Cashback{{TransID: 7, Amount: 500}},
		}, nil)

		res, err := svc.Get(ctx, cardCode)
		assert.NoError(t, err)
		assert.Equal(t, "Aziz", res.CardName)
		assert.Len(t, res.LastCashbacks, 1)
		assert.Equal(t, float64(500), res.LastCashbacks[0].Amount)
	})

	t.Run("blocked_card_forbidden", func(t *testing.T) {
		svc, erpSvc := newProfileService(t)
		erpSvc.EXPECT().GetUser(ctx, cardCode).Return(erp.User{Blocked: true}, nil)

		_, err := svc.Get(ctx, cardCode)
		assert.ErrorIs(t, err, profile.ErrProfileBlocked)
	})
}

func TestProfileService_QR(t *testing.T) {
	ctx := context.Background()

	t.Run("payload_has_timestamp", func(t *testing.T) {
		svc, erpSvc := newProfileService(t)
		erpSvc.EXPECT().GetUser(ctx, cardCode).Return(erp.User{
			CardCode:        cardCode,
			CurrentCashback: 12500,
		}, nil)

		res, err := svc.QR(ctx, cardCode)
		assert.NoError(t, err)
		assert.Equal(t, cardCode, res.CardCode)
		assert.NotEmpty(t, res.TimeStamp)
	})
}

func TestProfileService_SendFeedback(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards_card_and_phone", func(t *testing.T) {
		svc, erpSvc := newProfileService(t)

		var sent erp.Feedback
		erpSvc.EXPECT().SendFeedback(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, fb erp.Feedback) error {
				sent = fb
				return nil
			})

		err := svc.SendFeedback(ctx, cardCode, phone, profile.FeedbackRequest{
			FeedbackType: "suggestion",
			Text:         "tolong tambah metode pembayaran",
		})
		assert.NoError(t, err)
		assert.Equal(t, cardCode, sent.CardCode)
		assert.Equal(t, phone, sent.Phone)
	})

	t.Run("invalid_type_rejected", func(t *testing.T) {
		svc, _ := newProfileService(t)

		err := svc.SendFeedback(ctx, cardCode, phone, profile.FeedbackRequest{
			FeedbackType: "rant",
			Text:         "....",
		})
		assert.ErrorIs(t, err, profile.ErrInvalidFeedback)
	})
}
