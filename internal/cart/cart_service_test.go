package cart_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nuriddinovv/furniAsia/internal/cart"
	mock "github.com/nuriddinovv/furniAsia/internal/mock/cart"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const cardCode = "C-0001"

func promoState(quantity int) cart.State {
	line := cart.Line{
		ItemCode:        "ITM-001",
		Description:     "Sofa Oslo",
		Quantity:        quantity,
		Price:           1000,
		DiscountedPrice: 800,
		MaxQuantity:     10,
		PaidQuantity:    3,
		FreeQuantity:    1,
		MaxFreeQuantity: 2,
	}
	line.FreeItemQuantity = cart.FreeQuantityFor(quantity, line)
	return cart.State{Lines: []cart.Line{line}}
}

func TestCartService_AddItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	snapshots := mock.NewMockSnapshotter(ctrl)
	svc := cart.NewService(cart.Deps{Repo: repo, Snapshots: snapshots})
	ctx := context.Background()

	t.Run("success_new_line_starts_at_one", func(t *testing.T) {
		repo.EXPECT().Load(ctx, cardCode).Return(cart.State{}, nil)
		snapshots.EXPECT().Snapshot(ctx, cardCode, "ITM-001").Return(cart.ItemSnapshot{
			ItemCode:        "ITM-001",
			Description:     "Sofa Oslo",
			Price:           1000,
			DiscountedPrice: 800,
			MaxQuantity:     10,
			PaidQuantity:    3,
			FreeQuantity:    1,
			MaxFreeQuantity: 2,
		}, nil)

		var saved cart.State
		repo.EXPECT().Save(ctx, cardCode, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, state cart.State) error {
				saved = state
				return nil
			})

		res, err := svc.AddItem(ctx, cardCode, "ITM-001")
		assert.NoError(t, err)
		assert.Len(t, res.Lines, 1)
		assert.Equal(t, 1, res.Lines[0].Quantity)
		assert.Equal(t, 0, res.Lines[0].FreeItemQuantity)
		assert.Equal(t, 1, saved.Lines[0].Quantity)
	})

	t.Run("existing_line_is_noop", func(t *testing.T) {
		repo.EXPECT().Load(ctx, cardCode).Return(promoState(3), nil)

		res, err := svc.AddItem(ctx, cardCode, "ITM-001")
		assert.NoError(t, err)
		assert.Len(t, res.Lines, 1)
		assert.Equal(t, 3, res.Lines[0].Quantity)
	})

	t.Run("out_of_stock_rejected", func(t *testing.T) {
		repo.EXPECT().Load(ctx, cardCode).Return(cart.State{}, nil)
		snapshots.EXPECT().Snapshot(ctx, cardCode, "ITM-002").Return(cart.ItemSnapshot{
			ItemCode:    "ITM-002",
			MaxQuantity: 0,
		}, nil)

		_, err := svc.AddItem(ctx, cardCode, "ITM-002")
		assert.ErrorIs(t, err, cart.ErrMaxQuantityReached)
	})

	t.Run("snapshot_error_propagates", func(t *testing.T) {
		repo.EXPECT().Load(ctx, cardCode).Return(cart.State{}, nil)
		snapshots.EXPECT().Snapshot(ctx, cardCode, "ITM-003").
			Return(cart.ItemSnapshot{}, errors.New("upstream down"))

		_, err := svc.AddItem(ctx, cardCode, "ITM-003")
		assert.Error(t, err)
	})
}

func TestCartService_Increment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	snapshots := mock.NewMockSnapshotter(ctrl)
	svc := cart.NewService(cart.Deps{Repo: repo, Snapshots: snapshots})
	ctx := context.Background()

	t.Run("commits_quantity_and_free_together", func(t *testing.T) {
		// 2 -> 3: set berbayar pertama genap, free 0 -> 1
		repo.EXPECT().Load(ctx, cardCode).Return(promoState(2), nil)
		repo.EXPECT().Save(ctx, cardCode, gomock.Any()).Return(nil)

		res, err := svc.Increment(ctx, cardCode, "ITM-001")
		assert.NoError(t, err)
		assert.Equal(t, 3, res.Lines[0].Quantity)
		assert.Equal(t, 1, res.Lines[0].FreeItemQuantity)
	})

	t.Run("rejected_when_quantity_plus_free_exceeds_max", func(t *testing.T) {
		// 8 -> 9 berarti 9 + free(9)=2 = 11 > 10
		repo.EXPECT().Load(ctx, cardCode).Return(promoState(8), nil)

		_, err := svc.Increment(ctx, cardCode, "ITM-001")
		assert.ErrorIs(t, err, cart.ErrMaxQuantityReached)
	})

	t.Run("line_not_found", func(t *testing.T) {
		repo.EXPECT().Load(ctx, cardCode).Return(cart.State{}, nil)

		_, err := svc.Increment(ctx, cardCode, "ITM-404")
		assert.ErrorIs(t, err, cart.ErrLineNotFound)
	})
}

func TestCartService_Decrement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	snapshots := mock.NewMockSnapshotter(ctrl)
	svc := cart.NewService(cart.Deps{Repo: repo, Snapshots: snapshots})
	ctx := context.Background()

	t.Run("decrements_and_recomputes_free", func(t *testing.T) {
		// 6 -> 5: free 2 -> 1
		repo.EXPECT().Load(ctx, cardCode).Return(promoState(6), nil)
		repo.EXPECT().Save(ctx, cardCode, gomock.Any()).Return(nil)

		res, err := svc.Decrement(ctx, cardCode, "ITM-001")
		assert.NoError(t, err)
		assert.Equal(t, 5, res.Lines[0].Quantity)
		assert.Equal(t, 1, res.Lines[0].FreeItemQuantity)
	})

	t.Run("removes_line_at_quantity_one", func(t *testing.T) {
		repo.EXPECT().Load(ctx, cardCode).Return(promoState(1), nil)

		var saved cart.State
		repo.EXPECT().Save(ctx, cardCode, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, state cart.State) error {
				saved = state
				return nil
			})

		res, err := svc.Decrement(ctx, cardCode, "ITM-001")
		assert.NoError(t, err)
		assert.Empty(t, res.Lines)
		assert.Empty(t, saved.Lines)
		assert.Equal(t, float64(0), res.Total)
	})
}

func TestCartService_SetQuantity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	snapshots := mock.NewMockSnapshotter(ctrl)
	svc := cart.NewService(cart.Deps{Repo: repo, Snapshots: snapshots})
	ctx := context.Background()

	t.Run("commits_requested_quantity", func(t *testing.T) {
		repo.EXPECT().Load(ctx, cardCode).Return(promoState(1), nil)
		repo.EXPECT().Save(ctx, cardCode, gomock.Any()).Return(nil)

		res, err := svc.SetQuantity(ctx, cardCode, "ITM-001", cart.SetQuantityRequest{Quantity: 6})
		assert.NoError(t, err)
		assert.Equal(t, 6, res.Lines[0].Quantity)
		assert.Equal(t, 2, res.Lines[0].FreeItemQuantity)
	})

	t.Run("clamps_down_until_free_fits", func(t *testing.T) {
		// minta 10: 10+free(10)=2 = 12 > 10, turun sampai 8+2=10
		repo.EXPECT().Load(ctx, cardCode).Return(promoState(1), nil)

		var saved cart.State
		repo.EXPECT().Save(ctx, cardCode, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, state cart.State) error {
				saved = state
				return nil
			})

		res, err := svc.SetQuantity(ctx, cardCode, "ITM-001", cart.SetQuantityRequest{Quantity: 10})
		assert.NoError(t, err)
		assert.Equal(t, 8, res.Lines[0].Quantity)
		assert.Equal(t, 2, res.Lines[0].FreeItemQuantity)
		assert.LessOrEqual(t, saved.Lines[0].Quantity+saved.Lines[0].FreeItemQuantity, saved.Lines[0].MaxQuantity)
	})

	t.Run("zero_quantity_invalid", func(t *testing.T) {
		_, err := svc.SetQuantity(ctx, cardCode, "ITM-001", cart.SetQuantityRequest{Quantity: 0})
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
	})
}

func TestCartService_ReconcileOnLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	snapshots := mock.NewMockSnapshotter(ctrl)
	svc := cart.NewService(cart.Deps{Repo: repo, Snapshots: snapshots})
	ctx := context.Background()

	t.Run("stale_free_value_written_back_once", func(t *testing.T) {
		stale := promoState(6)
		stale.Lines[0].FreeItemQuantity = 0 // basi

		repo.EXPECT().Load(ctx, cardCode).Return(stale, nil)
		repo.EXPECT().Save(ctx, cardCode, gomock.Any()).Return(nil)

		res, err := svc.Detail(ctx, cardCode)
		assert.NoError(t, err)
		assert.Equal(t, 2, res.Lines[0].FreeItemQuantity)
	})

	t.Run("consistent_state_not_written_back", func(t *testing.T) {
		// tanpa EXPECT Save: save di sini berarti test gagal
		repo.EXPECT().Load(ctx, cardCode).Return(promoState(6), nil)

		res, err := svc.Detail(ctx, cardCode)
		assert.NoError(t, err)
		assert.Equal(t, 2, res.Lines[0].FreeItemQuantity)
	})
}

func TestCartService_DeliveryLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	snapshots := mock.NewMockSnapshotter(ctrl)
	svc := cart.NewService(cart.Deps{Repo: repo, Snapshots: snapshots})
	ctx := context.Background()

	t.Run("stores_location", func(t *testing.T) {
		repo.EXPECT().Load(ctx, cardCode).Return(cart.State{}, nil)

		var saved cart.State
		repo.EXPECT().Save(ctx, cardCode, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, state cart.State) error {
				saved = state
				return nil
			})

		err := svc.SetDeliveryLocation(ctx, cardCode, cart.SetDeliveryLocationRequest{
			Latitude:  41.311,
			Longitude: 69.279,
		})
		assert.NoError(t, err)
		assert.NotNil(t, saved.Location)
		assert.Equal(t, 41.311, saved.Location.Latitude)
	})

	t.Run("clear_removes_lines_and_location", func(t *testing.T) {
		repo.EXPECT().Clear(ctx, cardCode).Return(nil)

		err := svc.Clear(ctx, cardCode)
		assert.NoError(t, err)
	})
}
