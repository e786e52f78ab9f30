package catalog_test

import (
	"context"
	"testing"

	"github.com/nuriddinovv/furniAsia/internal/catalog"
	"github.com/nuriddinovv/furniAsia/internal/erp"
	erpmock "github.com/nuriddinovv/furniAsia/internal/mock/erp"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const cardCode = "C-0001"

func TestCatalogService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	erpSvc := erpmock.NewMockService(ctrl)
	// Redis nil: cache dilewati, langsung ke ERP
	svc := catalog.NewService(catalog.Deps{ErpSvc: erpSvc})
	ctx := context.Background()

	t.Run("maps_promo_fields", func(t *testing.T) {
		erpSvc.EXPECT().GetItems(ctx, cardCode, 1, "sofa").Return([]erp.Item{
			{
				ItemCode:        "ITM-001",
				ItemName:        "Sofa Oslo",
				QuantityOnStock: 10,
				Price:           1000,
				DiscountedPrice: 800,
				DiscountApplied: 20,
				PaidQuantity:    3,
				FreeQuantity:    1,
				MaxFreeQuantity: 2,
			},
		}, nil)

		res, err := svc.List(ctx, cardCode, 1, "sofa")
		assert.NoError(t, err)
		assert.Equal(t, 1, res.Page)
		assert.Len(t, res.Items, 1)
		assert.Equal(t, 3, res.Items[0].PaidQuantity)
		assert.Equal(t, float64(20), res.Items[0].DiscountPercent)
	})

	t.Run("page_below_one_defaults_to_one", func(t *testing.T) {
		erpSvc.EXPECT().GetItems(ctx, cardCode, 1, "").Return(nil, nil)

		res, err := svc.List(ctx, cardCode, 0, "")
		assert.NoError(t, err)
		assert.Equal(t, 1, res.Page)
	})

	t.Run("upstream_error_propagates", func(t *testing.T) {
		erpSvc.EXPECT().GetItems(ctx, cardCode, 2, "").Return(nil, erp.ErrUpstreamUnavailable)

		_, err := svc.List(ctx, cardCode, 2, "")
		assert.ErrorIs(t, err, erp.ErrUpstreamUnavailable)
	})
}

func TestCatalogService_GetItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	erpSvc := erpmock.NewMockService(ctrl)
	svc := catalog.NewService(catalog.Deps{ErpSvc: erpSvc})
	ctx := context.Background()

	t.Run("not_found_propagates", func(t *testing.T) {
		erpSvc.EXPECT().GetItem(ctx, cardCode, "ITM-404").Return(erp.Item{}, erp.ErrItemNotFound)

		_, err := svc.GetItem(ctx, cardCode, "ITM-404")
		assert.ErrorIs(t, err, erp.ErrItemNotFound)
	})
}
