package adapters

import (
	"context"

	"github.com/nuriddinovv/furniAsia/internal/cart"
	"github.com/nuriddinovv/furniAsia/internal/catalog"
)

// SnapshotAdapter menjembatani katalog ke cart.Snapshotter tanpa membuat
// modul cart bergantung ke katalog.
type SnapshotAdapter struct {
	catalogSvc catalog.Service
}

func NewSnapshotAdapter(s catalog.Service) *SnapshotAdapter {
	return &SnapshotAdapter{catalogSvc: s}
}

func (a *SnapshotAdapter) Snapshot(ctx context.Context, cardCode string, itemCode string) (cart.ItemSnapshot, error) {
	item, err := a.catalogSvc.GetItem(ctx, cardCode, itemCode)
	if err != nil {
		return cart.ItemSnapshot{}, err
	}

	return cart.ItemSnapshot{
		ItemCode:            item.ItemCode,
		Description:         item.ItemName,
		ItemImage:           item.ItemImage,
		Price:               item.Price,
		DiscountedPrice:     item.DiscountedPrice,
		PriceBeforeDiscount: item.DiscountedPrice,
		DiscountPercent:     item.DiscountApplied,
		DiscountType:        item.DiscountType,
		CashbackPercent:     item.CashbackPercent,
		MaxQuantity:         item.QuantityOnStock,
		PaidQuantity:        item.PaidQuantity,
		FreeQuantity:        item.FreeQuantity,
		MaxFreeQuantity:     item.MaxFreeQuantity,
	}, nil
}
