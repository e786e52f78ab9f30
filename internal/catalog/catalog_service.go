package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nuriddinovv/furniAsia/internal/erp"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const itemCacheTTL = 5 * time.Minute

//go:generate mockgen -source=catalog_service.go -destination=../mock/catalog/catalog_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, cardCode string, page int, query string) (ListItemsResponse, error)
	GetItem(ctx context.Context, cardCode string, itemCode string) (erp.Item, error)
}

type service struct {
	erpSvc erp.Service
	rdb    *redis.Client
	logger *zap.Logger
}

type Deps struct {
	ErpSvc erp.Service
	Redis  *redis.Client
	Logger *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.ErpSvc == nil {
		panic("erp service cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	// Redis boleh nil: cache dilewati, semua request ke ERP langsung
	return &service{
		erpSvc: deps.ErpSvc,
		rdb:    deps.Redis,
		logger: deps.Logger,
	}
}

func (s *service) List(ctx context.Context, cardCode string, page int, query string) (ListItemsResponse, error) {
	if page < 1 {
		page = 1
	}

	items, err := s.cachedItems(ctx, cardCode, page, query)
	if err != nil {
		return ListItemsResponse{}, err
	}

	res := ListItemsResponse{Page: page, Items: make([]ItemResponse, 0, len(items))}
	for _, it := range items {
		res.Items = append(res.Items, ItemResponse{
			ItemCode:        it.ItemCode,
			ItemName:        it.ItemName,
			ItemImage:       it.ItemImage,
			ItemsGroupCode:  it.ItemsGroupCode,
			QuantityOnStock: it.QuantityOnStock,
			Price:           it.Price,
			DiscountedPrice: it.DiscountedPrice,
			DiscountPercent: it.DiscountApplied,
			CashbackPercent: it.CashbackPercent,
			PaidQuantity:    it.PaidQuantity,
			FreeQuantity:    it.FreeQuantity,
			MaxFreeQuantity: it.MaxFreeQuantity,
		})
	}
	return res, nil
}

func (s *service) GetItem(ctx context.Context, cardCode string, itemCode string) (erp.Item, error) {
	return s.erpSvc.GetItem(ctx, cardCode, itemCode)
}

// cachedItems: read-through cache per halaman katalog.
func (s *service) cachedItems(ctx context.Context, cardCode string, page int, query string) ([]erp.Item, error) {
	if s.rdb == nil {
		return s.erpSvc.GetItems(ctx, cardCode, page, query)
	}

	key := fmt.Sprintf("catalog:items:%s:%d:%s", cardCode, page, query)

	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var items []erp.Item
		if jsonErr := json.Unmarshal(raw, &items); jsonErr == nil {
			return items, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		s.logger.Warn("catalog cache read failed", zap.Error(err))
	}

	items, err := s.erpSvc.GetItems(ctx, cardCode, page, query)
	if err != nil {
		return nil, err
	}

	if raw, jsonErr := json.Marshal(items); jsonErr == nil {
		if setErr := s.rdb.Set(ctx, key, raw, itemCacheTTL).Err(); setErr != nil {
			s.logger.Warn("catalog cache write failed", zap.Error(setErr))
		}
	}
	return items, nil
}
