package shops

import (
	"context"

	"github.com/nuriddinovv/furniAsia/internal/erp"

	"go.uber.org/zap"
)

//go:generate mockgen -source=shops_service.go -destination=../mock/shops/shops_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]ShopResponse, error)
}

type service struct {
	erpSvc erp.Service
	logger *zap.Logger
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
	return &service{erpSvc: deps.ErpSvc, logger: deps.Logger}
}

func (s *service) List(ctx context.Context) ([]ShopResponse, error) {
	shops, err := s.erpSvc.GetShops(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]ShopResponse, 0, len(shops))
	for _, sh := range shops {
		res = append(res, ShopResponse{
			ShopCode:  sh.ShopCode,
			ShopName:  sh.ShopName,
			Address:   sh.Address,
			Latitude:  sh.Latitude,
			Longitude: sh.Longitude,
		})
	}
	return res, nil
}
