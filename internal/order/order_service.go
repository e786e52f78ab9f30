package order

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/nuriddinovv/furniAsia/internal/cart"
	"github.com/nuriddinovv/furniAsia/internal/erp"
	"github.com/nuriddinovv/furniAsia/internal/messaging/kafka/producer"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	submitTimeout = 15 * time.Second

	EventOrderPlaced = "ORDER_PLACED"
	aggregateOrder   = "order"
)

//go:generate mockgen -source=order_service.go -destination=../mock/order/order_service_mock.go -package=mock
type Service interface {
	Checkout(ctx context.Context, cardCode string, phone string, req CheckoutRequest) (OrderResponse, error)
	List(ctx context.Context, cardCode string, activeOnly bool) ([]OrderResponse, error)
	Detail(ctx context.Context, docEntry int) (OrderResponse, error)
}

type service struct {
	cartSvc  cart.Service
	erpSvc   erp.Service
	writer   *kafka.Writer
	validate *validator.Validate
	logger   *zap.Logger
}

type Deps struct {
	CartSvc cart.Service
	ErpSvc  erp.Service
	Writer  *kafka.Writer // boleh nil, event hanya best-effort
	Logger  *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.CartSvc == nil {
		panic("cart service cannot be nil")
	}
	if deps.ErpSvc == nil {
		panic("erp service cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		cartSvc:  deps.CartSvc,
		erpSvc:   deps.ErpSvc,
		writer:   deps.Writer,
		validate: validator.New(),
		logger:   deps.Logger,
	}
}

func (s *service) Checkout(ctx context.Context, cardCode string, phone string, req CheckoutRequest) (OrderResponse, error) {
	// 1. Validasi request
	if err := s.validate.Struct(req); err != nil {
		return OrderResponse{}, ErrInvalidDeliveryMethod
	}

	// 2. Ambil snapshot keranjang — invoice dirakit dari snapshot ini,
	// keranjang sendiri tidak disentuh sampai submit sukses.
	snapshot, err := s.cartSvc.Snapshot(ctx, cardCode)
	if err != nil {
		return OrderResponse{}, err
	}
	if len(snapshot.Lines) == 0 {
		return OrderResponse{}, ErrCartEmpty
	}

	// 3. Prasyarat per metode pengiriman
	invoice := erp.Invoice{
		CardCode: cardCode,
		Phone:    phone,
		Comments: req.Comments,
		DocDate:  time.Now().UTC().Format(time.RFC3339),
	}

	switch req.DeliveryMethod {
	case DeliveryMethodPickup:
		if req.ShopCode == "" {
			return OrderResponse{}, ErrPickupShopRequired
		}
		shopCode := req.ShopCode
		invoice.ShopCode = &shopCode
		invoice.WarehouseCode = &shopCode
	case DeliveryMethodDelivery:
		if snapshot.Location == nil {
			return OrderResponse{}, ErrDeliveryLocationRequired
		}
		lat := snapshot.Location.Latitude
		lng := snapshot.Location.Longitude
		invoice.Latitude = &lat
		invoice.Longitude = &lng
	default:
		return OrderResponse{}, ErrInvalidDeliveryMethod
	}

	// 4. Rakit baris invoice
	invoice.Lines = make([]erp.InvoiceLine, 0, len(snapshot.Lines))
	for _, l := range snapshot.Lines {
		invoice.Lines = append(invoice.Lines, erp.InvoiceLine{
			ItemCode:            l.ItemCode,
			Description:         l.Description,
			ItemImage:           l.ItemImage,
			Quantity:            l.Quantity,
			FreeItemQuantity:    l.FreeItemQuantity,
			DiscountPercent:     l.DiscountPercent,
			DiscountType:        l.DiscountType,
			CashbackPercent:     l.CashbackPercent,
			PriceBeforeDiscount: l.PriceBeforeDiscount,
			Price:               l.Price,
			DiscountedPrice:     l.DiscountedPrice,
			WarehouseCode:       invoice.WarehouseCode,
			MaxQuantity:         l.MaxQuantity,
			PaidQuantity:        l.PaidQuantity,
			FreeQuantity:        l.FreeQuantity,
			MaxFreeQuantity:     l.MaxFreeQuantity,
		})
	}
	invoice.DocTotalUZS = snapshot.Total()

	// 5. Submit ke ERP dengan deadline sendiri
	submitCtx, cancel := context.WithTimeout(ctx, submitTimeout)
	defer cancel()

	placed, err := s.erpSvc.SubmitOrder(submitCtx, invoice)
	if err != nil {
		// keranjang utuh, user bisa koreksi lalu coba lagi
		return OrderResponse{}, err
	}

	// 6. Submit sukses: keranjang dibersihkan sebagai satu unit. Gagal
	// clear tidak membatalkan order, cukup dicatat.
	if err := s.cartSvc.Clear(ctx, cardCode); err != nil {
		s.logger.Error("cart clear failed after order placed",
			zap.String("card_code", cardCode),
			zap.Int("doc_entry", placed.DocEntry),
			zap.Error(err),
		)
	}

	s.publishOrderPlaced(ctx, cardCode, placed)

	s.logger.Info("order placed",
		zap.String("card_code", cardCode),
		zap.Int("doc_entry", placed.DocEntry),
		zap.Float64("doc_total", placed.DocTotalUZS),
	)

	return toOrderResponse(placed, true), nil
}

// publishOrderPlaced best-effort: order sudah jadi di ERP, gagal publish
// tidak boleh mengubah hasil checkout.
func (s *service) publishOrderPlaced(ctx context.Context, cardCode string, placed erp.Order) {
	if s.writer == nil {
		return
	}

	payload, err := json.Marshal(OrderPlacedPayload{
		CardCode:    cardCode,
		DocEntry:    placed.DocEntry,
		DocNum:      placed.DocNum,
		DocTotalUZS: placed.DocTotalUZS,
		PlacedAt:    time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		s.logger.Error("marshal order placed payload failed", zap.Error(err))
		return
	}

	if err := producer.PublishEvent(ctx, s.writer, EventOrderPlaced, aggregateOrder, cardCode, payload); err != nil {
		s.logger.Error("publish order placed event failed",
			zap.Int("doc_entry", placed.DocEntry),
			zap.Error(err),
		)
	}
}

func (s *service) List(ctx context.Context, cardCode string, activeOnly bool) ([]OrderResponse, error) {
	orders, err := s.erpSvc.GetOrders(ctx, cardCode, activeOnly)
	if err != nil {
		return nil, err
	}

	res := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		res = append(res, toOrderResponse(o, false))
	}
	return res, nil
}

func (s *service) Detail(ctx context.Context, docEntry int) (OrderResponse, error) {
	o, err := s.erpSvc.GetOrder(ctx, docEntry)
	if err != nil {
		return OrderResponse{}, err
	}
	return toOrderResponse(o, true), nil
}

func toOrderResponse(o erp.Order, withLines bool) OrderResponse {
	res := OrderResponse{
		DocEntry:        o.DocEntry,
		DocNum:          o.DocNum,
		OrderStatus:     o.OrderStatus,
		DocDate:         o.DocDate,
		ShopName:        o.ShopName,
		DocTotalUZS:     o.DocTotalUZS,
		CashbackAccrued: o.CashbackAccrued,
		Comments:        o.Comments,
		DeliveryAddress: o.DeliveryAddress,
	}

	if withLines {
		res.Lines = make([]OrderLineResponse, 0, len(o.Lines))
		for _, l := range o.Lines {
			price := l.Price
			if l.DiscountedPrice < price {
				price = l.DiscountedPrice
			}
			res.Lines = append(res.Lines, OrderLineResponse{
				ItemCode:         l.ItemCode,
				Description:      l.Description,
				Quantity:         l.Quantity,
				FreeItemQuantity: l.FreeItemQuantity,
				Price:            l.Price,
				DiscountedPrice:  l.DiscountedPrice,
				LineTotal:        price * float64(l.Quantity),
			})
		}
	}
	return res
}

// parseDocEntry dipakai handler, dipisah supaya bisa dites tanpa gin.
func parseDocEntry(raw string) (int, error) {
	docEntry, err := strconv.Atoi(raw)
	if err != nil || docEntry <= 0 {
		return 0, ErrInvalidOrderID
	}
	return docEntry, nil
}
