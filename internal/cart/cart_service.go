package cart

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Snapshotter mengambil potret harga/promo dari katalog saat Add.
type Snapshotter interface {
	Snapshot(ctx context.Context, cardCode string, itemCode string) (ItemSnapshot, error)
}

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	Detail(ctx context.Context, cardCode string) (CartDetailResponse, error)
	Count(ctx context.Context, cardCode string) (int64, error)

	AddItem(ctx context.Context, cardCode string, itemCode string) (CartDetailResponse, error)
	Increment(ctx context.Context, cardCode string, itemCode string) (CartDetailResponse, error)
	Decrement(ctx context.Context, cardCode string, itemCode string) (CartDetailResponse, error)
	SetQuantity(ctx context.Context, cardCode string, itemCode string, req SetQuantityRequest) (CartDetailResponse, error)
	RemoveItem(ctx context.Context, cardCode string, itemCode string) (CartDetailResponse, error)

	SetDeliveryLocation(ctx context.Context, cardCode string, req SetDeliveryLocationRequest) error

	// Snapshot dipakai modul order: baris + lokasi antar apa adanya.
	Snapshot(ctx context.Context, cardCode string) (State, error)
	Clear(ctx context.Context, cardCode string) error
}

type service struct {
	repo      Repository
	snapshots Snapshotter
	validate  *validator.Validate
	logger    *zap.Logger
}

type Deps struct {
	Repo      Repository
	Snapshots Snapshotter
	Logger    *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("cart repository cannot be nil")
	}
	if deps.Snapshots == nil {
		panic("catalog snapshotter cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		repo:      deps.Repo,
		snapshots: deps.Snapshots,
		validate:  validator.New(),
		logger:    deps.Logger,
	}
}

// ========================
// helpers
// ========================

// load mengambil state + rekonsiliasi freeItemQuantity setelah bulk load.
// Ditulis balik hanya kalau ada baris yang berubah.
func (s *service) load(ctx context.Context, cardCode string) (State, error) {
	state, err := s.repo.Load(ctx, cardCode)
	if err != nil {
		return State{}, err
	}

	if state.reconcileFreeQuantities() {
		if err := s.repo.Save(ctx, cardCode, state); err != nil {
			return State{}, err
		}
	}
	return state, nil
}

func toDetailResponse(state State) CartDetailResponse {
	lines := make([]CartLineResponse, 0, len(state.Lines))
	for _, l := range state.Lines {
		lines = append(lines, CartLineResponse{
			ItemCode:            l.ItemCode,
			Description:         l.Description,
			ItemImage:           l.ItemImage,
			Quantity:            l.Quantity,
			FreeItemQuantity:    l.FreeItemQuantity,
			Price:               l.Price,
			DiscountedPrice:     l.DiscountedPrice,
			PriceBeforeDiscount: l.PriceBeforeDiscount,
			DiscountPercent:     l.DiscountPercent,
			CashbackPercent:     l.CashbackPercent,
			MaxQuantity:         l.MaxQuantity,
			LineTotal:           l.EffectivePrice() * float64(l.Quantity),
		})
	}

	return CartDetailResponse{
		Lines:    lines,
		Location: state.Location,
		Total:    state.Total(),
	}
}

// ========================
// reads
// ========================

func (s *service) Detail(ctx context.Context, cardCode string) (CartDetailResponse, error) {
	state, err := s.load(ctx, cardCode)
	if err != nil {
		return CartDetailResponse{}, err
	}
	return toDetailResponse(state), nil
}

func (s *service) Count(ctx context.Context, cardCode string) (int64, error) {
	state, err := s.repo.Load(ctx, cardCode)
	if err != nil {
		return 0, err
	}
	return int64(len(state.Lines)), nil
}

func (s *service) Snapshot(ctx context.Context, cardCode string) (State, error) {
	return s.load(ctx, cardCode)
}

// ========================
// mutations
// ========================

func (s *service) AddItem(ctx context.Context, cardCode string, itemCode string) (CartDetailResponse, error) {
	state, err := s.load(ctx, cardCode)
	if err != nil {
		return CartDetailResponse{}, err
	}

	// baris sudah ada: UI menyembunyikan tombol add, jadi no-op saja
	if state.findLine(itemCode) >= 0 {
		return toDetailResponse(state), nil
	}

	snap, err := s.snapshots.Snapshot(ctx, cardCode, itemCode)
	if err != nil {
		return CartDetailResponse{}, err
	}
	if snap.MaxQuantity < 1 {
		return CartDetailResponse{}, ErrMaxQuantityReached
	}

	line := Line{
		ItemCode:            snap.ItemCode,
		Description:         snap.Description,
		ItemImage:           snap.ItemImage,
		Quantity:            1,
		Price:               snap.Price,
		DiscountedPrice:     snap.DiscountedPrice,
		PriceBeforeDiscount: snap.PriceBeforeDiscount,
		DiscountPercent:     snap.DiscountPercent,
		DiscountType:        snap.DiscountType,
		CashbackPercent:     snap.CashbackPercent,
		MaxQuantity:         snap.MaxQuantity,
		PaidQuantity:        snap.PaidQuantity,
		FreeQuantity:        snap.FreeQuantity,
		MaxFreeQuantity:     snap.MaxFreeQuantity,
	}
	line.FreeItemQuantity = FreeQuantityFor(line.Quantity, line)

	state.Lines = append(state.Lines, line)

	if err := s.repo.Save(ctx, cardCode, state); err != nil {
		return CartDetailResponse{}, err
	}

	s.logger.Info("cart line added",
		zap.String("card_code", cardCode),
		zap.String("item_code", itemCode),
	)

	return toDetailResponse(state), nil
}

func (s *service) Increment(ctx context.Context, cardCode string, itemCode string) (CartDetailResponse, error) {
	state, err := s.load(ctx, cardCode)
	if err != nil {
		return CartDetailResponse{}, err
	}

	idx := state.findLine(itemCode)
	if idx < 0 {
		return CartDetailResponse{}, ErrLineNotFound
	}
	line := state.Lines[idx]

	// hitung dulu quantity + free tentatif, commit hanya kalau muat
	newQuantity := line.Quantity + 1
	newFree := FreeQuantityFor(newQuantity, line)
	if newQuantity+newFree > line.MaxQuantity {
		return CartDetailResponse{}, ErrMaxQuantityReached
	}

	line.Quantity = newQuantity
	line.FreeItemQuantity = newFree
	state.Lines[idx] = line

	if err := s.repo.Save(ctx, cardCode, state); err != nil {
		return CartDetailResponse{}, err
	}
	return toDetailResponse(state), nil
}

func (s *service) Decrement(ctx context.Context, cardCode string, itemCode string) (CartDetailResponse, error) {
	state, err := s.load(ctx, cardCode)
	if err != nil {
		return CartDetailResponse{}, err
	}

	idx := state.findLine(itemCode)
	if idx < 0 {
		return CartDetailResponse{}, ErrLineNotFound
	}
	line := state.Lines[idx]

	if line.Quantity <= 1 {
		// quantity 1 berarti baris dihapus
		state.Lines = append(state.Lines[:idx], state.Lines[idx+1:]...)
	} else {
		line.Quantity--
		line.FreeItemQuantity = FreeQuantityFor(line.Quantity, line)
		state.Lines[idx] = line
	}

	if err := s.repo.Save(ctx, cardCode, state); err != nil {
		return CartDetailResponse{}, err
	}
	return toDetailResponse(state), nil
}

func (s *service) SetQuantity(ctx context.Context, cardCode string, itemCode string, req SetQuantityRequest) (CartDetailResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return CartDetailResponse{}, ErrInvalidQuantity
	}

	state, err := s.load(ctx, cardCode)
	if err != nil {
		return CartDetailResponse{}, err
	}

	idx := state.findLine(itemCode)
	if idx < 0 {
		return CartDetailResponse{}, ErrLineNotFound
	}
	line := state.Lines[idx]

	// Clamp terhadap free yang dihitung ulang, bukan free lama: target
	// turun sampai quantity + free hasil hitung muat di maxQuantity.
	target := req.Quantity
	if target > line.MaxQuantity {
		target = line.MaxQuantity
	}
	if target < 1 {
		target = 1
	}
	for target > 1 && target+FreeQuantityFor(target, line) > line.MaxQuantity {
		target--
	}

	line.Quantity = target
	line.FreeItemQuantity = FreeQuantityFor(target, line)
	state.Lines[idx] = line

	if err := s.repo.Save(ctx, cardCode, state); err != nil {
		return CartDetailResponse{}, err
	}
	return toDetailResponse(state), nil
}

func (s *service) RemoveItem(ctx context.Context, cardCode string, itemCode string) (CartDetailResponse, error) {
	state, err := s.load(ctx, cardCode)
	if err != nil {
		return CartDetailResponse{}, err
	}

	idx := state.findLine(itemCode)
	if idx < 0 {
		return CartDetailResponse{}, ErrLineNotFound
	}
	state.Lines = append(state.Lines[:idx], state.Lines[idx+1:]...)

	if err := s.repo.Save(ctx, cardCode, state); err != nil {
		return CartDetailResponse{}, err
	}
	return toDetailResponse(state), nil
}

func (s *service) SetDeliveryLocation(ctx context.Context, cardCode string, req SetDeliveryLocationRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return ErrInvalidLocation
	}

	state, err := s.load(ctx, cardCode)
	if err != nil {
		return err
	}

	state.Location = &DeliveryLocation{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	return s.repo.Save(ctx, cardCode, state)
}

func (s *service) Clear(ctx context.Context, cardCode string) error {
	// baris + lokasi antar dibersihkan sebagai satu unit
	return s.repo.Clear(ctx, cardCode)
}
