package cart

// Line adalah satu baris keranjang per itemCode. FreeItemQuantity selalu
// turunan dari Quantity + aturan promo, tidak pernah di-set langsung.
type Line struct {
	ItemCode            string  `json:"itemCode"`
	Description         string  `json:"description"`
	ItemImage           string  `json:"itemImage"`
	Quantity            int     `json:"quantity"`
	FreeItemQuantity    int     `json:"freeItemQuantity"`
	Price               float64 `json:"price"`
	DiscountedPrice     float64 `json:"discountedPrice"`
	PriceBeforeDiscount float64 `json:"priceBeforeDiscount"`
	DiscountPercent     float64 `json:"discountPercent"`
	DiscountType        string  `json:"discountType"`
	CashbackPercent     float64 `json:"cashbackPercent"`
	MaxQuantity         int     `json:"maxQuantity"`

	// Parameter promo "beli paidQuantity dapat freeQuantity gratis,
	// maksimal maxFreeQuantity". Nol berarti promo nonaktif.
	PaidQuantity    int `json:"paidQuantity"`
	FreeQuantity    int `json:"freeQuantity"`
	MaxFreeQuantity int `json:"maxFreeQuantity"`
}

// DeliveryLocation adalah titik antar yang dipilih customer, dibersihkan
// bersama isi keranjang.
type DeliveryLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// State adalah snapshot keranjang satu kartu: urutan insert dipertahankan.
type State struct {
	Lines    []Line            `json:"lines"`
	Location *DeliveryLocation `json:"location,omitempty"`
}

// FreeQuantityFor menghitung jumlah gratis untuk quantity tertentu.
// Pure function; satu-satunya tempat rumus promo dihitung.
func FreeQuantityFor(quantity int, l Line) int {
	if l.PaidQuantity <= 0 || l.FreeQuantity <= 0 || l.MaxFreeQuantity <= 0 {
		return 0
	}

	paidSets := quantity / l.PaidQuantity
	calculated := paidSets * l.FreeQuantity
	if calculated > l.MaxFreeQuantity {
		return l.MaxFreeQuantity
	}
	return calculated
}

// EffectivePrice mengambil harga termurah antara list price dan harga diskon.
func (l Line) EffectivePrice() float64 {
	if l.DiscountedPrice < l.Price {
		return l.DiscountedPrice
	}
	return l.Price
}

// Total menjumlahkan effectivePrice * quantity; unit gratis tidak dihitung.
func (s State) Total() float64 {
	var total float64
	for _, l := range s.Lines {
		total += l.EffectivePrice() * float64(l.Quantity)
	}
	return total
}

func (s State) findLine(itemCode string) int {
	for i := range s.Lines {
		if s.Lines[i].ItemCode == itemCode {
			return i
		}
	}
	return -1
}

// reconcileFreeQuantities menghitung ulang freeItemQuantity semua baris.
// Return true hanya kalau ada nilai yang berubah, supaya caller tidak
// menulis ulang state yang sama.
func (s *State) reconcileFreeQuantities() bool {
	changed := false
	for i := range s.Lines {
		derived := FreeQuantityFor(s.Lines[i].Quantity, s.Lines[i])
		if s.Lines[i].FreeItemQuantity != derived {
			s.Lines[i].FreeItemQuantity = derived
			changed = true
		}
	}
	return changed
}
