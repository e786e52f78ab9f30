package cart

// ==================== REQUEST STRUCTS ====================

type SetQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required" validate:"required,min=1"`
}

type SetDeliveryLocationRequest struct {
	Latitude  float64 `json:"latitude" binding:"required" validate:"required"`
	Longitude float64 `json:"longitude" binding:"required" validate:"required"`
}

// ItemSnapshot adalah potret harga/promo dari katalog saat Add.
// Setelah baris dibuat, harga tidak di-refresh lagi.
type ItemSnapshot struct {
	ItemCode            string
	Description         string
	ItemImage           string
	Price               float64
	DiscountedPrice     float64
	PriceBeforeDiscount float64
	DiscountPercent     float64
	DiscountType        string
	CashbackPercent     float64
	MaxQuantity         int
	PaidQuantity        int
	FreeQuantity        int
	MaxFreeQuantity     int
}

// ==================== RESPONSE STRUCTS ====================

type CartLineResponse struct {
	ItemCode            string  `json:"itemCode"`
	Description         string  `json:"description"`
	ItemImage           string  `json:"itemImage"`
	Quantity            int     `json:"quantity"`
	FreeItemQuantity    int     `json:"freeItemQuantity"`
	Price               float64 `json:"price"`
	DiscountedPrice     float64 `json:"discountedPrice"`
	PriceBeforeDiscount float64 `json:"priceBeforeDiscount"`
	DiscountPercent     float64 `json:"discountPercent"`
	CashbackPercent     float64 `json:"cashbackPercent"`
	MaxQuantity         int     `json:"maxQuantity"`
	LineTotal           float64 `json:"lineTotal"`
}

type CartDetailResponse struct {
	Lines    []CartLineResponse `json:"lines"`
	Location *DeliveryLocation  `json:"location,omitempty"`
	Total    float64            `json:"total"`
}

type CartCountResponse struct {
	Count int64 `json:"count"`
}
