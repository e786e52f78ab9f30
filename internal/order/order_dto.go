package order

// ==================== REQUEST STRUCTS ====================

const (
	DeliveryMethodPickup   = "pickup"
	DeliveryMethodDelivery = "delivery"
)

type CheckoutRequest struct {
	DeliveryMethod string `json:"deliveryMethod" binding:"required" validate:"required,oneof=pickup delivery"`
	ShopCode       string `json:"shopCode"`
	Comments       string `json:"comments"`
}

// ==================== RESPONSE STRUCTS ====================

type OrderLineResponse struct {
	ItemCode         string  `json:"itemCode"`
	Description      string  `json:"description"`
	Quantity         int     `json:"quantity"`
	FreeItemQuantity int     `json:"freeItemQuantity"`
	Price            float64 `json:"price"`
	DiscountedPrice  float64 `json:"discountedPrice"`
	LineTotal        float64 `json:"lineTotal"`
}

type OrderResponse struct {
	DocEntry        int                 `json:"docEntry"`
	DocNum          int                 `json:"docNum"`
	OrderStatus     string              `json:"orderStatus"`
	DocDate         string              `json:"docDate"`
	ShopName        string              `json:"shopName"`
	DocTotalUZS     float64             `json:"docTotalUZS"`
	CashbackAccrued float64             `json:"cashbackAccrued"`
	Comments        string              `json:"comments"`
	DeliveryAddress string              `json:"deliveryAddress"`
	Lines           []OrderLineResponse `json:"lines,omitempty"`
}

// ==================== EVENT PAYLOADS ====================

type OrderPlacedPayload struct {
	CardCode    string  `json:"cardCode"`
	DocEntry    int     `json:"docEntry"`
	DocNum      int     `json:"docNum"`
	DocTotalUZS float64 `json:"docTotalUZS"`
	PlacedAt    string  `json:"placedAt"`
}
