package erp

// Wire types untuk backend ERP. Semua response dibungkus envelope
// {status, data, error} — status "success" satu-satunya tanda sukses.

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Status string     `json:"status"`
	Error  *ErrorBody `json:"error"`
}

type Item struct {
	ItemCode        string  `json:"itemCode"`
	ItemName        string  `json:"itemName"`
	ItemImage       string  `json:"itemImage"`
	ItemsGroupCode  int     `json:"itemsGroupCode"`
	QuantityOnStock int     `json:"quantityOnStock"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discountedPrice"`
	BasePrice       float64 `json:"basePrice"`
	CashbackPercent float64 `json:"cashbackPercent"`
	DiscountApplied float64 `json:"discountApplied"`
	DiscountType    string  `json:"discountType"`
	PaidQuantity    int     `json:"paidQuantity"`
	FreeQuantity    int     `json:"freeQuantity"`
	MaxFreeQuantity int     `json:"maxFreeQuantity"`
}

type Shop struct {
	ShopName  string  `json:"shopName"`
	ShopCode  string  `json:"shopCode"`
	Address   string  `json:"address"`
	Latitude  *string `json:"latitude"`
	Longitude *string `json:"longitude"`
}

type InvoiceLine struct {
	ItemCode            string  `json:"itemCode"`
	Description         string  `json:"description"`
	ItemImage           string  `json:"itemImage"`
	Quantity            int     `json:"quantity"`
	FreeItemQuantity    int     `json:"freeItemQuantity"`
	DiscountPercent     float64 `json:"discountPercent"`
	DiscountType        string  `json:"discountType"`
	CashbackPercent     float64 `json:"cashbackPercent"`
	PriceBeforeDiscount float64 `json:"priceBeforeDiscount"`
	Price               float64 `json:"price"`
	DiscountedPrice     float64 `json:"discountedPrice"`
	WarehouseCode       *string `json:"warehouseCode"`
	MaxQuantity         int     `json:"maxQuantity"`
	PaidQuantity        int     `json:"paidQuantity"`
	FreeQuantity        int     `json:"freeQuantity"`
	MaxFreeQuantity     int     `json:"maxFreeQuantity"`
}

type Invoice struct {
	Comments      string        `json:"comments"`
	WarehouseCode *string       `json:"wareHouseCode"`
	ShopCode      *string       `json:"shopCode"`
	Latitude      *float64      `json:"latitude"`
	Longitude     *float64      `json:"longitude"`
	Lines         []InvoiceLine `json:"lines"`
	Phone         string        `json:"phone"`
	DocTotalUZS   float64       `json:"docTotalUZS"`
	DocDate       string        `json:"docDate"`
	CardCode      string        `json:"cardCode"`
}

type Order struct {
	DocEntry                 int           `json:"docEntry"`
	DocNum                   int           `json:"docNum"`
	OrderStatus              string        `json:"orderStatus"`
	DocDate                  string        `json:"docDate"`
	DocTime                  string        `json:"docTime"`
	CardCode                 string        `json:"cardCode"`
	CardName                 string        `json:"cardName"`
	ShopCode                 string        `json:"shopCode"`
	ShopName                 string        `json:"shopName"`
	DocTotalUZS              float64       `json:"docTotalUZS"`
	DocTotalBeforeDiscount   float64       `json:"docTotalBeforeDiscountUZS"`
	CashbackAccrued          float64       `json:"cashbackAccrued"`
	Comments                 string        `json:"comments"`
	DeliveryAddress          string        `json:"deliveryAddress"`
	Lines                    []InvoiceLine `json:"lines"`
	TotalDiscountPercent     float64       `json:"totalDiscountPercent"`
	TotalDiscountSum         float64       `json:"totalDiscountSum"`
}

type Cashback struct {
	TransID int     `json:"transId"`
	Date    string  `json:"date"`
	Amount  float64 `json:"amount"`
}

type User struct {
	CardCode        string     `json:"cardCode"`
	CardName        string     `json:"cardName"`
	CurrentCashback float64    `json:"currentCashback"`
	Phone           string     `json:"phone"`
	Blocked         bool       `json:"blocked"`
	MonthlyPlan     float64    `json:"monthlyPlan"`
	MonthlyFact     float64    `json:"monthlyFact"`
	QuarterlyPlan   float64    `json:"quarterlyPlan"`
	QuarterlyFact   float64    `json:"quarterlyFact"`
	YearlyPlan      float64    `json:"yearlyPlan"`
	YearlyFact      float64    `json:"yearlyFact"`
	LastCashbacks   []Cashback `json:"lastCashbacks"`
}

type Feedback struct {
	CardCode     string `json:"cardCode"`
	Phone        string `json:"phone"`
	FeedbackType string `json:"feedbackType"`
	Text         string `json:"text"`
}
