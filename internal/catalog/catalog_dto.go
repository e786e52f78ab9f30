package catalog

type ItemResponse struct {
	ItemCode        string  `json:"itemCode"`
	ItemName        string  `json:"itemName"`
	ItemImage       string  `json:"itemImage"`
	ItemsGroupCode  int     `json:"itemsGroupCode"`
	QuantityOnStock int     `json:"quantityOnStock"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discountedPrice"`
	DiscountPercent float64 `json:"discountPercent"`
	CashbackPercent float64 `json:"cashbackPercent"`
	PaidQuantity    int     `json:"paidQuantity"`
	FreeQuantity    int     `json:"freeQuantity"`
	MaxFreeQuantity int     `json:"maxFreeQuantity"`
}

type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
	Page  int            `json:"page"`
}
