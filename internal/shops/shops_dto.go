package shops

type ShopResponse struct {
	ShopCode  string  `json:"shopCode"`
	ShopName  string  `json:"shopName"`
	Address   string  `json:"address"`
	Latitude  *string `json:"latitude"`
	Longitude *string `json:"longitude"`
}
