package profile

// ==================== REQUEST STRUCTS ====================

type FeedbackRequest struct {
	FeedbackType string `json:"feedbackType" binding:"required" validate:"required,oneof=complaint suggestion other"`
	Text         string `json:"text" binding:"required" validate:"required,min=3,max=1000"`
}

// ==================== RESPONSE STRUCTS ====================

type CashbackEntry struct {
	TransID int     `json:"transId"`
	Date    string  `json:"date"`
	Amount  float64 `json:"amount"`
}

type ProfileResponse struct {
	CardCode        string          `json:"cardCode"`
	CardName        string          `json:"cardName"`
	CurrentCashback float64         `json:"currentCashback"`
	Phone           string          `json:"phone"`
	MonthlyPlan     float64         `json:"monthlyPlan"`
	MonthlyFact     float64         `json:"monthlyFact"`
	QuarterlyPlan   float64         `json:"quarterlyPlan"`
	QuarterlyFact   float64         `json:"quarterlyFact"`
	YearlyPlan      float64         `json:"yearlyPlan"`
	YearlyFact      float64         `json:"yearlyFact"`
	LastCashbacks   []CashbackEntry `json:"lastCashbacks"`
}

// QRResponse adalah payload yang di-encode jadi QR di sisi klien.
type QRResponse struct {
	CardCode        string  `json:"cardCode"`
	CardName        string  `json:"cardName"`
	CurrentCashback float64 `json:"currentCashback"`
	TimeStamp       string  `json:"timeStamp"`
}
