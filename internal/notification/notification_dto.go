package notification

// Notification adalah satu entri feed per kartu, disimpan sebagai JSON
// di list Redis `notifications:{cardCode}` (terbaru di depan).
type Notification struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	DateTime string `json:"dateTime"`
	IsRead   bool   `json:"isRead"`
}

type ListResponse struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unreadCount"`
}
