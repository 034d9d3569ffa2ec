package dto

type BookingListDTO struct {
	ID          uint    `json:"id"`
	BookingDate string  `json:"booking_date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Status      string  `json:"status"`
	TotalPrice  float64 `json:"total_price"`
	UserName    string  `json:"user_name"`
	SportName   string  `json:"sport_name"`
}
