package dto

const (
	SlotAvailable = "available"
	SlotBooked    = "booked"
)

// Slot is one dated occurrence of a weekly availability window.
type Slot struct {
	Date   string `json:"date"`
	Start  string `json:"start_time"`
	End    string `json:"end_time"`
	Status string `json:"status"`
}
