package requests

// CreateReservation carries the booking form payload. Time strings are naive
// (no timezone marker) and are interpreted in the reference timezone.
type CreateReservation struct {
	Username  string `json:"username" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}
