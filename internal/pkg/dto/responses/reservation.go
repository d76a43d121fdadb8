package responses

// Reservation is the wire form of a persisted reservation. Times are RFC 3339
// with the reference-timezone offset.
type Reservation struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
