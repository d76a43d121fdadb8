package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "isClientRequestID"
)

const (
	// Naive timestamp layouts accepted on the wire, reference timezone implied.
	DateTimeSecondsLayout = "2006-01-02 15:04:05"
	DateTimeMinutesLayout = "2006-01-02 15:04"
	DateOnlyLayout        = "2006-01-02"
)

const (
	ReservationViewAll  = "all"
	ReservationViewDay  = "day"
	ReservationViewWeek = "week"
)

// Redis key prefix for per-day booking locks.
const ReservationDayLockPrefix = "reservations:lock:day"

const ResponseUnknown = "unknown"
