package constvars

// Error messages for clients. The reservation rule messages mirror what the
// booking form shows users, so changing them is a product decision.
const (
	ErrClientInvalidInput                  = "Invalid input"
	ErrClientMissingFields                 = "Missing required fields"
	ErrClientInvalidTimeFormat             = "Invalid date format. Use YYYY-MM-DD HH:MM"
	ErrClientPastStartTime                 = "Reservations can only be made for future dates/times"
	ErrClientNonPositiveDuration           = "End time must be after start time"
	ErrClientTooShortFormat                = "Minimum reservation duration is %d minutes"
	ErrClientTooLongFormat                 = "Maximum reservation duration is %d hours"
	ErrClientTooFarInAdvanceFormat         = "Reservations can only be made up to %d days in advance (last available day is %s)"
	ErrClientSlotConflict                  = "Requested time slot is already reserved or overlaps with an existing reservation"
	ErrClientSlotBeingBooked               = "Another booking for this time slot is in progress, please try again"
	ErrClientCannotProcessRequest          = "cannot process request, please check your request"
	ErrClientServerLongRespond             = "server takes too long to respond, please try again later"
	ErrClientSomethingWrongWithApplication = "something is wrong with the application, please contact administrator"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON            = "Failed to parse JSON request body"
	ErrDevValidationFailed           = "Request payload validation failed"
	ErrDevCannotParseNaiveTimestamp  = "Failed to parse naive timestamp in reference timezone"
	ErrDevReservationRuleViolated    = "Reservation interval rejected by booking rules"
	ErrDevReservationOverlapDetected = "Candidate interval overlaps a persisted reservation"
	ErrDevDayLockNotAcquired         = "Failed to acquire booking day lock"
	ErrDevMongoDBInsertDocument      = "Failed to insert document to MongoDB"
	ErrDevMongoDBFindDocuments       = "Failed to find documents in MongoDB"
	ErrDevMongoDBDecodeDocuments     = "Failed to decode MongoDB documents"
	ErrDevMongoDBCreateIndexes       = "Failed to create MongoDB indexes"
	ErrDevRedisSetData               = "Failed to set data to Redis"
	ErrDevRedisGetData               = "Failed to get data from Redis"
	ErrDevRedisDeleteData            = "Failed to delete data from Redis"
	ErrDevRedisUnlock                = "Failed to release Redis lock"
	ErrDevServerDeadlineExceeded     = "Request exceeded server deadline"
)
