package config

type (
	InternalConfig struct {
		App         App
		Reservation Reservation
	}
	App struct {
		Env             string
		Port            string
		Version         string
		Address         string
		MaxRequests     int
		ShutdownTimeout int
	}
	// Reservation holds the booking rules, fixed at process start.
	Reservation struct {
		Timezone              string
		MinDurationMinutes    int
		MaxDurationHours      int
		AdvanceLimitDays      int
		LockTTLSeconds        int
		LockWaitMilliseconds  int
		LockRetryMilliseconds int
	}
)
