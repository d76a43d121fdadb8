package exceptions

import (
	"fmt"
	"reserv-service/internal/pkg/constvars"
)

var (
	ErrCannotParseJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidInput, constvars.ErrDevCannotParseJSON)
	}
	ErrInputValidation = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientMissingFields, constvars.ErrDevValidationFailed)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	// Reservation rules
	ErrReservationInvalidTimeFormat = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidTimeFormat, constvars.ErrDevCannotParseNaiveTimestamp)
	}
	ErrReservationPastStartTime = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientPastStartTime, constvars.ErrDevReservationRuleViolated)
	}
	ErrReservationNonPositiveDuration = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientNonPositiveDuration, constvars.ErrDevReservationRuleViolated)
	}
	ErrReservationTooShort = func(err error, minMinutes int) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientTooShortFormat, minMinutes), constvars.ErrDevReservationRuleViolated)
	}
	ErrReservationTooLong = func(err error, maxHours int) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientTooLongFormat, maxHours), constvars.ErrDevReservationRuleViolated)
	}
	ErrReservationTooFarInAdvance = func(err error, limitDays int, lastAllowedDay string) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientTooFarInAdvanceFormat, limitDays, lastAllowedDay), constvars.ErrDevReservationRuleViolated)
	}
	ErrReservationSlotConflict = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusConflict, constvars.ErrClientSlotConflict, constvars.ErrDevReservationOverlapDetected)
	}
	ErrReservationSlotLocked = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusConflict, constvars.ErrClientSlotBeingBooked, constvars.ErrDevDayLockNotAcquired)
	}

	// MongoDB
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBInsertDocument)
	}
	ErrMongoDBFindDocuments = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBFindDocuments)
	}
	ErrMongoDBDecodeDocuments = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBDecodeDocuments)
	}
	ErrMongoDBCreateIndexes = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBCreateIndexes)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisGet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}
)
