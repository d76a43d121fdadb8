package reservations

import (
	"context"
	"fmt"
	"reserv-service/internal/app/config"
	"reserv-service/internal/app/contracts"
	"reserv-service/internal/app/models"
	"reserv-service/internal/pkg/constvars"
	"reserv-service/internal/pkg/dto/requests"
	"reserv-service/internal/pkg/dto/responses"
	"reserv-service/internal/pkg/exceptions"
	"reserv-service/internal/pkg/timeslot"
	"reserv-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type reservationUsecase struct {
	ReservationRepository ReservationRepository
	LockService           contracts.LockerService
	InternalConfig        *config.InternalConfig
	Location              *time.Location
	Limits                timeslot.Limits
	Log                   *zap.Logger
	now                   func() time.Time
}

func NewReservationUsecase(
	reservationRepository ReservationRepository,
	lockService contracts.LockerService,
	internalConfig *config.InternalConfig,
	location *time.Location,
	logger *zap.Logger,
) ReservationUsecase {
	return &reservationUsecase{
		ReservationRepository: reservationRepository,
		LockService:           lockService,
		InternalConfig:        internalConfig,
		Location:              location,
		Limits: timeslot.Limits{
			MinDuration:      time.Duration(internalConfig.Reservation.MinDurationMinutes) * time.Minute,
			MaxDuration:      time.Duration(internalConfig.Reservation.MaxDurationHours) * time.Hour,
			AdvanceLimitDays: internalConfig.Reservation.AdvanceLimitDays,
		},
		Log: logger,
		now: time.Now,
	}
}

func (u *reservationUsecase) CreateReservation(ctx context.Context, request *requests.CreateReservation) (*responses.Reservation, error) {
	utils.SanitizeCreateReservationRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	start, err := timeslot.ParseNaive(request.StartTime, u.Location)
	if err != nil {
		return nil, exceptions.ErrReservationInvalidTimeFormat(err)
	}
	end, err := timeslot.ParseNaive(request.EndTime, u.Location)
	if err != nil {
		return nil, exceptions.ErrReservationInvalidTimeFormat(err)
	}

	now := u.now().In(u.Location)
	if err := timeslot.Validate(now, start, end, u.Limits); err != nil {
		return nil, u.mapRuleError(err, now)
	}

	// The overlap check and the insert must not interleave with another
	// booking for the same days, so hold every spanned day's lock first.
	release, err := u.acquireDayLocks(ctx, start, end)
	if err != nil {
		return nil, exceptions.ErrReservationSlotLocked(err)
	}
	defer release(ctx)

	overlapping, err := u.ReservationRepository.FindOverlapping(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, exceptions.ErrReservationSlotConflict(nil)
	}

	reservation := &models.Reservation{
		Username:  request.Username,
		StartTime: start,
		EndTime:   end,
	}
	reservationID, err := u.ReservationRepository.CreateReservation(ctx, reservation)
	if err != nil {
		return nil, err
	}

	u.Log.Info("reservation created",
		zap.String(constvars.LoggingReservationIDKey, reservationID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
		zap.Time(constvars.LoggingStartTimeKey, start),
		zap.Time(constvars.LoggingEndTimeKey, end),
	)

	response := u.buildReservationResponse(reservationID, request.Username, start, end)
	return &response, nil
}

func (u *reservationUsecase) ListReservations(ctx context.Context, view string) ([]responses.Reservation, error) {
	now := u.now().In(u.Location)

	var window *timeslot.Window
	switch view {
	case constvars.ReservationViewDay:
		w := timeslot.DayWindow(now)
		window = &w
	case constvars.ReservationViewWeek:
		w := timeslot.WeekWindow(now)
		window = &w
	default:
		// "all" and anything unrecognized fall through to the base filter.
	}

	reservations, err := u.ReservationRepository.FindUpcoming(ctx, now, window)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Reservation, 0, len(reservations))
	for _, reservation := range reservations {
		result = append(result, u.buildReservationResponse(
			reservation.ID,
			reservation.Username,
			reservation.StartTime,
			reservation.EndTime,
		))
	}
	return result, nil
}

// mapRuleError translates the interval core's sentinels into client-facing
// errors, preserving the check order's messages.
func (u *reservationUsecase) mapRuleError(err error, now time.Time) error {
	switch err {
	case timeslot.ErrPastStartTime:
		return exceptions.ErrReservationPastStartTime(err)
	case timeslot.ErrNonPositiveDuration:
		return exceptions.ErrReservationNonPositiveDuration(err)
	case timeslot.ErrTooShort:
		return exceptions.ErrReservationTooShort(err, u.InternalConfig.Reservation.MinDurationMinutes)
	case timeslot.ErrTooLong:
		return exceptions.ErrReservationTooLong(err, u.InternalConfig.Reservation.MaxDurationHours)
	case timeslot.ErrTooFarInAdvance:
		lastAllowedDay := u.Limits.AdvanceCutoff(now).AddDate(0, 0, -1).Format(constvars.DateOnlyLayout)
		return exceptions.ErrReservationTooFarInAdvance(err, u.InternalConfig.Reservation.AdvanceLimitDays, lastAllowedDay)
	default:
		return exceptions.WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevReservationRuleViolated)
	}
}

// acquireDayLocks takes a redis lock for every local calendar day the interval
// touches, in deterministic order, and returns a closure releasing them in
// reverse. Contended locks are retried within a bounded wait.
func (u *reservationUsecase) acquireDayLocks(ctx context.Context, start, end time.Time) (func(context.Context), error) {
	ttl := time.Duration(u.InternalConfig.Reservation.LockTTLSeconds) * time.Second
	wait := time.Duration(u.InternalConfig.Reservation.LockWaitMilliseconds) * time.Millisecond
	retry := time.Duration(u.InternalConfig.Reservation.LockRetryMilliseconds) * time.Millisecond

	type acquired struct{ key, token string }
	var acquiredList []acquired

	releaseAll := func(ctx context.Context) {
		for i := len(acquiredList) - 1; i >= 0; i-- {
			if err := u.LockService.Unlock(ctx, acquiredList[i].key, acquiredList[i].token); err != nil {
				u.Log.Error("failed to release day lock",
					zap.String(constvars.LoggingRedisKey, acquiredList[i].key),
					zap.Error(err),
				)
			}
		}
	}

	deadline := time.Now().Add(wait)
	for _, day := range timeslot.DaysSpanned(start, end) {
		key := u.dayLockKey(day)
		for {
			ok, token, err := u.LockService.TryLock(ctx, key, ttl)
			if err != nil {
				releaseAll(ctx)
				return nil, err
			}
			if ok {
				acquiredList = append(acquiredList, acquired{key: key, token: token})
				break
			}
			if time.Now().After(deadline) {
				releaseAll(ctx)
				return nil, fmt.Errorf("day lock %s still held after %s", key, wait)
			}
			select {
			case <-ctx.Done():
				releaseAll(ctx)
				return nil, ctx.Err()
			case <-time.After(retry):
			}
		}
	}
	return releaseAll, nil
}

func (u *reservationUsecase) dayLockKey(day time.Time) string {
	return fmt.Sprintf("%s:%s", constvars.ReservationDayLockPrefix, day.Format(constvars.DateOnlyLayout))
}

func (u *reservationUsecase) buildReservationResponse(id, username string, start, end time.Time) responses.Reservation {
	return responses.Reservation{
		ID:        id,
		Username:  username,
		StartTime: start.In(u.Location).Format(time.RFC3339),
		EndTime:   end.In(u.Location).Format(time.RFC3339),
	}
}
