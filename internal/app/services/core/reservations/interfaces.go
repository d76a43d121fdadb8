package reservations

import (
	"context"
	"reserv-service/internal/app/models"
	"reserv-service/internal/pkg/dto/requests"
	"reserv-service/internal/pkg/dto/responses"
	"reserv-service/internal/pkg/timeslot"
	"time"
)

type ReservationUsecase interface {
	CreateReservation(ctx context.Context, request *requests.CreateReservation) (*responses.Reservation, error)
	ListReservations(ctx context.Context, view string) ([]responses.Reservation, error)
}

type ReservationRepository interface {
	CreateReservation(ctx context.Context, reservation *models.Reservation) (reservationID string, err error)
	// FindOverlapping returns reservations whose half-open interval intersects
	// [start, end).
	FindOverlapping(ctx context.Context, start, end time.Time) ([]models.Reservation, error)
	// FindUpcoming returns reservations with endTime after now, optionally
	// restricted to those starting inside window, ordered by start time.
	FindUpcoming(ctx context.Context, now time.Time, window *timeslot.Window) ([]models.Reservation, error)
}
