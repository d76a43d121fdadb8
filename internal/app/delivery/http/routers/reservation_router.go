package routers

import (
	"reserv-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachReservationRoutes(r chi.Router, reservationController *controllers.ReservationController) {
	r.Post("/", reservationController.CreateReservation)
	r.Get("/", reservationController.GetReservations)
}
