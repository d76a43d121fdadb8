package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"reserv-service/internal/app/services/core/reservations"
	"reserv-service/internal/pkg/constvars"
	"reserv-service/internal/pkg/dto/requests"
	"reserv-service/internal/pkg/exceptions"
	"reserv-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type ReservationController struct {
	Log                *zap.Logger
	ReservationUsecase reservations.ReservationUsecase
}

func NewReservationController(logger *zap.Logger, reservationUsecase reservations.ReservationUsecase) *ReservationController {
	return &ReservationController{
		Log:                logger,
		ReservationUsecase: reservationUsecase,
	}
}

func (ctrl *ReservationController) CreateReservation(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateReservation)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ReservationUsecase.CreateReservation(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, result)
}

func (ctrl *ReservationController) GetReservations(w http.ResponseWriter, r *http.Request) {
	view := r.URL.Query().Get("view")
	if view == "" {
		view = constvars.ReservationViewAll
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ReservationUsecase.ListReservations(ctx, view)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}
