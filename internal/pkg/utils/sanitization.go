package utils

import (
	"reserv-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeCreateReservationRequest(request *requests.CreateReservation) {
	request.Username = strings.TrimSpace(request.Username)
	request.StartTime = strings.TrimSpace(request.StartTime)
	request.EndTime = strings.TrimSpace(request.EndTime)
}
