package utils

import (
	"reserv-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreateReservationRequest(t *testing.T) {
	t.Run("Trims Surrounding Whitespace", func(t *testing.T) {
		request := &requests.CreateReservation{
			Username:  "  alice\t",
			StartTime: " 2025-04-10 14:00 ",
			EndTime:   "\n2025-04-10 15:00",
		}

		SanitizeCreateReservationRequest(request)

		assert.Equal(t, "alice", request.Username)
		assert.Equal(t, "2025-04-10 14:00", request.StartTime)
		assert.Equal(t, "2025-04-10 15:00", request.EndTime)
	})

	t.Run("Whitespace Only Becomes Empty", func(t *testing.T) {
		request := &requests.CreateReservation{
			Username:  "   ",
			StartTime: "2025-04-10 14:00",
			EndTime:   "2025-04-10 15:00",
		}

		SanitizeCreateReservationRequest(request)

		assert.Empty(t, request.Username)
	})
}
