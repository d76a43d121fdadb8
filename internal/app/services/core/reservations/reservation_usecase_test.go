package reservations

import (
	"context"
	"fmt"
	"reserv-service/internal/app/config"
	"reserv-service/internal/app/models"
	"reserv-service/internal/pkg/dto/requests"
	"reserv-service/internal/pkg/exceptions"
	"reserv-service/internal/pkg/timeslot"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeReservationRepository behaves like the real store, including the overlap
// query, so race tests exercise honest check-then-insert semantics.
type fakeReservationRepository struct {
	mu           sync.Mutex
	reservations []models.Reservation
	nextID       int
}

func (f *fakeReservationRepository) CreateReservation(ctx context.Context, reservation *models.Reservation) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	stored := *reservation
	stored.ID = fmt.Sprintf("resv-%03d", f.nextID)
	f.reservations = append(f.reservations, stored)
	return stored.ID, nil
}

func (f *fakeReservationRepository) FindOverlapping(ctx context.Context, start, end time.Time) ([]models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matches []models.Reservation
	for _, existing := range f.reservations {
		if timeslot.Overlaps(existing.StartTime, existing.EndTime, start, end) {
			matches = append(matches, existing)
		}
	}
	return matches, nil
}

func (f *fakeReservationRepository) FindUpcoming(ctx context.Context, now time.Time, window *timeslot.Window) ([]models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matches []models.Reservation
	for _, existing := range f.reservations {
		if !existing.EndTime.After(now) {
			continue
		}
		if window != nil && !window.Contains(existing.StartTime) {
			continue
		}
		matches = append(matches, existing)
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].StartTime.Before(matches[j].StartTime)
	})
	return matches, nil
}

func (f *fakeReservationRepository) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reservations)
}

// fakeLocker provides real mutual exclusion per key.
type fakeLocker struct {
	mu        sync.Mutex
	held      map[string]string
	nextToken int
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[string]string)}
}

func (f *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, taken := f.held[key]; taken {
		return false, "", nil
	}
	f.nextToken++
	token := fmt.Sprintf("token-%03d", f.nextToken)
	f.held[key] = token
	return true, token, nil
}

func (f *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.held[key] == lockValue {
		delete(f.held, key)
	}
	return nil
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Reservation: config.Reservation{
			Timezone:              "America/Los_Angeles",
			MinDurationMinutes:    15,
			MaxDurationHours:      4,
			AdvanceLimitDays:      30,
			LockTTLSeconds:        5,
			LockWaitMilliseconds:  500,
			LockRetryMilliseconds: 5,
		},
	}
}

func newTestUsecase(t *testing.T, repo ReservationRepository) (*reservationUsecase, *time.Location, time.Time) {
	t.Helper()
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	usecase := NewReservationUsecase(repo, newFakeLocker(), testInternalConfig(), loc, zap.NewNop()).(*reservationUsecase)
	// Wednesday morning, fixed so the day/week windows are deterministic.
	now := time.Date(2025, 4, 9, 10, 0, 0, 0, loc)
	usecase.now = func() time.Time { return now }
	return usecase, loc, now
}

func naive(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

func assertCustomError(t *testing.T, err error, wantStatus int, wantMessage string) {
	t.Helper()
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok, "expected *exceptions.CustomError, got %T", err)
	assert.Equal(t, wantStatus, customErr.StatusCode)
	if wantMessage != "" {
		assert.Equal(t, wantMessage, customErr.ClientMessage)
	}
}

func TestCreateReservation(t *testing.T) {
	t.Run("Success And Round Trip", func(t *testing.T) {
		repo := &fakeReservationRepository{}
		usecase, loc, _ := newTestUsecase(t, repo)

		start := time.Date(2025, 4, 10, 14, 0, 0, 0, loc)
		end := start.Add(time.Hour)
		result, err := usecase.CreateReservation(context.Background(), &requests.CreateReservation{
			Username:  "testuser",
			StartTime: naive(start),
			EndTime:   naive(end),
		})
		require.NoError(t, err)
		assert.Equal(t, "resv-001", result.ID)
		assert.Equal(t, "testuser", result.Username)

		// The wire times carry the reference-zone offset and parse back to the
		// submitted wall-clock values.
		assert.Equal(t, "2025-04-10T14:00:00-07:00", result.StartTime)
		roundTrip, err := time.Parse(time.RFC3339, result.StartTime)
		require.NoError(t, err)
		assert.True(t, roundTrip.Equal(start))
		assert.Equal(t, 1, repo.count())
	})

	t.Run("Missing Username", func(t *testing.T) {
		repo := &fakeReservationRepository{}
		usecase, loc, _ := newTestUsecase(t, repo)

		start := time.Date(2025, 4, 10, 14, 0, 0, 0, loc)
		_, err := usecase.CreateReservation(context.Background(), &requests.CreateReservation{
			Username:  "   ",
			StartTime: naive(start),
			EndTime:   naive(start.Add(time.Hour)),
		})
		assertCustomError(t, err, 400, "Missing required fields")
		assert.Equal(t, 0, repo.count())
	})

	t.Run("Missing Time Fields", func(t *testing.T) {
		repo := &fakeReservationRepository{}
		usecase, _, _ := newTestUsecase(t, repo)

		_, err := usecase.CreateReservation(context.Background(), &requests.CreateReservation{
			Username: "testuser",
		})
		assertCustomError(t, err, 400, "Missing required fields")
	})

	t.Run("Invalid Time Format", func(t *testing.T) {
		repo := &fakeReservationRepository{}
		usecase, _, _ := newTestUsecase(t, repo)

		_, err := usecase.CreateReservation(context.Background(), &requests.CreateReservation{
			Username:  "testuser",
			StartTime: "10/04/2025 14:00",
			EndTime:   "10/04/2025 15:00",
		})
		assertCustomError(t, err, 400, "Invalid date format. Use YYYY-MM-DD HH:MM")
	})

	t.Run("Start In The Past", func(t *testing.T) {
		repo := &fakeReservationRepository{}
		usecase, _, now := newTestUsecase(t, repo)

		start := now.Add(-2 * time.Hour)
		_, err := usecase.CreateReservation(context.Background(), &requests.CreateReservation{
			Username:  "testuser",
			StartTime: naive(start),
			EndTime:   naive(start.Add(time.Hour)),
		})
		assertCustomError(t, err, 400, "Reservations can only be made for future dates/times")
	})

	t.Run("End Before Start", func(t *testing.T) {
		repo := &fakeReservationRepository{}
		usecase, loc, _ := newTestUsecase(t, repo)

		start := time.Date(2025, 4, 10, 14, 0, 0, 0, loc)
		_, err := usecase.CreateReservation(context.Background(), &requests.CreateReservation{
			Username:  "testuser",
			StartTime: naive(start),
			EndTime:   naive(start.Add(-time.Hour)),
		})
		assertCustomError(t, err, 400, "End time must be after start time")
	})

	t.Run("Too Short", func(t *testing.T) {
		repo := &fakeReservationRepository{}
		usecase, loc, _ := newTestUsecase(t, repo)

		start := time.Date(2025, 4, 10, 14, 0, 0, 0, loc)
		_, err := usecase.CreateReservation(context.Background(), &requests.CreateReservation{
			Username:  "testuser",
			StartTime: naive(start),
			EndTime:   naive(start.Add(10 * time.Minute)),
		})
		assertCustomError(t, err, 400, "Minimum reservation duration is 15 minutes")
	})

	t.Run("Too Long", func(t *testing.T) {
		repo := &fakeReservationRepository{}
		usecase, loc, _ := newTestUsecase(t, repo)

		start := time.Date(2025, 4, 10, 9, 0, 0, 0, loc)
		_, err := usecase.CreateReservation(context.Background(), &requests.CreateReservation{
			Username:  "testuser",
			StartTime: naive(start),
			EndTime:   naive(start.Add(5 * time.Hour)),
		})
		assertCustomError(t, err, 400, "Maximum reservation duration is 4 hours")
	})

	t.Run("Whole Last Allowed Day Is Bookable", func(t *testing.T) {
		repo := &fakeReservationRepository{}
		usecase, loc, _ := newTestUsecase(t, repo)

		start := time.Date(2025, 5, 9, 23, 30, 0, 0, loc)
		_, err := usecase.CreateReservation(context.Background(), &requests.CreateReservation{
			Username:  "testuser",
			StartTime: naive(start),
			EndTime:   naive(start.Add(15 * time.Minute)),
		})
		assert.NoError(t, err)
	})

	t.Run("Too Far In Advance", func(t *testing.T) {
		repo := &fakeReservationRepository{}
		usecase, loc, _ := newTestUsecase(t, repo)

		start := time.Date(2025, 5, 10, 9, 0, 0, 0, loc)
		_, err := usecase.CreateReservation(context.Background(), &requests.CreateReservation{
			Username:  "testuser",
			StartTime: naive(start),
			EndTime:   naive(start.Add(time.Hour)),
		})
		assertCustomError(t, err, 400, "Reservations can only be made up to 30 days in advance (last available day is 2025-05-09)")
	})

	t.Run("Overlap Is Rejected", func(t *testing.T) {
		repo := &fakeReservationRepository{}
		usecase, loc, _ := newTestUsecase(t, repo)

		start := time.Date(2025, 4, 10, 15, 0, 0, 0, loc)
		first := &requests.CreateReservation{
			Username:  "user_a",
			StartTime: naive(start),
			EndTime:   naive(start.Add(time.Hour)),
		}
		_, err := usecase.CreateReservation(context.Background(), first)
		require.NoError(t, err)

		second := &requests.CreateReservation{
			Username:  "user_b",
			StartTime: naive(start.Add(30 * time.Minute)),
			EndTime:   naive(start.Add(90 * time.Minute)),
		}
		_, err = usecase.CreateReservation(context.Background(), second)
		assertCustomError(t, err, 409, "Requested time slot is already reserved or overlaps with an existing reservation")
		assert.Equal(t, 1, repo.count())
	})

	t.Run("Adjacent Intervals Both Succeed", func(t *testing.T) {
		repo := &fakeReservationRepository{}
		usecase, loc, _ := newTestUsecase(t, repo)

		start := time.Date(2025, 4, 10, 14, 0, 0, 0, loc)
		_, err := usecase.CreateReservation(context.Background(), &requests.CreateReservation{
			Username:  "user_a",
			StartTime: naive(start),
			EndTime:   naive(start.Add(time.Hour)),
		})
		require.NoError(t, err)

		_, err = usecase.CreateReservation(context.Background(), &requests.CreateReservation{
			Username:  "user_b",
			StartTime: naive(start.Add(time.Hour)),
			EndTime:   naive(start.Add(2 * time.Hour)),
		})
		require.NoError(t, err)
		assert.Equal(t, 2, repo.count())
	})
}

func TestCreateReservationConcurrency(t *testing.T) {
	repo := &fakeReservationRepository{}
	usecase, loc, _ := newTestUsecase(t, repo)

	start := time.Date(2025, 4, 10, 14, 0, 0, 0, loc)
	end := start.Add(time.Hour)

	const workers = 8
	results := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := usecase.CreateReservation(context.Background(), &requests.CreateReservation{
				Username:  fmt.Sprintf("user_%d", i),
				StartTime: naive(start),
				EndTime:   naive(end),
			})
			results[i] = err
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok, "expected *exceptions.CustomError, got %T", err)
		assert.Equal(t, 409, customErr.StatusCode)
	}
	assert.Equal(t, 1, successes, "exactly one concurrent booking may win")
	assert.Equal(t, 1, repo.count())
}

func TestListReservations(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	seed := func() *fakeReservationRepository {
		repo := &fakeReservationRepository{}
		add := func(id, username string, start time.Time, duration time.Duration) {
			repo.reservations = append(repo.reservations, models.Reservation{
				ID:        id,
				Username:  username,
				StartTime: start,
				EndTime:   start.Add(duration),
			})
		}
		// now is Wednesday 2025-04-09 10:00.
		add("resv-past", "old", time.Date(2025, 4, 8, 9, 0, 0, 0, loc), time.Hour)
		add("resv-ongoing", "ongoing", time.Date(2025, 4, 9, 9, 30, 0, 0, loc), time.Hour)
		add("resv-tonight", "tonight", time.Date(2025, 4, 9, 18, 0, 0, 0, loc), time.Hour)
		add("resv-thursday", "thursday", time.Date(2025, 4, 10, 9, 0, 0, 0, loc), time.Hour)
		add("resv-next-week", "nextweek", time.Date(2025, 4, 14, 9, 0, 0, 0, loc), time.Hour)
		return repo
	}

	collectIDs := func(t *testing.T, usecase *reservationUsecase, view string) []string {
		t.Helper()
		result, err := usecase.ListReservations(context.Background(), view)
		require.NoError(t, err)
		out := make([]string, 0, len(result))
		for _, r := range result {
			out = append(out, r.ID)
		}
		return out
	}

	t.Run("All Excludes Ended, Ordered By Start", func(t *testing.T) {
		usecase, _, _ := newTestUsecase(t, seed())
		assert.Equal(t, []string{"resv-ongoing", "resv-tonight", "resv-thursday", "resv-next-week"}, collectIDs(t, usecase, "all"))
	})

	t.Run("Day View", func(t *testing.T) {
		usecase, _, _ := newTestUsecase(t, seed())
		assert.Equal(t, []string{"resv-ongoing", "resv-tonight"}, collectIDs(t, usecase, "day"))
	})

	t.Run("Week View Excludes Next Week", func(t *testing.T) {
		usecase, _, _ := newTestUsecase(t, seed())
		assert.Equal(t, []string{"resv-ongoing", "resv-tonight", "resv-thursday"}, collectIDs(t, usecase, "week"))
	})

	t.Run("Unknown View Falls Back To All", func(t *testing.T) {
		usecase, _, _ := newTestUsecase(t, seed())
		assert.Equal(t, collectIDs(t, usecase, "all"), collectIDs(t, usecase, "fortnight"))
	})
}
