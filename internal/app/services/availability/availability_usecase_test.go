package availability

import (
	"context"
	"fmt"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// daysAhead keeps fixture dates inside the scheduling window regardless of
// when the suite runs.
func daysAhead(days int) string {
	return time.Now().AddDate(0, 0, days).Format(constvars.DateLayout)
}

const (
	doctorSessionData      = `{"session_id":"sess-1","user_id":"user-1","role":"doctor","doctor_id":"doctor-1"}`
	otherDoctorSessionData = `{"session_id":"sess-2","user_id":"user-2","role":"doctor","doctor_id":"doctor-2"}`
	patientSessionData     = `{"session_id":"sess-3","user_id":"user-3","role":"patient","patient_id":"patient-1"}`
	adminSessionData       = `{"session_id":"sess-4","user_id":"user-4","role":"admin"}`
)

type stubSessionService struct{}

func (s *stubSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	return nil
}

func (s *stubSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "", nil
}

func (s *stubSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return nil
}

func (s *stubSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

type fakeAvailabilityRepository struct {
	slots  map[string]*models.AvailabilitySlot
	nextID int
}

func newFakeAvailabilityRepository() *fakeAvailabilityRepository {
	return &fakeAvailabilityRepository{slots: make(map[string]*models.AvailabilitySlot)}
}

func (r *fakeAvailabilityRepository) DeclareSlot(ctx context.Context, slot *models.AvailabilitySlot) (string, error) {
	r.nextID++
	slot.ID = fmt.Sprintf("slot-%d", r.nextID)
	copied := *slot
	r.slots[slot.ID] = &copied
	return slot.ID, nil
}

func (r *fakeAvailabilityRepository) FindByID(ctx context.Context, slotID string) (*models.AvailabilitySlot, error) {
	slot, ok := r.slots[slotID]
	if !ok {
		return nil, nil
	}
	copied := *slot
	return &copied, nil
}

func (r *fakeAvailabilityRepository) FindActiveByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.AvailabilitySlot, error) {
	var result []models.AvailabilitySlot
	for _, slot := range r.slots {
		if slot.DoctorID == doctorID && slot.Date == date && slot.IsActive {
			result = append(result, *slot)
		}
	}
	return result, nil
}

func (r *fakeAvailabilityRepository) ListOpenSlots(ctx context.Context, doctorID, fromDate, toDate string) ([]models.AvailabilitySlot, error) {
	var result []models.AvailabilitySlot
	for _, slot := range r.slots {
		if slot.DoctorID != doctorID || !slot.IsActive || slot.IsBooked {
			continue
		}
		if fromDate != "" && slot.Date < fromDate {
			continue
		}
		if toDate != "" && slot.Date > toDate {
			continue
		}
		result = append(result, *slot)
	}
	return result, nil
}

func (r *fakeAvailabilityRepository) RetractSlot(ctx context.Context, slotID string) error {
	slot, ok := r.slots[slotID]
	if !ok || !slot.IsActive {
		return exceptions.ErrSlotNotFound(nil)
	}
	if slot.IsBooked {
		return exceptions.ErrSlotRetractBooked(nil)
	}
	slot.IsActive = false
	return nil
}

func (r *fakeAvailabilityRepository) MarkBooked(ctx context.Context, slotID string) error {
	slot, ok := r.slots[slotID]
	if !ok || !slot.IsActive || slot.IsBooked {
		return exceptions.ErrSlotLostRace(nil)
	}
	slot.IsBooked = true
	return nil
}

func newAvailabilityFixture() (*availabilityUsecase, *fakeAvailabilityRepository) {
	repo := newFakeAvailabilityRepository()
	usecase := &availabilityUsecase{
		AvailabilityRepository: repo,
		SessionService:         &stubSessionService{},
		Logger:                 zap.NewNop(),
	}
	return usecase, repo
}

func TestDeclareSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("doctor declares a slot", func(t *testing.T) {
		usecase, repo := newAvailabilityFixture()

		response, err := usecase.DeclareSlot(ctx, doctorSessionData, &requests.DeclareSlotRequest{
			Date:      daysAhead(7),
			StartTime: "09:00",
			EndTime:   "10:00",
		})

		assert.NoError(t, err)
		assert.Equal(t, "doctor-1", response.DoctorID)
		slot := repo.slots[response.ID]
		assert.True(t, slot.IsActive)
		assert.False(t, slot.IsBooked)
	})

	t.Run("patient may not declare slots", func(t *testing.T) {
		usecase, _ := newAvailabilityFixture()

		_, err := usecase.DeclareSlot(ctx, patientSessionData, &requests.DeclareSlotRequest{
			Date:      daysAhead(7),
			StartTime: "09:00",
			EndTime:   "10:00",
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		usecase, _ := newAvailabilityFixture()

		_, err := usecase.DeclareSlot(ctx, doctorSessionData, &requests.DeclareSlotRequest{
			Date:      daysAhead(7),
			StartTime: "10:00",
			EndTime:   "09:00",
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("past date is rejected", func(t *testing.T) {
		usecase, repo := newAvailabilityFixture()

		_, err := usecase.DeclareSlot(ctx, doctorSessionData, &requests.DeclareSlotRequest{
			Date:      "2020-01-01",
			StartTime: "09:00",
			EndTime:   "10:00",
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientDateInPast, customErr.ClientMessage)
		assert.Empty(t, repo.slots)
	})

	t.Run("date beyond the scheduling horizon is rejected", func(t *testing.T) {
		usecase, _ := newAvailabilityFixture()

		_, err := usecase.DeclareSlot(ctx, doctorSessionData, &requests.DeclareSlotRequest{
			Date:      time.Now().AddDate(0, 4, 0).Format(constvars.DateLayout),
			StartTime: "09:00",
			EndTime:   "10:00",
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientDateTooFarAhead, customErr.ClientMessage)
	})

	t.Run("overlapping slot on the same day conflicts", func(t *testing.T) {
		usecase, _ := newAvailabilityFixture()

		_, err := usecase.DeclareSlot(ctx, doctorSessionData, &requests.DeclareSlotRequest{
			Date:      daysAhead(7),
			StartTime: "09:00",
			EndTime:   "10:00",
		})
		assert.NoError(t, err)

		_, err = usecase.DeclareSlot(ctx, doctorSessionData, &requests.DeclareSlotRequest{
			Date:      daysAhead(7),
			StartTime: "09:30",
			EndTime:   "10:30",
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("back to back slots are allowed", func(t *testing.T) {
		usecase, _ := newAvailabilityFixture()

		_, err := usecase.DeclareSlot(ctx, doctorSessionData, &requests.DeclareSlotRequest{
			Date:      daysAhead(7),
			StartTime: "09:00",
			EndTime:   "10:00",
		})
		assert.NoError(t, err)

		_, err = usecase.DeclareSlot(ctx, doctorSessionData, &requests.DeclareSlotRequest{
			Date:      daysAhead(7),
			StartTime: "10:00",
			EndTime:   "11:00",
		})
		assert.NoError(t, err)
	})

	t.Run("another doctor is not affected by the overlap rule", func(t *testing.T) {
		usecase, _ := newAvailabilityFixture()

		_, err := usecase.DeclareSlot(ctx, doctorSessionData, &requests.DeclareSlotRequest{
			Date:      daysAhead(7),
			StartTime: "09:00",
			EndTime:   "10:00",
		})
		assert.NoError(t, err)

		_, err = usecase.DeclareSlot(ctx, otherDoctorSessionData, &requests.DeclareSlotRequest{
			Date:      daysAhead(7),
			StartTime: "09:00",
			EndTime:   "10:00",
		})
		assert.NoError(t, err)
	})
}

func TestRetractSlot(t *testing.T) {
	ctx := context.Background()

	declare := func(t *testing.T, usecase *availabilityUsecase) string {
		response, err := usecase.DeclareSlot(ctx, doctorSessionData, &requests.DeclareSlotRequest{
			Date:      daysAhead(7),
			StartTime: "09:00",
			EndTime:   "10:00",
		})
		assert.NoError(t, err)
		return response.ID
	}

	t.Run("owner retracts an open slot", func(t *testing.T) {
		usecase, repo := newAvailabilityFixture()
		slotID := declare(t, usecase)

		err := usecase.RetractSlot(ctx, doctorSessionData, slotID)

		assert.NoError(t, err)
		assert.False(t, repo.slots[slotID].IsActive)
	})

	t.Run("another doctor cannot retract", func(t *testing.T) {
		usecase, _ := newAvailabilityFixture()
		slotID := declare(t, usecase)

		err := usecase.RetractSlot(ctx, otherDoctorSessionData, slotID)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("admin can retract any slot", func(t *testing.T) {
		usecase, repo := newAvailabilityFixture()
		slotID := declare(t, usecase)

		err := usecase.RetractSlot(ctx, adminSessionData, slotID)

		assert.NoError(t, err)
		assert.False(t, repo.slots[slotID].IsActive)
	})

	t.Run("booked slot cannot be retracted", func(t *testing.T) {
		usecase, repo := newAvailabilityFixture()
		slotID := declare(t, usecase)
		repo.slots[slotID].IsBooked = true

		err := usecase.RetractSlot(ctx, doctorSessionData, slotID)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("unknown slot yields not found", func(t *testing.T) {
		usecase, _ := newAvailabilityFixture()

		err := usecase.RetractSlot(ctx, doctorSessionData, "slot-missing")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestListOpenSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("booked and retracted slots are filtered out", func(t *testing.T) {
		usecase, repo := newAvailabilityFixture()

		open, err := usecase.DeclareSlot(ctx, doctorSessionData, &requests.DeclareSlotRequest{
			Date: daysAhead(7), StartTime: "09:00", EndTime: "10:00",
		})
		assert.NoError(t, err)
		booked, err := usecase.DeclareSlot(ctx, doctorSessionData, &requests.DeclareSlotRequest{
			Date: daysAhead(7), StartTime: "10:00", EndTime: "11:00",
		})
		assert.NoError(t, err)
		retracted, err := usecase.DeclareSlot(ctx, doctorSessionData, &requests.DeclareSlotRequest{
			Date: daysAhead(7), StartTime: "11:00", EndTime: "12:00",
		})
		assert.NoError(t, err)

		repo.slots[booked.ID].IsBooked = true
		repo.slots[retracted.ID].IsActive = false

		result, err := usecase.ListOpenSlots(ctx, &requests.ListOpenSlotsRequest{DoctorID: "doctor-1"})

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, open.ID, result[0].ID)
	})
}
