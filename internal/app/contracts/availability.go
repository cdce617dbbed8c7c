package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

// AvailabilityRepository is the availability store. Implementations must
// make MarkBooked and RetractSlot atomic conditional updates, never a
// read-then-write pair.
type AvailabilityRepository interface {
	DeclareSlot(ctx context.Context, slot *models.AvailabilitySlot) (slotID string, err error)
	FindByID(ctx context.Context, slotID string) (*models.AvailabilitySlot, error)
	FindActiveByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.AvailabilitySlot, error)
	ListOpenSlots(ctx context.Context, doctorID, fromDate, toDate string) ([]models.AvailabilitySlot, error)
	RetractSlot(ctx context.Context, slotID string) error
	MarkBooked(ctx context.Context, slotID string) error
}

type AvailabilityUsecase interface {
	DeclareSlot(ctx context.Context, sessionData string, request *requests.DeclareSlotRequest) (*responses.AvailabilitySlot, error)
	ListOpenSlots(ctx context.Context, request *requests.ListOpenSlotsRequest) ([]responses.AvailabilitySlot, error)
	RetractSlot(ctx context.Context, sessionData, slotID string) error
}
