package availability

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	availabilityUsecaseInstance contracts.AvailabilityUsecase
	onceAvailabilityUsecase     sync.Once
)

type availabilityUsecase struct {
	AvailabilityRepository contracts.AvailabilityRepository
	SessionService         contracts.SessionService
	Logger                 *zap.Logger
}

func NewAvailabilityUsecase(
	availabilityRepository contracts.AvailabilityRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	onceAvailabilityUsecase.Do(func() {
		availabilityUsecaseInstance = &availabilityUsecase{
			AvailabilityRepository: availabilityRepository,
			SessionService:         sessionService,
			Logger:                 logger,
		}
	})
	return availabilityUsecaseInstance
}

func (uc *availabilityUsecase) DeclareSlot(ctx context.Context, sessionData string, request *requests.DeclareSlotRequest) (*responses.AvailabilitySlot, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsDoctor() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	if !utils.IsValidTimeRange(request.StartTime, request.EndTime) {
		return nil, exceptions.ErrInvalidTimeRange(nil)
	}
	now := time.Now()
	if utils.IsPastDate(request.Date, now) {
		return nil, exceptions.ErrDateInPast(nil)
	}
	if utils.IsBeyondSchedulingHorizon(request.Date, now) {
		return nil, exceptions.ErrDateTooFarAhead(nil)
	}

	existing, err := uc.AvailabilityRepository.FindActiveByDoctorAndDate(ctx, session.DoctorID, request.Date)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if existing[i].Overlaps(request.StartTime, request.EndTime) {
			return nil, exceptions.ErrSlotOverlap(nil)
		}
	}

	slot := &models.AvailabilitySlot{
		DoctorID:  session.DoctorID,
		Date:      request.Date,
		StartTime: request.StartTime,
		EndTime:   request.EndTime,
		IsBooked:  false,
		IsActive:  true,
	}
	slotID, err := uc.AvailabilityRepository.DeclareSlot(ctx, slot)
	if err != nil {
		return nil, err
	}

	uc.Logger.Info("availability slot declared",
		zap.String(constvars.LoggingDoctorIDKey, session.DoctorID),
		zap.String(constvars.LoggingSlotIDKey, slotID),
		zap.String("date", request.Date),
	)

	return &responses.AvailabilitySlot{
		ID:        slotID,
		DoctorID:  session.DoctorID,
		Date:      request.Date,
		StartTime: request.StartTime,
		EndTime:   request.EndTime,
	}, nil
}

func (uc *availabilityUsecase) ListOpenSlots(ctx context.Context, request *requests.ListOpenSlotsRequest) ([]responses.AvailabilitySlot, error) {
	slots, err := uc.AvailabilityRepository.ListOpenSlots(ctx, request.DoctorID, request.From, request.To)
	if err != nil {
		return nil, err
	}

	result := make([]responses.AvailabilitySlot, 0, len(slots))
	for i := range slots {
		result = append(result, responses.AvailabilitySlot{
			ID:        slots[i].ID,
			DoctorID:  slots[i].DoctorID,
			Date:      slots[i].Date,
			StartTime: slots[i].StartTime,
			EndTime:   slots[i].EndTime,
		})
	}
	return result, nil
}

func (uc *availabilityUsecase) RetractSlot(ctx context.Context, sessionData, slotID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	if !session.IsDoctor() && !session.IsAdmin() {
		return exceptions.ErrRoleNotAllowed(nil)
	}

	slot, err := uc.AvailabilityRepository.FindByID(ctx, slotID)
	if err != nil {
		return err
	}
	if slot == nil {
		return exceptions.ErrSlotNotFound(nil)
	}
	if session.IsDoctor() && slot.DoctorID != session.DoctorID {
		return exceptions.ErrRoleNotAllowed(nil)
	}

	err = uc.AvailabilityRepository.RetractSlot(ctx, slotID)
	if err != nil {
		return err
	}

	uc.Logger.Info("availability slot retracted",
		zap.String(constvars.LoggingDoctorIDKey, slot.DoctorID),
		zap.String(constvars.LoggingSlotIDKey, slotID),
	)
	return nil
}
