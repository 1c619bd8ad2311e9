package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
	bookingRepo "github.com/Andrez18/lummoo-core/internal/infra/storage/booking"
	"github.com/Andrez18/lummoo-core/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями владельца
type Service struct {
	bookingRepo  BookingRepository
	businessRepo BusinessRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	businessRepo BusinessRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// List бронирования всех бизнесов пользователя
// Сортировка: дата по убыванию, затем время начала по убыванию
func (s *Service) List(ctx context.Context, userID uuid.UUID, status *string) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for user=%s, status=%v", userID, status)

	filter := domain.BookingsFilter{}
	if status != nil && *status != "" {
		parsed, ok := domain.ParseBookingStatus(*status)
		if !ok {
			s.logger.Warn("List: invalid status=%s for user=%s", *status, userID)
			return nil, ErrInvalidStatus
		}
		filter.Status = &parsed
	}

	businessIDs, err := s.ownedBusinessIDs(ctx, "List", userID)
	if err != nil {
		return nil, err
	}
	if len(businessIDs) == 0 {
		return models.FromDomainBookingDetailsList(nil), nil
	}
	filter.BusinessIDs = businessIDs

	list, err := s.bookingRepo.ListDetails(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings for user=%s", len(list), userID)
	return models.FromDomainBookingDetailsList(list), nil
}

// UpdateStatus меняет статус бронирования
// pending -> confirmed|cancelled, confirmed -> completed|cancelled
func (s *Service) UpdateStatus(ctx context.Context, userID, bookingID uuid.UUID, status string) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: user=%s, booking=%s, status=%s", userID, bookingID, status)

	next, ok := domain.ParseBookingStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	booking, err := s.loadOwned(ctx, "UpdateStatus", userID, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(next) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking=%s", booking.Status, next, bookingID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, next)
	}

	// Статус меняется только если он все еще равен прочитанному
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, booking.Status, next); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		if errors.Is(err, bookingRepo.ErrStatusChanged) || errors.Is(err, bookingRepo.ErrSlotTaken) {
			s.logger.Warn("UpdateStatus: booking=%s changed concurrently, %s -> %s rejected: %v", bookingID, booking.Status, next, err)
			return nil, fmt.Errorf("%w: %s -> %s: %v", ErrInvalidTransition, booking.Status, next, err)
		}
		s.logger.Error("UpdateStatus: repository error for booking=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = next
	resp := models.FromDomainBookingDetails(booking)
	return &resp, nil
}

// Reminder ссылка на напоминание клиенту в WhatsApp
func (s *Service) Reminder(ctx context.Context, userID, bookingID uuid.UUID) (*models.ReminderResponse, error) {
	booking, err := s.loadOwned(ctx, "Reminder", userID, bookingID)
	if err != nil {
		return nil, err
	}

	message := reminderMessage(booking)
	return &models.ReminderResponse{
		URL:     reminderURL(booking.CustomerPhone, message),
		Message: message,
	}, nil
}

func (s *Service) loadOwned(ctx context.Context, method string, userID, bookingID uuid.UUID) (*domain.BookingDetails, error) {
	booking, err := s.bookingRepo.GetDetailsByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", method, bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", method, bookingID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	businessIDs, err := s.ownedBusinessIDs(ctx, method, userID)
	if err != nil {
		return nil, err
	}
	for _, id := range businessIDs {
		if id == booking.BusinessID {
			return booking, nil
		}
	}

	s.logger.Warn("%s: user=%s has no access to booking id=%s", method, userID, bookingID)
	return nil, ErrBookingNotFound
}

func (s *Service) ownedBusinessIDs(ctx context.Context, method string, userID uuid.UUID) ([]uuid.UUID, error) {
	businesses, err := s.businessRepo.ListByOwner(ctx, userID)
	if err != nil {
		s.logger.Error("%s: business repository error for user=%s: %v", method, userID, err)
		return nil, fmt.Errorf("%w: %s - business repository error: %v", ErrInternal, method, err)
	}

	ids := make([]uuid.UUID, 0, len(businesses))
	for _, b := range businesses {
		ids = append(ids, b.ID)
	}
	return ids, nil
}
