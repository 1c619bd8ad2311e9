package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
	businessRepo "github.com/Andrez18/lummoo-core/internal/infra/storage/business"
	serviceRepo "github.com/Andrez18/lummoo-core/internal/infra/storage/service"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	businessRepo BusinessRepository
	serviceRepo  ServiceRepository
	bookingRepo  BookingRepository
	options      Options
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	businessRepo BusinessRepository,
	serviceRepo ServiceRepository,
	bookingRepo BookingRepository,
	options Options,
	logger Logger,
) *UseCase {
	if options.StepMinutes <= 0 {
		options.StepMinutes = domain.DefaultSlotStepMinutes
	}
	return &UseCase{
		businessRepo: businessRepo,
		serviceRepo:  serviceRepo,
		bookingRepo:  bookingRepo,
		options:      options,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%s, service=%s, date=%s", req.BusinessID, req.ServiceID, req.Date)

	// 1. Валидация входных данных
	if req.BusinessID == uuid.Nil || req.ServiceID == uuid.Nil {
		return nil, fmt.Errorf("%w: businessID and serviceID are required", ErrInvalidInput)
	}
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	// 2. Получаем бизнес
	business, err := uc.businessRepo.GetByID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableSlots: business id=%s not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get business id=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.BusinessID != business.ID || !service.IsActive {
		return nil, ErrServiceNotFound
	}

	resp := &Response{
		Date:            date,
		BusinessID:      business.ID,
		ServiceID:       service.ID,
		DurationMinutes: service.EffectiveDuration(),
		Slots:           []domain.Slot{},
	}

	// 4. Старый режим: фиксированный список
	if uc.options.Static {
		resp.Slots = staticSlots(resp.DurationMinutes)
		return resp, nil
	}

	// 5. Прошедшая дата - свободных слотов нет
	now := uc.timeProvider.Now().In(business.Location())
	if isDateInPast(date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date)
		return resp, nil
	}

	// 6. Рабочие часы на день недели
	day := business.EffectiveHours().Day(date.Weekday())
	if day == nil || day.Closed {
		uc.logger.Info("GetAvailableSlots: business is closed on %s", req.Date)
		return resp, nil
	}

	// 7. Активные записи на эту услугу и дату
	bookings, err := uc.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{
		BusinessIDs: []uuid.UUID{business.ID},
		ServiceID:   &service.ID,
		Date:        &date,
		ActiveOnly:  true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Генерируем слоты
	slots, err := generateSlots(day, resp.DurationMinutes, uc.options.StepMinutes, bookings, date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}
	resp.Slots = slots

	uc.logger.Info("GetAvailableSlots: generated %d slots for business=%s, service=%s, date=%s",
		len(slots), business.ID, service.ID, req.Date)

	return resp, nil
}
