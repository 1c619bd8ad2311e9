package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
	"github.com/Andrez18/lummoo-core/internal/infra/events"
	bookingRepo "github.com/Andrez18/lummoo-core/internal/infra/storage/booking"
	businessRepo "github.com/Andrez18/lummoo-core/internal/infra/storage/business"
	serviceRepo "github.com/Andrez18/lummoo-core/internal/infra/storage/service"
	"github.com/Andrez18/lummoo-core/pkg/pgerrors"
)

// UseCase use case для создания бронирования
type UseCase struct {
	businessRepo BusinessRepository
	serviceRepo  ServiceRepository
	customerRepo CustomerRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	businessRepo BusinessRepository,
	serviceRepo ServiceRepository,
	customerRepo CustomerRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		businessRepo: businessRepo,
		serviceRepo:  serviceRepo,
		customerRepo: customerRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Клиент, проверка пересечений и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: business=%s, service=%s, date=%s, time=%s",
		req.BusinessID, req.ServiceID, req.BookingDate, req.StartTime)

	// 1. Валидация входных данных
	date, startTime, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бизнес
	business, err := uc.businessRepo.GetByID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CreateBooking: business id=%s not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateBooking: failed to get business id=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 3. Получаем услугу: она должна принадлежать бизнесу и быть активной
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.BusinessID != business.ID || !service.IsActive {
		uc.logger.Warn("CreateBooking: service id=%s is inactive or belongs to another business", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 4. Время окончания = начало + длительность услуги
	endTime, err := startTime.AddMinutes(service.EffectiveDuration())
	if err != nil {
		uc.logger.Warn("CreateBooking: %s + %d min does not fit the day", startTime, service.EffectiveDuration())
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	// 5. Дата и время начала не в прошлом (по часовому поясу бизнеса)
	now := uc.timeProvider.Now()
	if isDateInPast(date, now, business.Location()) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.BookingDate)
		return nil, ErrInvalidDate
	}
	if isStartElapsed(date, startTime, now, business.Location()) {
		uc.logger.Warn("CreateBooking: start %s on %s has already passed", startTime, req.BookingDate)
		return nil, ErrInvalidDate
	}

	// 6. Рабочие часы на день недели
	if err := validateBusinessHours(business, date, startTime, endTime); err != nil {
		uc.logger.Warn("CreateBooking: business hours check failed: %v", err)
		return nil, err
	}

	var result *domain.Booking
	var customer *domain.Customer

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Находим или создаем клиента по email
		resolved, err := uc.customerRepo.Resolve(txCtx, &domain.Customer{
			Name:  req.CustomerName,
			Email: req.CustomerEmail,
			Phone: req.CustomerPhone,
		})
		if err != nil {
			if pgerrors.IsSerializationFailure(err) {
				uc.logger.Warn("CreateBooking: customer resolve lost to a concurrent transaction: %v", err)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to resolve customer: %v", err)
			return fmt.Errorf("%w: failed to resolve customer: %v", ErrInternal, err)
		}
		customer = resolved

		// 7.2. Активные записи на эту услугу и дату с блокировкой (FOR UPDATE)
		filter := domain.BookingsFilter{
			BusinessIDs: []uuid.UUID{business.ID},
			ServiceID:   &service.ID,
			Date:        &date,
			ActiveOnly:  true,
		}

		bookings, err := uc.bookingRepo.GetByFilter(txCtx, filter)
		if err != nil {
			if pgerrors.IsSerializationFailure(err) {
				uc.logger.Warn("CreateBooking: bookings lookup lost to a concurrent transaction: %v", err)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 7.3. Проверяем пересечение; соседние интервалы не пересекаются
		if taken := findOverlap(bookings, startTime, endTime); taken != nil {
			uc.logger.Warn("CreateBooking: slot %s-%s overlaps booking id=%s (%s-%s)",
				startTime, endTime, taken.ID, taken.StartTime, taken.EndTime)
			return ErrSlotNotAvailable
		}

		// 7.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			BusinessID:  business.ID,
			ServiceID:   service.ID,
			CustomerID:  customer.ID,
			BookingDate: date,
			StartTime:   startTime,
			EndTime:     endTime,
			Status:      domain.StatusPending,
			Notes:       req.Notes,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot %s taken by a concurrent booking", startTime)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if pgerrors.IsSerializationFailure(err) {
			err = ErrSlotNotAvailable
		}
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.metrics.IncBookingConflict(business.ID.String())
			return nil, ErrSlotNotAvailable
		}
		if !errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)
	uc.metrics.IncBookingCreated(business.ID.String())

	// 8. Событие публикуется после коммита; ошибка не отменяет запись
	event := events.BookingCreated{
		BookingID:     result.ID.String(),
		BusinessID:    result.BusinessID.String(),
		ServiceID:     result.ServiceID.String(),
		CustomerID:    result.CustomerID.String(),
		CustomerEmail: customer.Email,
		BookingDate:   result.BookingDate.Format(domain.DateFormat),
		StartTime:     result.StartTime.String(),
		EndTime:       result.EndTime.String(),
		Status:        string(result.Status),
		CreatedAt:     result.CreatedAt,
	}
	if err := uc.publisher.PublishBookingCreated(ctx, event); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%s: %v", result.ID, err)
	}

	return toResponse(result, service, customer), nil
}

func toResponse(b *domain.Booking, service *domain.Service, customer *domain.Customer) *Response {
	return &Response{
		ID:            b.ID,
		BusinessID:    b.BusinessID,
		ServiceID:     b.ServiceID,
		CustomerID:    b.CustomerID,
		BookingDate:   b.BookingDate,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        string(b.Status),
		Notes:         b.Notes,
		ServiceName:   service.Name,
		ServicePrice:  service.Price,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		CreatedAt:     b.CreatedAt,
	}
}
