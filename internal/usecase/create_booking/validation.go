package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
	"github.com/Andrez18/lummoo-core/pkg/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest проверяет обязательные поля и возвращает дату и время начала
func validateRequest(req *Request) (time.Time, types.TimeString, error) {
	if req.BusinessID == uuid.Nil {
		return time.Time{}, "", fmt.Errorf("%w: businessID is required", ErrInvalidInput)
	}

	if req.ServiceID == uuid.Nil {
		return time.Time{}, "", fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerEmail = domain.NormalizeEmail(req.CustomerEmail)
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)

	if err := validate.Struct(req); err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	date, err := time.Parse(domain.DateFormat, req.BookingDate)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: invalid bookingDate: %v", ErrInvalidInput, err)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	return date, start, nil
}

// isDateInPast дата раньше сегодняшней в часовом поясе бизнеса
func isDateInPast(date time.Time, now time.Time, loc *time.Location) bool {
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return day.Before(today)
}

// isStartElapsed дата сегодняшняя, а время начала уже наступило
// Совпадает с правилом генерации слотов: на сегодня предлагаются только будущие начала.
func isStartElapsed(date time.Time, start types.TimeString, now time.Time, loc *time.Location) bool {
	local := now.In(loc)
	if date.Year() != local.Year() || date.Month() != local.Month() || date.Day() != local.Day() {
		return false
	}
	return !start.IsAfter(types.NewTimeString(local))
}

// validateBusinessHours проверяет, что [start, end) целиком внутри рабочего дня
func validateBusinessHours(business *domain.Business, date time.Time, start, end types.TimeString) error {
	day := business.EffectiveHours().Day(date.Weekday())
	if day == nil || day.Closed {
		return ErrBusinessClosed
	}

	open, err := types.NewTimeStringFromString(day.Open)
	if err != nil {
		return fmt.Errorf("%w: invalid open time %q: %v", ErrInternal, day.Open, err)
	}
	closeAt, err := types.NewTimeStringFromString(day.Close)
	if err != nil {
		return fmt.Errorf("%w: invalid close time %q: %v", ErrInternal, day.Close, err)
	}

	if start.IsBefore(open) || end.IsAfter(closeAt) {
		return fmt.Errorf("%w: %s-%s not within %s-%s", ErrOutsideBusinessHours, start, end, open, closeAt)
	}

	return nil
}

// findOverlap первая активная запись, пересекающаяся с [start, end)
func findOverlap(bookings []*domain.Booking, start, end types.TimeString) *domain.Booking {
	for _, b := range bookings {
		if b.IsActive() && b.Overlaps(start, end) {
			return b
		}
	}
	return nil
}
