package get_available_slots

import (
	"time"

	"github.com/Andrez18/lummoo-core/internal/domain"
	"github.com/Andrez18/lummoo-core/pkg/types"
)

// generateSlots слоты внутри рабочего дня с шагом step, не пересекающиеся с записями
// Для сегодняшней даты слоты, начинающиеся не позже текущего времени, отбрасываются
func generateSlots(
	day *domain.DaySchedule,
	duration int,
	step int,
	bookings []*domain.Booking,
	date time.Time,
	now time.Time,
) ([]domain.Slot, error) {
	slots := make([]domain.Slot, 0)

	// Бизнес закрыт в этот день
	if day == nil || day.Closed {
		return slots, nil
	}

	openTime, err := types.NewTimeStringFromString(day.Open)
	if err != nil {
		return nil, err
	}
	closeTime, err := types.NewTimeStringFromString(day.Close)
	if err != nil {
		return nil, err
	}

	var notAfter types.TimeString
	today := isSameDay(date, now)
	if today {
		notAfter = types.NewTimeString(now)
	}

	for start := openTime; start.IsBefore(closeTime); {
		end, err := start.AddMinutes(duration)
		if err != nil || end.IsAfter(closeTime) {
			break
		}

		elapsed := today && !start.IsAfter(notAfter)
		if !elapsed && !overlapsAny(bookings, start, end) {
			slots = append(slots, domain.Slot{Start: start, End: end})
		}

		start, err = start.AddMinutes(step)
		if err != nil {
			break
		}
	}

	return slots, nil
}

// staticSlots фиксированные метки без учета расписания и записей
func staticSlots(duration int) []domain.Slot {
	slots := make([]domain.Slot, 0)
	for start := range domain.StaticSlots() {
		end, err := start.AddMinutes(duration)
		if err != nil {
			continue
		}
		slots = append(slots, domain.Slot{Start: start, End: end})
	}
	return slots
}

// overlapsAny пересечение [start, end) с активными записями
// Соседние интервалы (конец одного = начало другого) не пересекаются
func overlapsAny(bookings []*domain.Booking, start, end types.TimeString) bool {
	for _, b := range bookings {
		if b.IsActive() && b.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// isSameDay сравнивает календарные даты
func isSameDay(date time.Time, now time.Time) bool {
	return date.Year() == now.Year() && date.Month() == now.Month() && date.Day() == now.Day()
}

// isDateInPast дата раньше сегодняшней
func isDateInPast(date time.Time, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return day.Before(today)
}
