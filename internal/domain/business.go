package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/pkg/types"
)

const (
	hoursLabelClosed        = "Cerrado"
	hoursLabelNotConfigured = "No configurado"
	hoursLabelUnavailable   = "No disponible"
)

// Business represents a tenant that owns services and receives bookings
type Business struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Description   *string
	Email         string
	Phone         string
	Address       string
	BusinessHours *BusinessHours // nil = часы не настроены
	Timezone      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DaySchedule расписание одного дня недели
type DaySchedule struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// BusinessHours расписание по дням недели, хранится в JSONB
type BusinessHours struct {
	Monday    *DaySchedule `json:"monday,omitempty"`
	Tuesday   *DaySchedule `json:"tuesday,omitempty"`
	Wednesday *DaySchedule `json:"wednesday,omitempty"`
	Thursday  *DaySchedule `json:"thursday,omitempty"`
	Friday    *DaySchedule `json:"friday,omitempty"`
	Saturday  *DaySchedule `json:"saturday,omitempty"`
	Sunday    *DaySchedule `json:"sunday,omitempty"`
}

// Weekday ключ и подпись дня недели
type Weekday struct {
	Key     string
	Label   string
	Weekday time.Weekday
}

// Weekdays дни недели в порядке отображения (с понедельника)
var Weekdays = []Weekday{
	{Key: "monday", Label: "Lunes", Weekday: time.Monday},
	{Key: "tuesday", Label: "Martes", Weekday: time.Tuesday},
	{Key: "wednesday", Label: "Miércoles", Weekday: time.Wednesday},
	{Key: "thursday", Label: "Jueves", Weekday: time.Thursday},
	{Key: "friday", Label: "Viernes", Weekday: time.Friday},
	{Key: "saturday", Label: "Sábado", Weekday: time.Saturday},
	{Key: "sunday", Label: "Domingo", Weekday: time.Sunday},
}

// DayHours строка расписания для отображения
type DayHours struct {
	Key   string
	Label string
	Hours string
}

// ErrInvalidBusinessHours некорректное расписание
var ErrInvalidBusinessHours = errors.New("invalid business hours")

// DefaultBusinessHours расписание для нового бизнеса:
// пн-пт 09:00-18:00, сб 09:00-14:00, вс выходной
func DefaultBusinessHours() *BusinessHours {
	weekday := func() *DaySchedule { return &DaySchedule{Open: "09:00", Close: "18:00"} }
	return &BusinessHours{
		Monday:    weekday(),
		Tuesday:   weekday(),
		Wednesday: weekday(),
		Thursday:  weekday(),
		Friday:    weekday(),
		Saturday:  &DaySchedule{Open: "09:00", Close: "14:00"},
		Sunday:    &DaySchedule{Open: "09:00", Close: "18:00", Closed: true},
	}
}

// Day возвращает расписание на день недели
func (h *BusinessHours) Day(day time.Weekday) *DaySchedule {
	if h == nil {
		return nil
	}
	switch day {
	case time.Monday:
		return h.Monday
	case time.Tuesday:
		return h.Tuesday
	case time.Wednesday:
		return h.Wednesday
	case time.Thursday:
		return h.Thursday
	case time.Friday:
		return h.Friday
	case time.Saturday:
		return h.Saturday
	case time.Sunday:
		return h.Sunday
	default:
		return nil
	}
}

// Validate проверяет формат HH:MM и что открытие раньше закрытия
func (h *BusinessHours) Validate() error {
	if h == nil {
		return nil
	}
	for _, wd := range Weekdays {
		day := h.Day(wd.Weekday)
		if day == nil || day.Closed {
			continue
		}
		open, err := types.NewTimeStringFromString(day.Open)
		if err != nil {
			return fmt.Errorf("%w: %s open: %v", ErrInvalidBusinessHours, wd.Key, err)
		}
		closeAt, err := types.NewTimeStringFromString(day.Close)
		if err != nil {
			return fmt.Errorf("%w: %s close: %v", ErrInvalidBusinessHours, wd.Key, err)
		}
		if !open.IsBefore(closeAt) {
			return fmt.Errorf("%w: %s opens at %s after closing at %s", ErrInvalidBusinessHours, wd.Key, open, closeAt)
		}
	}
	return nil
}

// Scan реализует sql.Scanner для JSONB
func (h *BusinessHours) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidBusinessHours, src)
	}
	return json.Unmarshal(raw, h)
}

// Value реализует driver.Valuer для JSONB
func (h *BusinessHours) Value() (driver.Value, error) {
	if h == nil {
		return nil, nil
	}
	data, err := json.Marshal(h)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// FormatDayHours подпись расписания дня: "Cerrado", "09:00 - 18:00"
// или missing, если день не настроен
func FormatDayHours(day *DaySchedule, missing string) string {
	if day == nil {
		return missing
	}
	if day.Closed {
		return hoursLabelClosed
	}
	return day.Open + " - " + day.Close
}

// EffectiveHours настроенное расписание или расписание по умолчанию
func (b *Business) EffectiveHours() *BusinessHours {
	if b.BusinessHours == nil {
		return DefaultBusinessHours()
	}
	return b.BusinessHours
}

// HoursDisplay расписание всей недели для страницы бизнеса
func (b *Business) HoursDisplay() []DayHours {
	result := make([]DayHours, 0, len(Weekdays))
	for _, wd := range Weekdays {
		result = append(result, DayHours{
			Key:   wd.Key,
			Label: wd.Label,
			Hours: FormatDayHours(b.BusinessHours.Day(wd.Weekday), hoursLabelNotConfigured),
		})
	}
	return result
}

// TodayHours подпись расписания на текущий день в часовом поясе бизнеса
func (b *Business) TodayHours(now time.Time) string {
	today := now.In(b.Location()).Weekday()
	return FormatDayHours(b.BusinessHours.Day(today), hoursLabelUnavailable)
}

// Location часовой пояс бизнеса (UTC, если не задан или некорректен)
func (b *Business) Location() *time.Location {
	if b.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// BookingLink относительная ссылка на публичную страницу бронирования
func (b *Business) BookingLink() string {
	return BookingLinkPrefix + b.ID.String()
}

// IsOwnedBy проверяет владельца
func (b *Business) IsOwnedBy(userID uuid.UUID) bool {
	return b.UserID == userID
}
