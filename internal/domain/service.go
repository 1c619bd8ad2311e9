package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service represents a bookable offering of a business
type Service struct {
	ID          uuid.UUID
	BusinessID  uuid.UUID
	Name        string
	Description *string
	Price       float64
	Duration    int // минуты
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Заполняется при выборке с join на businesses
	BusinessName string
}

// EffectiveDuration длительность услуги с запасным значением 60 минут
func (s *Service) EffectiveDuration() int {
	if s.Duration <= 0 {
		return DefaultServiceDuration
	}
	return s.Duration
}

// FormatDuration форматирует длительность: "30min", "1h", "1h 30min"
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%dmin", mins)
	case mins == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dmin", hours, mins)
	}
}
