package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
)

// Options режим генерации слотов
type Options struct {
	StepMinutes int  // шаг между началами слотов
	Static      bool // фиксированный список 09:00-17:00 без учета расписания
}

// Request модель запроса на получение доступных слотов
type Request struct {
	BusinessID uuid.UUID
	ServiceID  uuid.UUID
	Date       string // YYYY-MM-DD
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time
	BusinessID      uuid.UUID
	ServiceID       uuid.UUID
	DurationMinutes int
	Slots           []domain.Slot
}
