package get_available_slots

import (
	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
	getAvailableSlots "github.com/Andrez18/lummoo-core/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string         `json:"date"`
	BusinessID      uuid.UUID      `json:"businessId"`
	ServiceID       uuid.UUID      `json:"serviceId"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{StartTime: s.Start.String(), EndTime: s.End.String()})
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		BusinessID:      resp.BusinessID,
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
