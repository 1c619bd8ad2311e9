package domain

import (
	"iter"

	"github.com/Andrez18/lummoo-core/pkg/types"
)

// Slot свободный интервал для бронирования
type Slot struct {
	Start types.TimeString
	End   types.TimeString
}

// StaticSlots фиксированная последовательность 09:00, 09:30 ... 17:00
// Не зависит от расписания бизнеса и существующих бронирований.
// Каждый range начинает последовательность заново.
func StaticSlots() iter.Seq[types.TimeString] {
	return func(yield func(types.TimeString) bool) {
		first, _ := types.TimeString(StaticSlotsFirst).Minutes()
		last, _ := types.TimeString(StaticSlotsLast).Minutes()

		for m := first; m <= last; m += StaticSlotsStep {
			label, err := types.FromMinutes(m)
			if err != nil {
				return
			}
			if !yield(label) {
				return
			}
		}
	}
}
