package bookings

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Andrez18/lummoo-core/internal/domain"
)

const whatsAppBaseURL = "https://wa.me/"

// reminderMessage текст напоминания; дата в формате д/м/гггг
func reminderMessage(b *domain.BookingDetails) string {
	date := fmt.Sprintf("%d/%d/%d", b.BookingDate.Day(), int(b.BookingDate.Month()), b.BookingDate.Year())
	return fmt.Sprintf("Hola %s, te recordamos tu cita para el %s a las %s. ¡Te esperamos!",
		b.CustomerName, date, b.StartTime)
}

// reminderURL ссылка wa.me: в номере остаются только цифры, текст закодирован как компонент URL
func reminderURL(phone, message string) string {
	number := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return whatsAppBaseURL + number + "?text=" + text
}
