package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Customer represents a person who books services; shared across businesses
type Customer struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// NormalizeEmail приводит email к ключу идентичности клиента
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
