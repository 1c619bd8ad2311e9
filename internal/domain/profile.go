package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile per-account metadata; ID equals the account id
type Profile struct {
	ID        uuid.UUID
	FullName  *string
	Phone     *string
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Account учетная запись для входа
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
