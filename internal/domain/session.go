package domain

import "github.com/google/uuid"

// Session контекст аутентифицированного запроса
// Создается middleware один раз на запрос и передается через context
type Session struct {
	UserID  uuid.UUID
	Email   string
	Profile *Profile
}

// IsAdmin проверяет флаг администратора в профиле
func (s *Session) IsAdmin() bool {
	return s != nil && s.Profile != nil && s.Profile.IsAdmin
}
