package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

// Коды SQLSTATE, которые сервис обрабатывает явно
const (
	CodeUniqueViolation      pq.ErrorCode = "23505"
	CodeForeignKeyViolation  pq.ErrorCode = "23503"
	CodeExclusionViolation   pq.ErrorCode = "23P01"
	CodeSerializationFailure pq.ErrorCode = "40001"
)

// As достает *pq.Error из цепочки ошибок
func As(err error) (*pq.Error, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr, true
	}
	return nil, false
}

// IsUniqueViolation нарушено ограничение уникальности
// Если constraint не пустой, проверяется и имя ограничения
func IsUniqueViolation(err error, constraint string) bool {
	return is(err, CodeUniqueViolation, constraint)
}

// IsExclusionViolation нарушено exclusion-ограничение
func IsExclusionViolation(err error, constraint string) bool {
	return is(err, CodeExclusionViolation, constraint)
}

// IsForeignKeyViolation нарушен внешний ключ
func IsForeignKeyViolation(err error) bool {
	return is(err, CodeForeignKeyViolation, "")
}

// IsSerializationFailure конфликт сериализуемых транзакций
func IsSerializationFailure(err error) bool {
	return is(err, CodeSerializationFailure, "")
}

func is(err error, code pq.ErrorCode, constraint string) bool {
	pqErr, ok := As(err)
	if !ok || pqErr.Code != code {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
