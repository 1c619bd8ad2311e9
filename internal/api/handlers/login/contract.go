package login

import (
	"context"

	"github.com/Andrez18/lummoo-core/internal/service/accounts/models"
)

type AccountService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
