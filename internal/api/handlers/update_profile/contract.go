package update_profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/service/profiles/models"
)

type ProfileService interface {
	Update(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
