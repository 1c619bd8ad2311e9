package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
	profileRepo "github.com/Andrez18/lummoo-core/internal/infra/storage/profile"
	"github.com/Andrez18/lummoo-core/internal/service/profiles/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Service профили и сессии пользователей
type Service struct {
	profileRepo ProfileRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса профилей
func NewService(profileRepo ProfileRepository, logger Logger) *Service {
	return &Service{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// LoadSession собирает сессию запроса; отсутствующий профиль создается без прав администратора
func (s *Service) LoadSession(ctx context.Context, userID uuid.UUID, email string) (*domain.Session, error) {
	profile, err := s.profileRepo.EnsureExists(ctx, userID)
	if err != nil {
		s.logger.Error("LoadSession: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: LoadSession - repository error: %v", ErrInternal, err)
	}

	return &domain.Session{
		UserID:  userID,
		Email:   email,
		Profile: profile,
	}, nil
}

// Update обновляет имя и телефон; пустые строки очищают поле
func (s *Service) Update(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	s.logger.Info("Update: user=%s", userID)

	if err := validate.Struct(req); err != nil {
		s.logger.Warn("Update: validation failed for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	profile, err := s.profileRepo.Update(ctx, userID, normalize(req.FullName), normalize(req.Phone))
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("Update: profile for user=%s not found", userID)
			return nil, ErrProfileNotFound
		}
		s.logger.Error("Update: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfile(profile), nil
}

func normalize(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
