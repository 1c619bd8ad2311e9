package businesses

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
	businessRepo "github.com/Andrez18/lummoo-core/internal/infra/storage/business"
	"github.com/Andrez18/lummoo-core/internal/service/businesses/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Service сервис управления бизнесами владельца
type Service struct {
	businessRepo BusinessRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса бизнесов
func NewService(businessRepo BusinessRepository, logger Logger) *Service {
	return &Service{
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// Create создает бизнес; без расписания используется неделя по умолчанию
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req *models.BusinessRequest) (*models.BusinessResponse, error) {
	s.logger.Info("Create: user=%s, name=%q", userID, req.Name)

	if err := validateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed for user=%s: %v", userID, err)
		return nil, err
	}

	business := &domain.Business{UserID: userID}
	applyRequest(business, req)
	if business.BusinessHours == nil {
		business.BusinessHours = domain.DefaultBusinessHours()
	}

	created, err := s.businessRepo.Create(ctx, business)
	if err != nil {
		s.logger.Error("Create: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created business id=%s for user=%s", created.ID, userID)
	resp := models.FromDomainBusiness(created)
	return &resp, nil
}

// ListOwn бизнесы пользователя, сначала новые
func (s *Service) ListOwn(ctx context.Context, userID uuid.UUID) (*models.BusinessListResponse, error) {
	list, err := s.businessRepo.ListByOwner(ctx, userID)
	if err != nil {
		s.logger.Error("ListOwn: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: ListOwn - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBusinessList(list), nil
}

// GetOwn бизнес пользователя; чужой бизнес неотличим от отсутствующего
func (s *Service) GetOwn(ctx context.Context, userID, businessID uuid.UUID) (*models.BusinessResponse, error) {
	business, err := s.loadOwned(ctx, "GetOwn", userID, businessID)
	if err != nil {
		return nil, err
	}
	resp := models.FromDomainBusiness(business)
	return &resp, nil
}

// Update обновляет настройки бизнеса
func (s *Service) Update(ctx context.Context, userID, businessID uuid.UUID, req *models.BusinessRequest) (*models.BusinessResponse, error) {
	s.logger.Info("Update: user=%s, business=%s", userID, businessID)

	if err := validateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for business=%s: %v", businessID, err)
		return nil, err
	}

	business, err := s.loadOwned(ctx, "Update", userID, businessID)
	if err != nil {
		return nil, err
	}

	hours := business.BusinessHours
	applyRequest(business, req)
	if req.BusinessHours == nil {
		business.BusinessHours = hours
	}

	updated, err := s.businessRepo.Update(ctx, business)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("Update: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainBusiness(updated)
	return &resp, nil
}

func (s *Service) loadOwned(ctx context.Context, method string, userID, businessID uuid.UUID) (*domain.Business, error) {
	business, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("%s: business id=%s not found", method, businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("%s: repository error for business id=%s: %v", method, businessID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	if !business.IsOwnedBy(userID) {
		s.logger.Warn("%s: user=%s does not own business id=%s", method, userID, businessID)
		return nil, ErrBusinessNotFound
	}

	return business, nil
}

func validateRequest(req *models.BusinessRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = domain.NormalizeEmail(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Address = strings.TrimSpace(req.Address)

	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := req.BusinessHours.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func applyRequest(b *domain.Business, req *models.BusinessRequest) {
	b.Name = req.Name
	b.Description = req.Description
	b.Email = req.Email
	b.Phone = req.Phone
	b.Address = req.Address
	b.BusinessHours = req.BusinessHours
	b.Timezone = req.Timezone
	if b.Timezone == "" {
		b.Timezone = domain.DefaultTimezone
	}
}
