package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
	businessRepo "github.com/Andrez18/lummoo-core/internal/infra/storage/business"
	serviceRepo "github.com/Andrez18/lummoo-core/internal/infra/storage/service"
	"github.com/Andrez18/lummoo-core/internal/service/services/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Service сервис управления услугами владельца
type Service struct {
	serviceRepo  ServiceRepository
	businessRepo BusinessRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса услуг
func NewService(serviceRepo ServiceRepository, businessRepo BusinessRepository, logger Logger) *Service {
	return &Service{
		serviceRepo:  serviceRepo,
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// Create создает услугу в бизнесе пользователя
func (s *Service) Create(ctx context.Context, userID, businessID uuid.UUID, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: user=%s, business=%s, name=%q", userID, businessID, req.Name)

	if err := validateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	business, err := s.checkBusinessOwner(ctx, "Create", userID, businessID)
	if err != nil {
		return nil, err
	}

	service := &domain.Service{BusinessID: business.ID, IsActive: true}
	applyRequest(service, req)

	created, err := s.serviceRepo.Create(ctx, service)
	if err != nil {
		s.logger.Error("Create: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	created.BusinessName = business.Name

	resp := models.FromDomainService(created)
	return &resp, nil
}

// ListOwn услуги всех бизнесов пользователя, сначала новые
func (s *Service) ListOwn(ctx context.Context, userID uuid.UUID) (*models.ServiceListResponse, error) {
	list, err := s.serviceRepo.ListByOwner(ctx, userID)
	if err != nil {
		s.logger.Error("ListOwn: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: ListOwn - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServiceList(list), nil
}

// Update обновляет услугу
func (s *Service) Update(ctx context.Context, userID, serviceID uuid.UUID, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: user=%s, service=%s", userID, serviceID)

	if err := validateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	service, err := s.loadOwned(ctx, "Update", userID, serviceID)
	if err != nil {
		return nil, err
	}
	applyRequest(service, req)

	updated, err := s.serviceRepo.Update(ctx, service)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service=%s: %v", serviceID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainService(updated)
	return &resp, nil
}

// SetActive включает или скрывает услугу в публичном каталоге
func (s *Service) SetActive(ctx context.Context, userID, serviceID uuid.UUID, active bool) error {
	s.logger.Info("SetActive: user=%s, service=%s, active=%t", userID, serviceID, active)

	if _, err := s.loadOwned(ctx, "SetActive", userID, serviceID); err != nil {
		return err
	}

	if err := s.serviceRepo.SetActive(ctx, serviceID, active); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return ErrServiceNotFound
		}
		s.logger.Error("SetActive: repository error for service=%s: %v", serviceID, err)
		return fmt.Errorf("%w: SetActive - repository error: %v", ErrInternal, err)
	}
	return nil
}

// Delete удаляет услугу
func (s *Service) Delete(ctx context.Context, userID, serviceID uuid.UUID) error {
	s.logger.Info("Delete: user=%s, service=%s", userID, serviceID)

	if _, err := s.loadOwned(ctx, "Delete", userID, serviceID); err != nil {
		return err
	}

	if err := s.serviceRepo.Delete(ctx, serviceID); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for service=%s: %v", serviceID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	return nil
}

// loadOwned услуга, бизнес которой принадлежит пользователю
func (s *Service) loadOwned(ctx context.Context, method string, userID, serviceID uuid.UUID) (*domain.Service, error) {
	service, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("%s: service id=%s not found", method, serviceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("%s: repository error for service id=%s: %v", method, serviceID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	if _, err := s.checkBusinessOwner(ctx, method, userID, service.BusinessID); err != nil {
		if errors.Is(err, ErrBusinessNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	return service, nil
}

func (s *Service) checkBusinessOwner(ctx context.Context, method string, userID, businessID uuid.UUID) (*domain.Business, error) {
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

func validateRequest(req *models.ServiceRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func applyRequest(s *domain.Service, req *models.ServiceRequest) {
	s.Name = req.Name
	s.Description = req.Description
	s.Price = req.Price
	s.Duration = req.Duration
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}
}
