package customers

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/service/customers/models"
)

// Service клиенты бизнесов владельца
type Service struct {
	customerRepo CustomerRepository
	businessRepo BusinessRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(customerRepo CustomerRepository, businessRepo BusinessRepository, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// List клиенты, записывавшиеся хотя бы в один бизнес пользователя, по имени
func (s *Service) List(ctx context.Context, userID uuid.UUID) (*models.CustomerListResponse, error) {
	businesses, err := s.businessRepo.ListByOwner(ctx, userID)
	if err != nil {
		s.logger.Error("List: business repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: List - business repository error: %v", ErrInternal, err)
	}
	if len(businesses) == 0 {
		return models.FromDomainCustomerList(nil), nil
	}

	ids := make([]uuid.UUID, 0, len(businesses))
	for _, b := range businesses {
		ids = append(ids, b.ID)
	}

	list, err := s.customerRepo.ListByBusinesses(ctx, ids)
	if err != nil {
		s.logger.Error("List: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d customers for user=%s", len(list), userID)
	return models.FromDomainCustomerList(list), nil
}
