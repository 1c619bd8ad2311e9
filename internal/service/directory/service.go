package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
	businessRepo "github.com/Andrez18/lummoo-core/internal/infra/storage/business"
	"github.com/Andrez18/lummoo-core/internal/service/directory/models"
)

// Service публичный справочник бизнесов и каталог услуг
type Service struct {
	businessRepo BusinessRepository
	serviceRepo  ServiceRepository
	now          func() time.Time
	logger       Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(businessRepo BusinessRepository, serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		businessRepo: businessRepo,
		serviceRepo:  serviceRepo,
		now:          time.Now,
		logger:       logger,
	}
}

// List все бизнесы по имени с активными услугами
func (s *Service) List(ctx context.Context) (*models.DirectoryResponse, error) {
	businesses, err := s.businessRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return s.withServices(ctx, "List", businesses)
}

// Search поиск по имени, описанию и адресу; пустой запрос возвращает весь список
func (s *Service) Search(ctx context.Context, term string) (*models.DirectoryResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.List(ctx)
	}

	s.logger.Info("Search: term=%q", term)

	businesses, err := s.businessRepo.Search(ctx, term)
	if err != nil {
		s.logger.Error("Search: repository error for term=%q: %v", term, err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	return s.withServices(ctx, "Search", businesses)
}

// GetCatalog бизнес и его активные услуги по имени
func (s *Service) GetCatalog(ctx context.Context, businessID uuid.UUID) (*models.CatalogResponse, error) {
	business, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("GetCatalog: business id=%s not found", businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetCatalog: repository error for business id=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetCatalog - repository error: %v", ErrInternal, err)
	}

	services, err := s.serviceRepo.ListActiveByBusinesses(ctx, []uuid.UUID{business.ID})
	if err != nil {
		s.logger.Error("GetCatalog: services repository error for business id=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetCatalog - services repository error: %v", ErrInternal, err)
	}

	return &models.CatalogResponse{
		Business: models.FromDomainBusiness(business, business.TodayHours(s.now()), services),
	}, nil
}

// withServices прикрепляет активные услуги к каждому бизнесу одним запросом
func (s *Service) withServices(ctx context.Context, method string, businesses []*domain.Business) (*models.DirectoryResponse, error) {
	ids := make([]uuid.UUID, 0, len(businesses))
	for _, b := range businesses {
		ids = append(ids, b.ID)
	}

	services, err := s.serviceRepo.ListActiveByBusinesses(ctx, ids)
	if err != nil {
		s.logger.Error("%s: services repository error: %v", method, err)
		return nil, fmt.Errorf("%w: %s - services repository error: %v", ErrInternal, method, err)
	}

	byBusiness := make(map[uuid.UUID][]*domain.Service, len(businesses))
	for _, svc := range services {
		if !svc.IsActive {
			continue
		}
		byBusiness[svc.BusinessID] = append(byBusiness[svc.BusinessID], svc)
	}

	now := s.now()
	resp := &models.DirectoryResponse{Businesses: make([]models.BusinessResponse, 0, len(businesses))}
	for _, b := range businesses {
		resp.Businesses = append(resp.Businesses, models.FromDomainBusiness(b, b.TodayHours(now), byBusiness[b.ID]))
	}

	return resp, nil
}
