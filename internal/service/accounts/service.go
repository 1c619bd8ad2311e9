package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/Andrez18/lummoo-core/internal/domain"
	accountRepo "github.com/Andrez18/lummoo-core/internal/infra/storage/account"
	"github.com/Andrez18/lummoo-core/internal/service/accounts/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// maxPasswordBytes предел bcrypt; тег max считает символы, а не байты
const maxPasswordBytes = 72

// Service регистрация и вход пользователей
type Service struct {
	accountRepo AccountRepository
	profileRepo ProfileRepository
	issuer      TokenIssuer
	txManager   TransactionManager
	bcryptCost  int
	logger      Logger
}

// NewService создает новый экземпляр сервиса учетных записей
func NewService(
	accountRepo AccountRepository,
	profileRepo ProfileRepository,
	issuer TokenIssuer,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		issuer:      issuer,
		txManager:   txManager,
		bcryptCost:  bcrypt.DefaultCost,
		logger:      logger,
	}
}

// Register создает учетную запись и профиль (не администратор) в одной транзакции
// Используется и для самостоятельной регистрации, и администратором
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AccountResponse, error) {
	req.Email = domain.NormalizeEmail(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)

	s.logger.Info("Register: email=%s", req.Email)

	// 1. Валидация входных данных
	if err := validate.Struct(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(req.Password) > maxPasswordBytes {
		s.logger.Warn("Register: password is %d bytes, limit is %d", len(req.Password), maxPasswordBytes)
		return nil, fmt.Errorf("%w: password exceeds %d bytes", ErrInvalidInput, maxPasswordBytes)
	}

	// 2. Хэшируем пароль
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}

	// 3. Аккаунт и профиль создаются атомарно
	var account *domain.Account
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := s.accountRepo.Create(txCtx, req.Email, string(hash))
		if err != nil {
			if errors.Is(err, accountRepo.ErrEmailAlreadyRegistered) {
				return ErrEmailAlreadyRegistered
			}
			return fmt.Errorf("%w: failed to create account: %v", ErrInternal, err)
		}

		if _, err := s.profileRepo.EnsureExists(txCtx, created.ID); err != nil {
			return fmt.Errorf("%w: failed to create profile: %v", ErrInternal, err)
		}
		if _, err := s.profileRepo.Update(txCtx, created.ID, &req.FullName, nil); err != nil {
			return fmt.Errorf("%w: failed to set profile name: %v", ErrInternal, err)
		}

		account = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrEmailAlreadyRegistered) {
			s.logger.Warn("Register: email=%s already registered", req.Email)
			return nil, ErrEmailAlreadyRegistered
		}
		s.logger.Error("Register: %v", err)
		if !errors.Is(err, ErrInternal) {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	s.logger.Info("Register: created account id=%s", account.ID)
	return &models.AccountResponse{
		ID:        account.ID,
		Email:     account.Email,
		FullName:  req.FullName,
		CreatedAt: account.CreatedAt,
	}, nil
}

// Login проверяет пароль и выпускает токен сессии
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	req.Email = domain.NormalizeEmail(req.Email)

	if err := validate.Struct(req); err != nil {
		s.logger.Warn("Login: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	account, err := s.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			s.logger.Warn("Login: unknown email=%s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for email=%s", req.Email)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.issuer.Issue(account.ID, account.Email)
	if err != nil {
		s.logger.Error("Login: failed to issue token for user=%s: %v", account.ID, err)
		return nil, fmt.Errorf("%w: failed to issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user=%s signed in", account.ID)
	return &models.TokenResponse{Token: token, ExpiresAt: expiresAt, UserID: account.ID}, nil
}
