package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-fuel-dashboard/internal/config"
	"github.com/MKhiriev/go-fuel-dashboard/internal/logger"
	"github.com/MKhiriev/go-fuel-dashboard/internal/store"
	"github.com/MKhiriev/go-fuel-dashboard/internal/utils"
	"github.com/MKhiriev/go-fuel-dashboard/internal/validators"
	"github.com/MKhiriev/go-fuel-dashboard/models"
	"golang.org/x/crypto/bcrypt"
)

// authService handles staff registration, credential checks and the JWT
// lifecycle. Passwords are stored as bcrypt hashes.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	// passwordCost is the bcrypt cost; values below bcrypt.MinCost fall back
	// to bcrypt.DefaultCost.
	passwordCost int

	// dummyHash is compared against when the login is unknown, so that such
	// attempts take as long as a wrong password.
	dummyHashOnce sync.Once
	dummyHash     []byte

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	adminLogin    string
	adminPassword string

	logger *logger.Logger
}

func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		passwordCost:   cfg.PasswordCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		adminLogin:     cfg.AdminLogin,
		adminPassword:  cfg.AdminPassword,
		logger:         logger,
	}
}

// RegisterUser hashes the password and persists the user.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if Login or Password is empty or too long;
//   - ErrInvalidRole if Role is not a known role;
//   - a wrapped store error, e.g. store.ErrLoginAlreadyExists.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Error().Err(err).Str("login", user.Login).Str("role", user.Role.String()).Msg("invalid user data provided")
		if errors.Is(err, validators.ErrInvalidRole) {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidRole, err)
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), a.passwordCost)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	user.PasswordHash = string(hash)
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login checks the credentials and returns the stored user. An unknown login
// and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user, validators.FieldLogin, validators.FieldPassword); err != nil {
		log.Error().Err(err).Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, user.Login)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("login", user.Login).Msg("login attempt for unknown user")
		a.compareWithDummyHash(user.Password)
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(user.Password)); err != nil {
		log.Warn().Int64("id", foundUser.UserID).Str("login", foundUser.Login).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

func (a *authService) compareWithDummyHash(password string) {
	a.dummyHashOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("fuel-dashboard-unknown-user"), a.passwordCost)
		if err != nil {
			a.logger.Err(err).Msg("dummy password hash generation failed")
			return
		}
		a.dummyHash = hash
	})
	if a.dummyHash == nil {
		return
	}
	_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(password))
}

// CreateToken issues a signed JWT carrying the user id and role.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT. Every validation failure is reported as
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) EnsureAdmin(ctx context.Context) error {
	if a.adminLogin == "" {
		return nil
	}

	count, err := a.userRepository.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("error counting users: %w", err)
	}
	if count > 0 {
		a.logger.Debug().Int64("users", count).Msg("users exist, bootstrap admin skipped")
		return nil
	}

	admin, err := a.RegisterUser(ctx, models.User{
		Login:    a.adminLogin,
		Name:     "Administrator",
		Password: a.adminPassword,
		Role:     models.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("error creating bootstrap admin: %w", err)
	}

	a.logger.Info().Str("login", admin.Login).Msg("bootstrap admin created")
	return nil
}
