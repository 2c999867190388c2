package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/config"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/models"
	"github.com/luyandaaaa/SafeVoice-sub000/pkg/cryptox"
	"github.com/luyandaaaa/SafeVoice-sub000/pkg/token"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/sirupsen/logrus"
)

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateMFA(ctx context.Context, id uuid.UUID, enabled bool, secret string) error
}

// RegisterInput - данные регистрации нового пользователя
type RegisterInput struct {
	Name              string
	Email             string
	Password          string
	Phone             string
	PreferredLanguage string
}

// LoginResult - результат первого шага логина. Если у пользователя включена
// MFA, выдается только pending-токен, и клиент обязан подтвердить TOTP-код.
type LoginResult struct {
	User        *models.User
	Token       string
	MFARequired bool
}

// MFAEnrollment - секрет и otpauth-ссылка для настройки аутентификатора
type MFAEnrollment struct {
	Secret string
	URL    string
}

// AuthService определяет контракт для регистрации, входа и MFA
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	CompleteMFALogin(ctx context.Context, pendingToken, code string) (*LoginResult, error)
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	SetMFAStatus(ctx context.Context, userID uuid.UUID, enabled bool) (*models.User, error)
	EnrollTOTP(ctx context.Context, userID uuid.UUID) (*MFAEnrollment, error)
	VerifyTOTP(ctx context.Context, userID uuid.UUID, code string) (*models.User, error)
}

type authService struct {
	users  UserRepository
	tokens *token.Manager
	logger *logrus.Logger
	cfg    *config.Config
}

func NewAuthService(users UserRepository, tokens *token.Manager, logger *logrus.Logger, cfg *config.Config) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		logger: logger,
		cfg:    cfg,
	}
}

// Register создает пользователя и сразу выдает токен доступа
func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.User, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Register",
	})
	log.Info("Attempting to register a new user")

	user := &models.User{
		Email:             normalizeEmail(input.Email),
		Name:              input.Name,
		Phone:             input.Phone,
		PreferredLanguage: input.PreferredLanguage,
		Role:              models.RoleReporter,
	}
	if user.PreferredLanguage == "" {
		user.PreferredLanguage = "en"
	}

	hash, err := cryptox.HashPassword(input.Password)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, "", fmt.Errorf("service: could not hash password: %w", err)
	}
	user.PasswordHash = hash

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrConflict) {
			log.Warn("Registration with duplicate email")
			return nil, "", ErrConflict
		}
		log.WithError(err).Error("Failed to create user in repository")
		return nil, "", fmt.Errorf("service: could not create user: %w", err)
	}

	accessToken, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		log.WithError(err).Error("Failed to issue access token")
		return nil, "", fmt.Errorf("service: could not issue token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return user, accessToken, nil
}

// Login проверяет учетные данные. Неизвестный email и неверный пароль
// дают один и тот же результат, чтобы не допускать перебор адресов.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
	})

	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Login attempt with unknown email")
			return nil, ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to get user by email")
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.WithField("user_id", user.ID).Warn("Login attempt with wrong password")
		return nil, ErrInvalidCredentials
	}

	if user.MFAEnabled {
		pending, err := s.tokens.GenerateMFAPendingToken(user.ID)
		if err != nil {
			log.WithError(err).Error("Failed to issue MFA pending token")
			return nil, fmt.Errorf("service: could not issue token: %w", err)
		}
		log.WithField("user_id", user.ID).Info("Login requires MFA confirmation")
		return &LoginResult{User: user, Token: pending, MFARequired: true}, nil
	}

	accessToken, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		log.WithError(err).Error("Failed to issue access token")
		return nil, fmt.Errorf("service: could not issue token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in successfully")
	return &LoginResult{User: user, Token: accessToken}, nil
}

// CompleteMFALogin завершает вход по pending-токену и TOTP-коду
func (s *authService) CompleteMFALogin(ctx context.Context, pendingToken, code string) (*LoginResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "CompleteMFALogin",
	})

	userID, err := s.tokens.ParseMFAPendingToken(pendingToken)
	if err != nil {
		log.WithError(err).Warn("Invalid MFA pending token")
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to get user by id")
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}

	if !user.MFAEnabled || user.MFASecret == "" {
		return nil, ErrMFANotEnrolled
	}
	if !totp.Validate(code, user.MFASecret) {
		log.WithField("user_id", user.ID).Warn("Invalid TOTP code on login")
		return nil, ErrInvalidTOTPCode
	}

	accessToken, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		log.WithError(err).Error("Failed to issue access token")
		return nil, fmt.Errorf("service: could not issue token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("MFA login completed successfully")
	return &LoginResult{User: user, Token: accessToken}, nil
}

// UserByID возвращает пользователя по идентификатору из токена
func (s *authService) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	return user, nil
}

// SetMFAStatus переключает MFA. Включение возможно только после
// подтверждения секрета через VerifyTOTP, выключение стирает секрет.
func (s *authService) SetMFAStatus(ctx context.Context, userID uuid.UUID, enabled bool) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "SetMFAStatus",
		"user_id": userID,
	})

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}

	if enabled {
		if user.MFASecret == "" {
			return nil, ErrMFANotEnrolled
		}
		if user.MFAEnabled {
			return user, nil
		}
		if err := s.users.UpdateMFA(ctx, userID, true, user.MFASecret); err != nil {
			log.WithError(err).Error("Failed to enable MFA")
			return nil, fmt.Errorf("service: could not update MFA: %w", err)
		}
		user.MFAEnabled = true
		log.Info("MFA enabled")
		return user, nil
	}

	if err := s.users.UpdateMFA(ctx, userID, false, ""); err != nil {
		log.WithError(err).Error("Failed to disable MFA")
		return nil, fmt.Errorf("service: could not update MFA: %w", err)
	}
	user.MFAEnabled = false
	user.MFASecret = ""
	log.Info("MFA disabled")
	return user, nil
}

// EnrollTOTP генерирует TOTP-секрет. MFA при этом еще не включается -
// пользователь сначала обязан подтвердить код через VerifyTOTP.
func (s *authService) EnrollTOTP(ctx context.Context, userID uuid.UUID) (*MFAEnrollment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "EnrollTOTP",
		"user_id": userID,
	})

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	if user.MFAEnabled {
		return nil, ErrMFAAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.cfg.MFAIssuer,
		AccountName: user.Email,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		log.WithError(err).Error("Failed to generate TOTP key")
		return nil, fmt.Errorf("service: could not generate TOTP key: %w", err)
	}

	if err := s.users.UpdateMFA(ctx, userID, false, key.Secret()); err != nil {
		log.WithError(err).Error("Failed to store TOTP secret")
		return nil, fmt.Errorf("service: could not store TOTP secret: %w", err)
	}

	log.Info("TOTP enrollment started")
	return &MFAEnrollment{Secret: key.Secret(), URL: key.URL()}, nil
}

// VerifyTOTP проверяет код и включает MFA
func (s *authService) VerifyTOTP(ctx context.Context, userID uuid.UUID, code string) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "VerifyTOTP",
		"user_id": userID,
	})

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	if user.MFASecret == "" {
		return nil, ErrMFANotEnrolled
	}
	if !totp.Validate(code, user.MFASecret) {
		log.Warn("Invalid TOTP code on verification")
		return nil, ErrInvalidTOTPCode
	}

	if err := s.users.UpdateMFA(ctx, userID, true, user.MFASecret); err != nil {
		log.WithError(err).Error("Failed to enable MFA")
		return nil, fmt.Errorf("service: could not update MFA: %w", err)
	}
	user.MFAEnabled = true

	log.Info("MFA verified and enabled")
	return user, nil
}

// normalizeEmail приводит email к каноническому виду для поиска и уникальности
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
