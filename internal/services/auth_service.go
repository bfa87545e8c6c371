package services

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AgiAbhishek/Vendor-shop/internal/auth"
	"github.com/AgiAbhishek/Vendor-shop/internal/models"
	"github.com/AgiAbhishek/Vendor-shop/internal/repository"
)

// RegisterInput is the payload for vendor registration.
type RegisterInput struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput is the payload for vendor login.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenPair is the login response: a short-lived access token and a
// long-lived refresh token.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthService registers vendors and issues bearer tokens.
type AuthService struct {
	vendors  repository.VendorRepository
	tokens   *auth.TokenManager
	validate *validator.Validate
}

// NewAuthService creates a new AuthService.
func NewAuthService(vendors repository.VendorRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		vendors:  vendors,
		tokens:   tokens,
		validate: newValidator(),
	}
}

// Register creates a vendor account with a bcrypt password hash.
func (s *AuthService) Register(input *RegisterInput) (*models.Vendor, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, &ValidationError{Detail: validationDetail(err)}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	vendor := &models.Vendor{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
	}
	if err := s.vendors.Create(vendor); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateVendor
		}
		return nil, errors.Wrap(err, "failed to create vendor")
	}
	return vendor, nil
}

// Login verifies the credentials and issues an access/refresh token pair.
func (s *AuthService) Login(input *LoginInput) (*TokenPair, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, &ValidationError{Detail: validationDetail(err)}
	}

	vendor, err := s.vendors.GetByUsername(input.Username)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(vendor.PasswordHash), []byte(input.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(vendor.ID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(vendor.ID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", ErrInvalidToken
	}
	return s.tokens.GenerateAccessToken(claims.VendorID)
}
