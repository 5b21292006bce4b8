package auth

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
	"github.com/jhoicas/stonecrusher-api/internal/application/ports"
	"github.com/jhoicas/stonecrusher-api/internal/domain"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase casos de uso de autenticación: login, refresh, recuperación de contraseña y alta.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	tokens      *TokenService
	mailer      ports.Mailer
	frontendURL string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tokens *TokenService, mailer ports.Mailer, frontendURL string) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokens: tokens, mailer: mailer, frontendURL: frontendURL}
}

// Login verifica email/password y emite el par de tokens.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Email = normalizeEmail(in.Email)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Errorf(domain.ErrInvalidCredentials, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.Errorf(domain.ErrInvalidCredentials, "Invalid credentials")
	}
	pair, err := uc.tokens.Issue(user.ID, user.Role, user.Email)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Role:         user.Role,
		Email:        user.Email,
	}, nil
}

// Refresh rota el par de tokens con el rol actual del usuario.
func (uc *AuthUseCase) Refresh(ctx context.Context, in dto.RefreshRequest) (*dto.TokenPairResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.Errorf(domain.ErrUnauthenticated, "No refresh token provided")
	}
	pair, err := uc.tokens.Refresh(ctx, in.RefreshToken)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

// RequestPasswordReset envía el enlace de recuperación al email indicado.
func (uc *AuthUseCase) RequestPasswordReset(ctx context.Context, in dto.ResetPasswordRequest) error {
	in.Email = normalizeEmail(in.Email)
	if err := dto.Validate(in); err != nil {
		return err
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.Errorf(domain.ErrUserNotFound, "User not found")
	}
	token, err := uc.tokens.IssueReset(user.ID, user.Email)
	if err != nil {
		return err
	}
	link := fmt.Sprintf("%s/reset-password/verify?token=%s", uc.frontendURL, url.QueryEscape(token))
	body := "Click to reset your password: " + link
	if err := uc.mailer.Send(ctx, []string{user.Email}, "Password Reset", body); err != nil {
		return fmt.Errorf("enviar email de recuperación: %w", err)
	}
	return nil
}

// ResetPassword valida el token de recuperación y reemplaza el hash.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.VerifyResetRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	claims, err := uc.tokens.VerifyReset(in.Token)
	if err != nil {
		return err
	}
	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.Errorf(domain.ErrUserNotFound, "User not found")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(ctx, user.ID, string(hash))
}

// Register crea un usuario con el rol indicado. Devuelve ErrDuplicate si el email ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*entity.User, error) {
	in.Email = normalizeEmail(in.Email)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Errorf(domain.ErrDuplicate, "Email already registered")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
