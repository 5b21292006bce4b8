package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/stonecrusher-api/internal/domain"
	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
	"github.com/jhoicas/stonecrusher-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
// RefreshSecret vacío = se firma con Secret.
type JWTConfig struct {
	Secret        string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	ResetTTL      time.Duration
	Issuer        string
}

// TokenPair par access + refresh emitido en login y en cada refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService emite, verifica y rota tokens.
// El rol del access token es una foto de la emisión: solo se vuelve a leer del
// Credential Store en Refresh.
type TokenService struct {
	cfg   JWTConfig
	users repository.UserRepository
}

// NewTokenService construye el servicio. users se usa solo en Refresh.
func NewTokenService(cfg JWTConfig, users repository.UserRepository) *TokenService {
	if cfg.RefreshSecret == "" {
		cfg.RefreshSecret = cfg.Secret
	}
	return &TokenService{cfg: cfg, users: users}
}

// Issue emite un par nuevo para el usuario.
func (s *TokenService) Issue(userID, role, email string) (TokenPair, error) {
	access, err := jwt.Generate(s.cfg.Secret, jwt.TypeAccess, userID, email, role, s.cfg.Issuer, s.cfg.AccessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := jwt.Generate(s.cfg.RefreshSecret, jwt.TypeRefresh, userID, email, role, s.cfg.Issuer, s.cfg.RefreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyAccess valida un access token. Devuelve domain.ErrTokenExpired o domain.ErrUnauthenticated.
func (s *TokenService) VerifyAccess(token string) (*jwt.Claims, error) {
	return verify(s.cfg.Secret, jwt.TypeAccess, token)
}

// Refresh valida el refresh token, relee el usuario y emite un par nuevo con el rol y email actuales.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := verify(s.cfg.RefreshSecret, jwt.TypeRefresh, refreshToken)
	if err != nil {
		return TokenPair{}, err
	}
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return TokenPair{}, err
	}
	if user == nil {
		return TokenPair{}, domain.Errorf(domain.ErrUserNotFound, "User no longer exists")
	}
	return s.Issue(user.ID, user.Role, user.Email)
}

// IssueReset emite el token de un solo propósito del enlace de recuperación.
func (s *TokenService) IssueReset(userID, email string) (string, error) {
	return jwt.Generate(s.cfg.Secret, jwt.TypeReset, userID, email, "", s.cfg.Issuer, s.cfg.ResetTTL)
}

// VerifyReset valida un token de recuperación.
func (s *TokenService) VerifyReset(token string) (*jwt.Claims, error) {
	return verify(s.cfg.Secret, jwt.TypeReset, token)
}

func verify(secret, tokenType, token string) (*jwt.Claims, error) {
	claims, err := jwt.Parse(secret, tokenType, token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpired) {
			return nil, domain.Errorf(domain.ErrTokenExpired, "Token expired")
		}
		return nil, domain.Errorf(domain.ErrUnauthenticated, "Invalid token")
	}
	return claims, nil
}
