package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tipos de token. El claim "typ" impide usar un refresh o reset token como access token.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
	TypeReset   = "reset"
)

var (
	// ErrExpired el token tiene firma válida pero ya venció.
	ErrExpired = errors.New("jwt: token expirado")
	// ErrInvalid firma, formato, tipo o claims incorrectos.
	ErrInvalid = errors.New("jwt: token inválido")
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Role es una foto del rol al momento de emitir el token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
	Type   string `json:"typ"`
}

// Generate genera un token firmado HS256 con el tipo y la vigencia indicados.
func Generate(secret, tokenType, userID, email, role, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
		Type:   tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma, vigencia y tipo del token y devuelve sus claims.
// Devuelve ErrExpired si solo falla la expiración; ErrInvalid en cualquier otro caso.
func Parse(secret, tokenType, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalid
	}
	if claims.Type != tokenType || claims.UserID == "" {
		return nil, ErrInvalid
	}
	return claims, nil
}
