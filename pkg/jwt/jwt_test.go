package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := Generate(testSecret, TypeAccess, testUserID, "partner1@example.com", "partner", "test", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := Parse(testSecret, TypeAccess, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, testUserID, claims.Subject)
	assert.Equal(t, "partner1@example.com", claims.Email)
	assert.Equal(t, "partner", claims.Role)
	assert.Equal(t, TypeAccess, claims.Type)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := Generate(testSecret, TypeAccess, testUserID, "", "admin", "test", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(testSecret, TypeAccess, tok)
	assert.True(t, errors.Is(err, ErrExpired), "got %v", err)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := Generate(testSecret, TypeAccess, testUserID, "", "admin", "test", time.Hour)
	require.NoError(t, err)

	_, err = Parse("otro-secret-completamente-distinto", TypeAccess, tok)
	assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
}

func TestParse_TipoIncorrecto(t *testing.T) {
	tok, err := Generate(testSecret, TypeReset, testUserID, "", "", "test", time.Hour)
	require.NoError(t, err)

	_, err = Parse(testSecret, TypeAccess, tok)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := Generate("", TypeAccess, testUserID, "", "admin", "test", time.Hour)
	assert.Error(t, err)
}
