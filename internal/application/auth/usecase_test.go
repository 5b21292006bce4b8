package auth

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
	"github.com/jhoicas/stonecrusher-api/internal/domain"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/infrastructure/memory"
	"github.com/jhoicas/stonecrusher-api/pkg/jwt"
)

type sentMail struct {
	to      []string
	subject string
	body    string
}

type fakeMailer struct{ sent []sentMail }

func (m *fakeMailer) Send(_ context.Context, to []string, subject, body string) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type fixture struct {
	uc     *AuthUseCase
	tokens *TokenService
	users  *memory.UserRepo
	mailer *fakeMailer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	users := memory.NewUserRepository(memory.NewStore())
	tokens := NewTokenService(JWTConfig{
		Secret:        "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     time.Hour,
		RefreshTTL:    24 * time.Hour,
		ResetTTL:      time.Hour,
		Issuer:        "test",
	}, users)
	mailer := &fakeMailer{}
	uc := NewAuthUseCase(users, tokens, mailer, "http://frontend.test")
	_, err := uc.Seed(context.Background(), DefaultAccounts)
	require.NoError(t, err)
	return &fixture{uc: uc, tokens: tokens, users: users, mailer: mailer}
}

func TestLogin_OK(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.Login(context.Background(), dto.LoginRequest{Email: " Admin@Example.com ", Password: "Admin123!"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	assert.Equal(t, "admin@example.com", out.Email)

	claims, err := f.tokens.VerifyAccess(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Login(context.Background(), dto.LoginRequest{Email: "admin@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.uc.Login(context.Background(), dto.LoginRequest{Email: "nobody@example.com", Password: "Admin123!"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRefresh_UsaRolActual(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	login, err := f.uc.Login(ctx, dto.LoginRequest{Email: "operator1@example.com", Password: "Operator123!"})
	require.NoError(t, err)

	user, err := f.users.GetByEmail(ctx, "operator1@example.com")
	require.NoError(t, err)
	f.users.SetRole(user.ID, entity.RoleAdmin)

	// El access token viejo conserva el rol de la emisión.
	old, err := f.tokens.VerifyAccess(login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOperator, old.Role)

	pair, err := f.uc.Refresh(ctx, dto.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	fresh, err := f.tokens.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, fresh.Role)
}

func TestRefresh_UsuarioEliminado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	login, err := f.uc.Login(ctx, dto.LoginRequest{Email: "partner1@example.com", Password: "Partner123!"})
	require.NoError(t, err)

	user, _ := f.users.GetByEmail(ctx, "partner1@example.com")
	f.users.Delete(user.ID)

	_, err = f.uc.Refresh(ctx, dto.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRefresh_AccessTokenNoSirve(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	login, err := f.uc.Login(ctx, dto.LoginRequest{Email: "admin@example.com", Password: "Admin123!"})
	require.NoError(t, err)

	_, err = f.uc.Refresh(ctx, dto.RefreshRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = f.uc.Refresh(ctx, dto.RefreshRequest{})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestRefresh_Vencido(t *testing.T) {
	f := newFixture(t)
	user, _ := f.users.GetByEmail(context.Background(), "admin@example.com")
	tok, err := jwt.Generate("refresh-secret", jwt.TypeRefresh, user.ID, user.Email, user.Role, "test", -time.Minute)
	require.NoError(t, err)

	_, err = f.uc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: tok})
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestPasswordReset_Flujo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.uc.RequestPasswordReset(ctx, dto.ResetPasswordRequest{Email: "partner1@example.com"}))
	require.Len(t, f.mailer.sent, 1)
	mail := f.mailer.sent[0]
	assert.Equal(t, []string{"partner1@example.com"}, mail.to)
	assert.Equal(t, "Password Reset", mail.subject)

	idx := strings.Index(mail.body, "http://frontend.test/reset-password/verify?token=")
	require.GreaterOrEqual(t, idx, 0, mail.body)
	link, err := url.Parse(strings.TrimSpace(mail.body[idx:]))
	require.NoError(t, err)
	token := link.Query().Get("token")

	require.NoError(t, f.uc.ResetPassword(ctx, dto.VerifyResetRequest{Token: token, NewPassword: "NuevaClave123"}))

	_, err = f.uc.Login(ctx, dto.LoginRequest{Email: "partner1@example.com", Password: "Partner123!"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = f.uc.Login(ctx, dto.LoginRequest{Email: "partner1@example.com", Password: "NuevaClave123"})
	assert.NoError(t, err)
}

func TestPasswordReset_EmailDesconocido(t *testing.T) {
	f := newFixture(t)
	err := f.uc.RequestPasswordReset(context.Background(), dto.ResetPasswordRequest{Email: "ghost@example.com"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Empty(t, f.mailer.sent)
}

func TestResetPassword_TokenDeAccesoRechazado(t *testing.T) {
	f := newFixture(t)
	login, err := f.uc.Login(context.Background(), dto.LoginRequest{Email: "admin@example.com", Password: "Admin123!"})
	require.NoError(t, err)

	err = f.uc.ResetPassword(context.Background(), dto.VerifyResetRequest{Token: login.AccessToken, NewPassword: "NuevaClave123"})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestResetPassword_ClaveCorta(t *testing.T) {
	f := newFixture(t)
	err := f.uc.ResetPassword(context.Background(), dto.VerifyResetRequest{Token: "x", NewPassword: "short"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegister_Duplicado(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Register(context.Background(), dto.RegisterRequest{Email: "ADMIN@example.com", Password: "Password1", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_RolInvalido(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Register(context.Background(), dto.RegisterRequest{Email: "new@example.com", Password: "Password1", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSeed_Idempotente(t *testing.T) {
	f := newFixture(t)
	created, err := f.uc.Seed(context.Background(), DefaultAccounts)
	require.NoError(t, err)
	assert.Zero(t, created)

	partners, err := f.users.ListByRole(context.Background(), entity.RolePartner)
	require.NoError(t, err)
	assert.Len(t, partners, 1)
}
