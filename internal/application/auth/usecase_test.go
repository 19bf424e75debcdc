package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/fullerpub/barstock-api/internal/application/auth"
	"github.com/fullerpub/barstock-api/internal/application/dto"
	"github.com/fullerpub/barstock-api/internal/domain"
	"github.com/fullerpub/barstock-api/internal/domain/entity"
	pkgjwt "github.com/fullerpub/barstock-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del puerto AccountRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeAccountRepo struct {
	rows   map[string]*entity.Account // por id
	getErr error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{rows: make(map[string]*entity.Account)}
}

func (f *fakeAccountRepo) Create(a *entity.Account) error {
	cp := *a
	f.rows[a.ID] = &cp
	return nil
}

func (f *fakeAccountRepo) GetByID(id string) (*entity.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	a, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccountRepo) GetByEmail(email string) (*entity.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, a := range f.rows {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) SetResetToken(id, token string, expires time.Time) error {
	a, ok := f.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.ResetToken = token
	a.ResetExpires = expires
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testSecret = "secret-de-test-no-usar-en-prod"

func buildUseCase(t *testing.T) (*appauth.AuthUseCase, *fakeAccountRepo, *fakeProfileRepo) {
	t.Helper()
	accounts := newFakeAccountRepo()
	profiles := newFakeProfileRepo()
	uc := appauth.NewAuthUseCase(
		accounts,
		appauth.NewResolver(profiles, nil),
		appauth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "barstock-test"},
		appauth.RateConfig{PerMinute: 60, Burst: 60},
		nil,
	)
	return uc, accounts, profiles
}

func register(t *testing.T, uc *appauth.AuthUseCase, email, password string) *dto.AccountResponse {
	t.Helper()
	acc, err := uc.Register(dto.RegisterRequest{Email: email, Password: password})
	require.NoError(t, err)
	return acc
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _, _ := buildUseCase(t)
	register(t, uc, "anna@fullerpub.ru", "contraseña123")

	_, err := uc.Register(dto.RegisterRequest{Email: "anna@fullerpub.ru", Password: "otra-cosa"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Escenario del bootstrap completo: la cuenta A entra primero y queda admin,
// la cuenta B entra después y queda staff.
func TestLogin_PrimerYSegundoUsuario(t *testing.T) {
	uc, _, _ := buildUseCase(t)
	register(t, uc, "anna@fullerpub.ru", "contraseña123")
	register(t, uc, "boris@fullerpub.ru", "contraseña456")

	outA, err := uc.Login(dto.LoginRequest{Email: "anna@fullerpub.ru", Password: "contraseña123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, outA.Profile.Role)
	assert.Equal(t, entity.Bar1, outA.Profile.BarNumber)

	outB, err := uc.Login(dto.LoginRequest{Email: "boris@fullerpub.ru", Password: "contraseña456"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, outB.Profile.Role)

	// Los claims del token reflejan el perfil resuelto.
	userID, role, bar, err := pkgjwt.Parse(testSecret, outB.Token)
	require.NoError(t, err)
	assert.Equal(t, outB.Profile.ID, userID)
	assert.Equal(t, entity.RoleStaff, role)
	assert.Equal(t, entity.Bar1, bar)
}

// Un segundo login de la misma cuenta entra por la rama "encontrado".
func TestLogin_Reingreso_MismoPerfil(t *testing.T) {
	uc, _, profiles := buildUseCase(t)
	register(t, uc, "anna@fullerpub.ru", "contraseña123")

	out1, err := uc.Login(dto.LoginRequest{Email: "anna@fullerpub.ru", Password: "contraseña123"})
	require.NoError(t, err)
	out2, err := uc.Login(dto.LoginRequest{Email: "anna@fullerpub.ru", Password: "contraseña123"})
	require.NoError(t, err)

	assert.Equal(t, out1.Profile.ID, out2.Profile.ID)
	assert.Equal(t, out1.Profile.Role, out2.Profile.Role)
	assert.Len(t, profiles.rows, 1)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _, _ := buildUseCase(t)
	register(t, uc, "anna@fullerpub.ru", "contraseña123")

	_, err := uc.Login(dto.LoginRequest{Email: "anna@fullerpub.ru", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@fullerpub.ru", Password: "da-igual"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials,
		"email inexistente y password incorrecto deben ser indistinguibles")
}

func TestLogin_CuentaSinConfirmarOInactiva(t *testing.T) {
	uc, accounts, _ := buildUseCase(t)
	acc := register(t, uc, "anna@fullerpub.ru", "contraseña123")

	accounts.rows[acc.ID].EmailConfirmed = false
	_, err := uc.Login(dto.LoginRequest{Email: "anna@fullerpub.ru", Password: "contraseña123"})
	assert.ErrorIs(t, err, domain.ErrEmailNotConfirmed)

	accounts.rows[acc.ID].EmailConfirmed = true
	accounts.rows[acc.ID].Status = entity.AccountInactive
	_, err = uc.Login(dto.LoginRequest{Email: "anna@fullerpub.ru", Password: "contraseña123"})
	assert.ErrorIs(t, err, domain.ErrAccountInactive)
}

// Si el perfil no se resuelve, el login falla completo y no se emite token.
func TestLogin_FalloDeResolucion_NoEmiteToken(t *testing.T) {
	uc, _, profiles := buildUseCase(t)
	register(t, uc, "anna@fullerpub.ru", "contraseña123")
	profiles.countErr = errors.New("almacén caído")

	out, err := uc.Login(dto.LoginRequest{Email: "anna@fullerpub.ru", Password: "contraseña123"})
	assert.ErrorIs(t, err, domain.ErrProfileResolution)
	assert.Nil(t, out)
}

func TestLogin_RateLimited(t *testing.T) {
	accounts := newFakeAccountRepo()
	profiles := newFakeProfileRepo()
	uc := appauth.NewAuthUseCase(
		accounts,
		appauth.NewResolver(profiles, nil),
		appauth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "barstock-test"},
		appauth.RateConfig{PerMinute: 1, Burst: 2},
		nil,
	)

	// Dos intentos de burst permitidos, el tercero inmediato se corta.
	_, _ = uc.Login(dto.LoginRequest{Email: "x@fullerpub.ru", Password: "a"})
	_, _ = uc.Login(dto.LoginRequest{Email: "x@fullerpub.ru", Password: "a"})
	_, err := uc.Login(dto.LoginRequest{Email: "x@fullerpub.ru", Password: "a"})
	assert.ErrorIs(t, err, domain.ErrRateLimited)

	// Otro email no comparte el límite.
	_, err = uc.Login(dto.LoginRequest{Email: "y@fullerpub.ru", Password: "a"})
	assert.NotErrorIs(t, err, domain.ErrRateLimited)
}

func TestRequestPasswordReset(t *testing.T) {
	uc, accounts, _ := buildUseCase(t)
	acc := register(t, uc, "anna@fullerpub.ru", "contraseña123")

	// Email desconocido: sin error, sin filtrar existencia.
	require.NoError(t, uc.RequestPasswordReset("nadie@fullerpub.ru"))

	require.NoError(t, uc.RequestPasswordReset("anna@fullerpub.ru"))
	stored := accounts.rows[acc.ID]
	assert.NotEmpty(t, stored.ResetToken)
	assert.True(t, stored.ResetExpires.After(time.Now()))
}
