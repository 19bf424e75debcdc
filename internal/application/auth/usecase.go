package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/fullerpub/barstock-api/internal/application/dto"
	"github.com/fullerpub/barstock-api/internal/domain"
	"github.com/fullerpub/barstock-api/internal/domain/entity"
	"github.com/fullerpub/barstock-api/internal/domain/repository"
	"github.com/fullerpub/barstock-api/pkg/jwt"
	"github.com/fullerpub/barstock-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// RateConfig límite de intentos de login por email.
type RateConfig struct {
	PerMinute int
	Burst     int
}

// AuthUseCase casos de uso de autenticación: registro de cuenta, login con
// resolución de perfil y solicitud de reset de contraseña.
type AuthUseCase struct {
	accounts repository.AccountRepository
	resolver *Resolver
	jwtCfg   JWTConfig
	limiter  *loginLimiter
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(accounts repository.AccountRepository, resolver *Resolver, jwtCfg JWTConfig, rateCfg RateConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		accounts: accounts,
		resolver: resolver,
		jwtCfg:   jwtCfg,
		limiter:  newLoginLimiter(rateCfg),
		log:      log,
	}
}

// Register crea una cuenta: hashea el password con bcrypt y persiste.
// No crea el perfil; eso es exclusivo del resolver en el primer login.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AccountResponse, error) {
	existing, err := uc.accounts.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	account := &entity.Account{
		ID:             uuid.New().String(),
		Email:          in.Email,
		PasswordHash:   string(hash),
		EmailConfirmed: true, // sin flujo de confirmación por correo
		Status:         entity.AccountActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.accounts.Create(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// Login verifica credenciales, resuelve el perfil y genera el JWT.
// Si el perfil no se puede resolver NO se emite token: una sesión sin rol
// dejaría todas las decisiones de autorización sin base.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if !uc.limiter.allow(in.Email) {
		return nil, domain.ErrRateLimited
	}
	account, err := uc.accounts.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !account.EmailConfirmed {
		return nil, domain.ErrEmailNotConfirmed
	}
	if account.Status != entity.AccountActive {
		return nil, domain.ErrAccountInactive
	}

	profile, err := uc.resolver.Resolve(account.ID, account.Email)
	if err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, profile.ID, profile.Role, profile.BarNumber, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Profile: *toProfileResponse(profile),
	}, nil
}

// RequestPasswordReset emite un token de reset con caducidad de una hora.
// Responde igual exista o no la cuenta para no filtrar emails registrados.
// El envío del correo queda fuera; el token se registra en el log.
func (uc *AuthUseCase) RequestPasswordReset(email string) error {
	account, err := uc.accounts.GetByEmail(email)
	if err != nil {
		return err
	}
	if account == nil {
		return nil
	}
	token := uuid.New().String()
	if err := uc.accounts.SetResetToken(account.ID, token, time.Now().Add(time.Hour)); err != nil {
		return err
	}
	if uc.log != nil {
		uc.log.Info().Str("account_id", account.ID).Str("reset_token", token).Msg("token de reset emitido")
	}
	return nil
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:             a.ID,
		Email:          a.Email,
		EmailConfirmed: a.EmailConfirmed,
		Status:         a.Status,
	}
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		Role:      p.Role,
		BarNumber: p.BarNumber,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// loginLimiter mantiene un rate.Limiter por email.
type loginLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newLoginLimiter(cfg RateConfig) *loginLimiter {
	perMinute := cfg.PerMinute
	if perMinute <= 0 {
		perMinute = 5
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = perMinute
	}
	return &loginLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
	}
}

func (l *loginLimiter) allow(email string) bool {
	l.mu.Lock()
	lim, ok := l.limiters[email]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[email] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}
