package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/muebleria-pos/internal/application/dto"
	"github.com/jhoicas/muebleria-pos/internal/domain"
	"github.com/jhoicas/muebleria-pos/pkg/config"
	"github.com/jhoicas/muebleria-pos/pkg/jwt"
	"github.com/jhoicas/muebleria-pos/pkg/logger"
)

// LoginUseCase autentica al operador único contra las credenciales fijas de
// configuración y abre la sesión.
type LoginUseCase struct {
	cfg      config.AuthConfig
	sessions *SessionManager
	log      *logger.Logger
}

// NewLoginUseCase crea el caso de uso de login.
func NewLoginUseCase(cfg config.AuthConfig, sessions *SessionManager, log *logger.Logger) *LoginUseCase {
	return &LoginUseCase{cfg: cfg, sessions: sessions, log: log}
}

// Execute valida usuario (case-insensitive) y contraseña (bcrypt), abre la
// sesión con su carga de snapshot y emite el token.
func (uc *LoginUseCase) Execute(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if !strings.EqualFold(strings.TrimSpace(req.Username), uc.cfg.Username) {
		uc.log.Warn().Str("usuario", req.Username).Msg("Intento de login con usuario desconocido")
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.cfg.PasswordHash), []byte(req.Password)); err != nil {
		uc.log.Warn().Str("usuario", req.Username).Msg("Intento de login con contraseña incorrecta")
		return nil, domain.ErrUnauthorized
	}

	sessionID, err := uc.sessions.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al abrir sesión: %w", err)
	}

	token, err := jwt.Generate(uc.cfg.JWTSecret, sessionID, uc.cfg.Username, uc.cfg.JWTIssuer, uc.cfg.JWTExpMin)
	if err != nil {
		uc.sessions.Close(sessionID)
		return nil, fmt.Errorf("error al generar token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		SessionID: sessionID,
		Username:  uc.cfg.Username,
		ExpiresAt: time.Now().Add(time.Duration(uc.cfg.JWTExpMin) * time.Minute).Unix(),
	}, nil
}

// Logout cierra la sesión indicada.
func (uc *LoginUseCase) Logout(sessionID string) {
	uc.sessions.Close(sessionID)
}
