package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/muebleria-pos/internal/application/auth"
	"github.com/jhoicas/muebleria-pos/internal/application/dto"
	"github.com/jhoicas/muebleria-pos/internal/application/store"
	"github.com/jhoicas/muebleria-pos/internal/domain"
	"github.com/jhoicas/muebleria-pos/pkg/config"
	pkgjwt "github.com/jhoicas/muebleria-pos/pkg/jwt"
	"github.com/jhoicas/muebleria-pos/pkg/logger"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testPassword = "chauhan123"
)

func authConfig(t *testing.T) config.AuthConfig {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return config.AuthConfig{
		Username:     "owner",
		PasswordHash: string(hash),
		JWTSecret:    testSecret,
		JWTIssuer:    "muebleria-pos-test",
		JWTExpMin:    60,
	}
}

func nuevoLogin(t *testing.T) (*auth.LoginUseCase, *auth.SessionManager) {
	t.Helper()
	m := newManager(store.New(), &fakeBoot{}, newFakeFeed())
	return auth.NewLoginUseCase(authConfig(t), m, logger.Nop()), m
}

// Caso 1: Credenciales correctas abren sesión y emiten un token válido.
func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, m := nuevoLogin(t)

	out, err := uc.Execute(context.Background(), dto.LoginRequest{
		Username: "owner", Password: testPassword,
	})
	require.NoError(t, err)
	defer m.Close(out.SessionID)

	assert.Equal(t, "owner", out.Username)
	assert.True(t, m.Active(out.SessionID))

	sessionID, username, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.SessionID, sessionID)
	assert.Equal(t, "owner", username)
}

// Caso 2: El usuario no distingue mayúsculas.
func TestLogin_UsuarioCaseInsensitive(t *testing.T) {
	uc, m := nuevoLogin(t)

	out, err := uc.Execute(context.Background(), dto.LoginRequest{
		Username: "  OWNER ", Password: testPassword,
	})
	require.NoError(t, err)
	m.Close(out.SessionID)
}

// Caso 3: Contraseña incorrecta.
func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := nuevoLogin(t)

	_, err := uc.Execute(context.Background(), dto.LoginRequest{
		Username: "owner", Password: "incorrecta",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Caso 4: Usuario desconocido.
func TestLogin_UsuarioDesconocido(t *testing.T) {
	uc, _ := nuevoLogin(t)

	_, err := uc.Execute(context.Background(), dto.LoginRequest{
		Username: "admin", Password: testPassword,
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Caso 5: Logout cierra la sesión emitida en el login.
func TestLogin_LogoutCierraSesion(t *testing.T) {
	uc, m := nuevoLogin(t)

	out, err := uc.Execute(context.Background(), dto.LoginRequest{
		Username: "owner", Password: testPassword,
	})
	require.NoError(t, err)

	uc.Logout(out.SessionID)
	assert.False(t, m.Active(out.SessionID))
}
