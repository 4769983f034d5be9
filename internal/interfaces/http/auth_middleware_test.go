package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/muebleria-pos/internal/application/auth"
	"github.com/jhoicas/muebleria-pos/internal/application/reconciler"
	"github.com/jhoicas/muebleria-pos/internal/application/store"
	"github.com/jhoicas/muebleria-pos/internal/domain/feed"
	apphttp "github.com/jhoicas/muebleria-pos/internal/interfaces/http"
	"github.com/jhoicas/muebleria-pos/pkg/config"
	pkgjwt "github.com/jhoicas/muebleria-pos/pkg/jwt"
	"github.com/jhoicas/muebleria-pos/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "muebleria-pos-test"
	testExpMin    = 60
)

type fakeBoot struct{}

func (fakeBoot) LoadAll(context.Context) (store.Snapshot, error) { return store.Snapshot{}, nil }

type fakeFeed struct{}

func (fakeFeed) Start(ctx context.Context) <-chan feed.Event {
	out := make(chan feed.Event)
	go func() {
		<-ctx.Done()
		close(out)
	}()
	return out
}

type fakeCats struct{}

func (fakeCats) FetchCategories() ([]string, error) { return nil, nil }

func newSessions() *auth.SessionManager {
	st := store.New()
	recon := reconciler.New(st, fakeCats{}, logger.Nop())
	cfg := config.SessionConfig{IdleLimit: time.Hour, PollInterval: time.Minute}
	return auth.NewSessionManager(st, fakeBoot{}, fakeFeed{}, recon, cfg, logger.Nop())
}

// buildTestApp construye una aplicación Fiber mínima con el AuthMiddleware y
// un handler dummy que devuelve 200 si pasa el middleware.
func buildTestApp(sessions *auth.SessionManager) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, sessions),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":        true,
				"sessionId": apphttp.GetSessionID(c),
			})
		},
	)
	return app
}

// tokenForSession genera un JWT atado al id de sesión.
func tokenForSession(t *testing.T, sessionID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, sessionID, "owner", testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body["code"]
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Token válido con sesión abierta → HTTP 200 y sessionId en locals.
func TestAuthMiddleware_SesionVigente(t *testing.T) {
	sessions := newSessions()
	sessionID, err := sessions.Open(context.Background())
	require.NoError(t, err)
	defer sessions.Close(sessionID)

	app := buildTestApp(sessions)
	resp := doRequest(t, app, tokenForSession(t, sessionID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, sessionID, body["sessionId"])
}

// Caso 2: Sin header Authorization → 401 MISSING_TOKEN.
func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp(newSessions())
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", errorCode(t, resp))
}

// Caso 3: Header sin el prefijo Bearer → 401 INVALID_TOKEN.
func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp(newSessions())
	resp := doRequest(t, app, "Token abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp))
}

// Caso 4: Token firmado con otro secreto → 401 INVALID_TOKEN.
func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secreto", "s1", "owner", testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp(newSessions())
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp))
}

// Caso 5: Token válido pero la sesión ya se cerró → 401 SESSION_EXPIRED. El
// token JWT sigue firmado y sin expirar; lo que manda es la sesión viva.
func TestAuthMiddleware_SesionCerrada(t *testing.T) {
	sessions := newSessions()
	sessionID, err := sessions.Open(context.Background())
	require.NoError(t, err)
	token := tokenForSession(t, sessionID)
	sessions.Close(sessionID)

	app := buildTestApp(sessions)
	resp := doRequest(t, app, token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "SESSION_EXPIRED", errorCode(t, resp))
}
