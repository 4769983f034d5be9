package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/muebleria-pos/internal/application/reconciler"
	"github.com/jhoicas/muebleria-pos/internal/application/store"
	"github.com/jhoicas/muebleria-pos/internal/domain/feed"
	"github.com/jhoicas/muebleria-pos/pkg/config"
	"github.com/jhoicas/muebleria-pos/pkg/logger"
)

// Bootstrapper carga el snapshot inicial de todas las colecciones.
type Bootstrapper interface {
	LoadAll(ctx context.Context) (store.Snapshot, error)
}

// FeedSource abre la suscripción al canal de cambios; el canal devuelto se
// cierra cuando ctx se cancela.
type FeedSource interface {
	Start(ctx context.Context) <-chan feed.Event
}

// SessionManager administra la sesión única del operador. La suscripción al
// feed y el reconciliador viven atados al ciclo de vida de la sesión: nacen
// en el login y mueren (vía cancelación de contexto) en el logout, sea manual
// o por inactividad.
type SessionManager struct {
	store  *store.Store
	boot   Bootstrapper
	source FeedSource
	recon  *reconciler.Reconciler
	cfg    config.SessionConfig
	log    *logger.Logger

	mu           sync.Mutex
	sessionID    string
	cancel       context.CancelFunc
	lastActivity time.Time
}

// NewSessionManager crea el administrador de sesión.
func NewSessionManager(st *store.Store, boot Bootstrapper, source FeedSource, recon *reconciler.Reconciler, cfg config.SessionConfig, log *logger.Logger) *SessionManager {
	return &SessionManager{store: st, boot: boot, source: source, recon: recon, cfg: cfg, log: log}
}

// Open inicia una sesión nueva: cierra la anterior si existía, carga el
// snapshot remoto en el estado local y arranca el feed, el reconciliador y el
// watchdog de inactividad. Devuelve el id de sesión.
func (m *SessionManager) Open(ctx context.Context) (string, error) {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
		m.sessionID = ""
	}
	m.mu.Unlock()

	snap, err := m.boot.LoadAll(ctx)
	if err != nil {
		return "", err
	}
	m.store.ReplaceAll(snap)

	sessionCtx, cancel := context.WithCancel(context.Background())
	events := m.source.Start(sessionCtx)

	id := uuid.New().String()
	m.mu.Lock()
	m.sessionID = id
	m.cancel = cancel
	m.lastActivity = time.Now()
	m.mu.Unlock()

	go m.recon.Run(sessionCtx, events)
	go m.watchdog(sessionCtx, id)

	m.log.Info().Str("session_id", id).
		Int("productos", len(snap.Products)).Int("variaciones", len(snap.Variations)).
		Msg("Sesión iniciada, feed de cambios activo")
	return id, nil
}

// Touch registra actividad de la sesión. Devuelve false si la sesión ya no
// está vigente (logout manual o por inactividad).
func (m *SessionManager) Touch(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sessionID == "" || m.sessionID != sessionID {
		return false
	}
	m.lastActivity = time.Now()
	return true
}

// Active indica si la sesión sigue vigente sin registrar actividad.
func (m *SessionManager) Active(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionID != "" && m.sessionID == sessionID
}

// Close cierra la sesión si coincide con la vigente: cancela el contexto del
// feed y del reconciliador. Cerrar una sesión ya cerrada es no-op.
func (m *SessionManager) Close(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sessionID == "" || m.sessionID != sessionID {
		return
	}
	m.cancel()
	m.cancel = nil
	m.sessionID = ""
	m.log.Info().Str("session_id", sessionID).Msg("Sesión cerrada")
}

// watchdog revisa cada PollInterval si la sesión superó el límite de
// inactividad y en ese caso la cierra.
func (m *SessionManager) watchdog(ctx context.Context, sessionID string) {
	ticker := time.NewTicker(m.cfg.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.mu.Lock()
			expired := m.sessionID == sessionID && time.Since(m.lastActivity) > m.cfg.IdleLimit
			m.mu.Unlock()
			if expired {
				m.log.Warn().Str("session_id", sessionID).
					Dur("limite", m.cfg.IdleLimit).Msg("Sesión expirada por inactividad")
				m.Close(sessionID)
				return
			}
		}
	}
}
