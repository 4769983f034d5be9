package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/muebleria-pos/internal/application/auth"
	"github.com/jhoicas/muebleria-pos/internal/application/reconciler"
	"github.com/jhoicas/muebleria-pos/internal/application/store"
	"github.com/jhoicas/muebleria-pos/internal/domain/entity"
	"github.com/jhoicas/muebleria-pos/internal/domain/feed"
	"github.com/jhoicas/muebleria-pos/pkg/config"
	"github.com/jhoicas/muebleria-pos/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeBoot struct {
	snap  store.Snapshot
	calls int
}

func (f *fakeBoot) LoadAll(context.Context) (store.Snapshot, error) {
	f.calls++
	return f.snap, nil
}

// fakeFeed entrega un canal que se cierra cuando ctx se cancela, igual que el
// listener real.
type fakeFeed struct {
	events chan feed.Event
	starts int
}

func newFakeFeed() *fakeFeed {
	return &fakeFeed{events: make(chan feed.Event, 8)}
}

func (f *fakeFeed) Start(ctx context.Context) <-chan feed.Event {
	f.starts++
	out := make(chan feed.Event)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-f.events:
				if !ok {
					return
				}
				out <- ev
			}
		}
	}()
	return out
}

type fakeCats struct{ names []string }

func (f *fakeCats) FetchCategories() ([]string, error) { return f.names, nil }

func newManager(st *store.Store, boot *fakeBoot, src *fakeFeed) *auth.SessionManager {
	recon := reconciler.New(st, &fakeCats{}, logger.Nop())
	cfg := config.SessionConfig{IdleLimit: time.Hour, PollInterval: 10 * time.Millisecond}
	return auth.NewSessionManager(st, boot, src, recon, cfg, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida de la sesión
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Open carga el snapshot en el estado y arranca el feed.
func TestOpen_CargaEstadoYArrancaFeed(t *testing.T) {
	st := store.New()
	boot := &fakeBoot{snap: store.Snapshot{
		Products:   []entity.Product{{ID: "p1", Name: "Plywood"}},
		Categories: []string{"Plywood"},
	}}
	src := newFakeFeed()
	m := newManager(st, boot, src)

	id, err := m.Open(context.Background())
	require.NoError(t, err)
	defer m.Close(id)

	assert.NotEmpty(t, id)
	assert.Equal(t, 1, boot.calls)
	assert.Equal(t, 1, src.starts)
	assert.Len(t, st.Snapshot().Products, 1)
	assert.True(t, m.Active(id))
}

// Caso 2: Los eventos del feed llegan al estado mientras la sesión vive.
func TestOpen_FeedAlimentaElEstado(t *testing.T) {
	st := store.New()
	src := newFakeFeed()
	m := newManager(st, &fakeBoot{}, src)

	id, err := m.Open(context.Background())
	require.NoError(t, err)
	defer m.Close(id)

	src.events <- feed.Event{
		Table:  feed.TableProducts,
		Op:     feed.OpInsert,
		Record: []byte(`{"id":"p9","name":"Veneers"}`),
	}

	require.Eventually(t, func() bool {
		_, ok := st.ProductByID("p9")
		return ok
	}, time.Second, 5*time.Millisecond, "el reconciliador debe aplicar el evento")
}

// Caso 3: Close invalida la sesión; Touch posterior devuelve false.
func TestClose_InvalidaLaSesion(t *testing.T) {
	m := newManager(store.New(), &fakeBoot{}, newFakeFeed())

	id, err := m.Open(context.Background())
	require.NoError(t, err)
	require.True(t, m.Touch(id))

	m.Close(id)

	assert.False(t, m.Touch(id), "la sesión cerrada no acepta actividad")
	assert.False(t, m.Active(id))
	m.Close(id) // cerrar dos veces es no-op
}

// Caso 4: Abrir una sesión nueva cierra la anterior.
func TestOpen_CierraLaSesionAnterior(t *testing.T) {
	src := newFakeFeed()
	m := newManager(store.New(), &fakeBoot{}, src)

	primera, err := m.Open(context.Background())
	require.NoError(t, err)
	segunda, err := m.Open(context.Background())
	require.NoError(t, err)
	defer m.Close(segunda)

	assert.False(t, m.Active(primera))
	assert.True(t, m.Active(segunda))
	assert.Equal(t, 2, src.starts)
}

// Caso 5: El watchdog cierra la sesión que supera el límite de inactividad.
func TestWatchdog_CierraPorInactividad(t *testing.T) {
	st := store.New()
	recon := reconciler.New(st, &fakeCats{}, logger.Nop())
	cfg := config.SessionConfig{IdleLimit: 30 * time.Millisecond, PollInterval: 10 * time.Millisecond}
	m := auth.NewSessionManager(st, &fakeBoot{}, newFakeFeed(), recon, cfg, logger.Nop())

	id, err := m.Open(context.Background())
	require.NoError(t, err)

	require.Eventually(t, func() bool { return !m.Active(id) },
		time.Second, 10*time.Millisecond, "la sesión debe expirar sola")
}

// Caso 6: La actividad continua mantiene viva la sesión.
func TestWatchdog_TouchReiniciaElReloj(t *testing.T) {
	st := store.New()
	recon := reconciler.New(st, &fakeCats{}, logger.Nop())
	cfg := config.SessionConfig{IdleLimit: 60 * time.Millisecond, PollInterval: 10 * time.Millisecond}
	m := auth.NewSessionManager(st, &fakeBoot{}, newFakeFeed(), recon, cfg, logger.Nop())

	id, err := m.Open(context.Background())
	require.NoError(t, err)
	defer m.Close(id)

	for i := 0; i < 5; i++ {
		time.Sleep(20 * time.Millisecond)
		require.True(t, m.Touch(id), "la sesión debe seguir viva mientras hay actividad")
	}
}
