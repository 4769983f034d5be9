package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/muebleria-pos/internal/domain/feed"
	"github.com/jhoicas/muebleria-pos/pkg/config"
	"github.com/jhoicas/muebleria-pos/pkg/logger"
)

// Listener suscribe un canal pg_notify que multiplexa los cambios de fila de
// las cinco tablas observadas (los triggers están en scripts/schema.sql) y
// los entrega como eventos tipados. Vive exactamente lo que dura la sesión:
// se arranca tras el login y se cancela en el logout.
type Listener struct {
	cfg     config.DBConfig
	channel string
	buffer  int
	log     *logger.Logger
}

// NewListener construye el listener. channel es el canal NOTIFY; buffer la
// capacidad del canal Go de salida.
func NewListener(cfg config.DBConfig, feedCfg config.FeedConfig, log *logger.Logger) *Listener {
	return &Listener{cfg: cfg, channel: feedCfg.Channel, buffer: feedCfg.Buffer, log: log}
}

// Start abre la suscripción y devuelve el canal de eventos. El canal se
// cierra cuando ctx se cancela. Ante pérdida de conexión reintenta con
// backoff exponencial; los eventos ocurridos durante la desconexión se
// pierden (el operador puede forzar una recarga completa).
func (l *Listener) Start(ctx context.Context) <-chan feed.Event {
	events := make(chan feed.Event, l.buffer)
	go func() {
		defer close(events)
		backoff := time.Second
		for {
			err := l.listenOnce(ctx, events)
			if ctx.Err() != nil {
				return
			}
			l.log.Warn().Err(err).Dur("reintento_en", backoff).Msg("suscripción al canal de cambios perdida")
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
		}
	}()
	return events
}

func (l *Listener) listenOnce(ctx context.Context, events chan<- feed.Event) error {
	conn, err := NewListenConn(ctx, l.cfg)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return err
	}
	l.log.Info().Str("canal", l.channel).Msg("suscripción al canal de cambios establecida")

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		ev, err := feed.Decode([]byte(n.Payload))
		if err != nil {
			l.log.Warn().Err(err).Str("payload", n.Payload).Msg("payload de notificación malformado, se omite")
			continue
		}
		select {
		case events <- ev:
		default:
			// Buffer lleno: descartar antes que bloquear la conexión LISTEN.
			l.log.Warn().Str("tabla", ev.Table).Str("op", ev.Op).Msg("buffer de eventos lleno, evento descartado")
		}
	}
}
