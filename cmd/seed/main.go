// seed puebla la base con el catálogo de demostración (categorías, productos
// y variaciones de mueblería) sin pasar por el servidor.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que el servidor (DATABASE_URL o DB_*).
package main

import (
	"context"
	"os"

	"github.com/jhoicas/muebleria-pos/internal/infrastructure/postgres"
	"github.com/jhoicas/muebleria-pos/pkg/config"
	"github.com/jhoicas/muebleria-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("conexión a PostgreSQL")
		os.Exit(1)
	}
	defer pool.Close()

	gateway := postgres.NewGateway(pool, log)
	snap, err := gateway.LoadAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("carga inicial")
		os.Exit(1)
	}

	// LoadAll siembra solo si la base llega vacía; aquí solo reportamos.
	log.Info().
		Int("productos", len(snap.Products)).
		Int("variaciones", len(snap.Variations)).
		Int("categorias", len(snap.Categories)).
		Msg("catálogo disponible")
}
