package feed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/muebleria-pos/internal/domain/feed"
)

// Caso 1: Sobre de INSERT con la fila nueva completa.
func TestDecode_Insert(t *testing.T) {
	payload := `{"table":"products","type":"INSERT","record":{"id":"p1","name":"Plywood"},"old":null}`

	ev, err := feed.Decode([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, feed.TableProducts, ev.Table)
	assert.Equal(t, feed.OpInsert, ev.Op)
	assert.JSONEq(t, `{"id":"p1","name":"Plywood"}`, string(ev.Record))
	assert.Empty(t, ev.OldKey)
}

// Caso 2: Sobre de DELETE lleva solo la clave en old.
func TestDecode_DeleteConId(t *testing.T) {
	payload := `{"table":"variations","type":"DELETE","record":null,"old":{"id":"v7"}}`

	ev, err := feed.Decode([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, feed.OpDelete, ev.Op)
	assert.Equal(t, "v7", ev.OldKey)
}

// Caso 3: Para categories la clave es el nombre.
func TestDecode_DeleteDeCategoriaUsaNombre(t *testing.T) {
	payload := `{"table":"categories","type":"DELETE","record":null,"old":{"name":"Lamps"}}`

	ev, err := feed.Decode([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, "Lamps", ev.OldKey)
}

// Caso 4: Payload malformado devuelve error.
func TestDecode_PayloadInvalido(t *testing.T) {
	_, err := feed.Decode([]byte(`{"table":`))
	assert.Error(t, err)
}
