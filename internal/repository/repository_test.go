package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Un id que no es hex de ObjectID no puede existir en la colección:
// el guard corta con ErrNotFound antes de tocar la base, así que
// estos casos se prueban sin Mongo.
func TestMongoPedidoRepository_IDInvalido(t *testing.T) {
	t.Parallel()

	repo := &MongoPedidoRepository{}
	ctx := context.Background()

	casos := []string{"no-es-un-id", "", "zzzzzzzzzzzzzzzzzzzzzzzz", "abc123"}
	for _, id := range casos {
		assert.ErrorIs(t, repo.UpdateFields(ctx, id, map[string]any{"entregado": true}), ErrNotFound, "UpdateFields(%q)", id)
		assert.ErrorIs(t, repo.Delete(ctx, id), ErrNotFound, "Delete(%q)", id)
	}
}

func TestMongoProductoRepository_IDInvalido(t *testing.T) {
	t.Parallel()

	repo := &MongoProductoRepository{}
	ctx := context.Background()

	casos := []string{"tampoco-es-id", "", "123"}
	for _, id := range casos {
		assert.ErrorIs(t, repo.UpdateFields(ctx, id, map[string]any{"precio": 100}), ErrNotFound, "UpdateFields(%q)", id)
		assert.ErrorIs(t, repo.Delete(ctx, id), ErrNotFound, "Delete(%q)", id)
	}
}
