package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gersonomarperezsalguero/backend-pinateria/internal/dto"
	"github.com/gersonomarperezsalguero/backend-pinateria/internal/metrics"
	"github.com/gersonomarperezsalguero/backend-pinateria/internal/model"
	"github.com/gersonomarperezsalguero/backend-pinateria/internal/repository"
)

type fakeProductoRepo struct {
	docs map[string]map[string]any
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{docs: make(map[string]map[string]any)}
}

func (f *fakeProductoRepo) Insert(_ context.Context, p *model.Producto) (string, error) {
	p.ID = primitive.NewObjectID()
	doc, err := toDoc(p)
	if err != nil {
		return "", err
	}
	f.docs[p.ID.Hex()] = doc
	return p.ID.Hex(), nil
}

func (f *fakeProductoRepo) FindAll(_ context.Context) ([]*model.Producto, error) {
	out := make([]*model.Producto, 0, len(f.docs))
	for _, doc := range f.docs {
		var p model.Producto
		if err := fromDoc(doc, &p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (f *fakeProductoRepo) UpdateFields(_ context.Context, id string, cambios map[string]any) error {
	doc, ok := f.docs[id]
	if !ok {
		return repository.ErrNotFound
	}
	for k, v := range cambios {
		doc[k] = v
	}
	return nil
}

func (f *fakeProductoRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.docs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.docs, id)
	return nil
}

func (f *fakeProductoRepo) producto(t *testing.T, id string) *model.Producto {
	t.Helper()

	doc, ok := f.docs[id]
	require.True(t, ok, "el producto %s debe existir", id)

	var p model.Producto
	require.NoError(t, fromDoc(doc, &p))
	return &p
}

func productoService(t *testing.T) (*ProductoService, *fakeProductoRepo) {
	t.Helper()

	repo := newFakeProductoRepo()
	svc := NewProductoService(repo, metrics.New(prometheus.NewRegistry()))

	return svc, repo
}

func TestProductoService_Crear(t *testing.T) {
	t.Parallel()

	svc, repo := productoService(t)
	antes := time.Now().UTC()

	id, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:   "Piñata estrella",
		Detalles: "Siete picos, papel crepé",
		Precio:   350,
		Foto:     "https://fotos.example/estrella.jpg",
	})

	require.NoError(t, err)
	require.NotEmpty(t, id)

	guardado := repo.producto(t, id)
	assert.Equal(t, "Piñata estrella", guardado.Nombre)
	assert.Equal(t, 350.0, guardado.Precio)
	assert.False(t, guardado.Timestamp.Before(antes))
}

func TestProductoService_Actualizar(t *testing.T) {
	t.Parallel()

	t.Run("rechaza un change set vacío", func(t *testing.T) {
		svc, _ := productoService(t)

		err := svc.Actualizar(context.Background(), "cualquiera", map[string]any{})

		assert.ErrorIs(t, err, ErrSinCambios)
	})

	t.Run("devuelve not found si el producto no existe", func(t *testing.T) {
		svc, _ := productoService(t)

		err := svc.Actualizar(context.Background(), "inexistente", map[string]any{"precio": 400})

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("solo cambia los campos nombrados", func(t *testing.T) {
		svc, repo := productoService(t)
		id, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
			Nombre:   "Piñata burro",
			Detalles: "Clásica",
			Precio:   300,
			Foto:     "https://fotos.example/burro.jpg",
		})
		require.NoError(t, err)

		err = svc.Actualizar(context.Background(), id, map[string]any{"precio": 275.5})

		require.NoError(t, err)
		actualizado := repo.producto(t, id)
		assert.Equal(t, 275.5, actualizado.Precio)
		assert.Equal(t, "Piñata burro", actualizado.Nombre)
		assert.Equal(t, "Clásica", actualizado.Detalles)
	})

	t.Run("acepta y persiste campos fuera del esquema", func(t *testing.T) {
		svc, repo := productoService(t)
		id, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
			Nombre:   "Piñata burro",
			Detalles: "Clásica",
			Precio:   300,
			Foto:     "https://fotos.example/burro.jpg",
		})
		require.NoError(t, err)

		err = svc.Actualizar(context.Background(), id, map[string]any{"descuento": 10})

		require.NoError(t, err)
		assert.Equal(t, 10, repo.docs[id]["descuento"])
		assert.Equal(t, "Piñata burro", repo.docs[id]["nombre"])
	})
}

func TestProductoService_Eliminar(t *testing.T) {
	t.Parallel()

	svc, repo := productoService(t)
	id, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:   "Piñata unicornio",
		Detalles: "Con brillos",
		Precio:   500,
		Foto:     "https://fotos.example/unicornio.jpg",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(context.Background(), id))
	assert.Empty(t, repo.docs)
	assert.ErrorIs(t, svc.Eliminar(context.Background(), id), repository.ErrNotFound)
}
