package service

import (
	"context"
	"time"

	"github.com/gersonomarperezsalguero/backend-pinateria/internal/dto"
	"github.com/gersonomarperezsalguero/backend-pinateria/internal/metrics"
	"github.com/gersonomarperezsalguero/backend-pinateria/internal/model"
)

type ProductoRepository interface {
	Insert(ctx context.Context, p *model.Producto) (string, error)
	FindAll(ctx context.Context) ([]*model.Producto, error)
	UpdateFields(ctx context.Context, id string, cambios map[string]any) error
	Delete(ctx context.Context, id string) error
}

type ProductoService struct {
	repo    ProductoRepository
	metrics *metrics.Metrics
}

func NewProductoService(r ProductoRepository, m *metrics.Metrics) *ProductoService {
	return &ProductoService{repo: r, metrics: m}
}

func (s *ProductoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (string, error) {
	producto := &model.Producto{
		Nombre:    req.Nombre,
		Detalles:  req.Detalles,
		Precio:    req.Precio,
		Foto:      req.Foto,
		Timestamp: time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, producto)
	if err != nil {
		return "", err
	}

	s.metrics.ProductoCreado()
	return id, nil
}

func (s *ProductoService) Listar(ctx context.Context) ([]*model.Producto, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductoService) Actualizar(ctx context.Context, id string, cambios map[string]any) error {
	for _, campo := range camposInmutables {
		delete(cambios, campo)
	}
	if len(cambios) == 0 {
		return ErrSinCambios
	}

	if err := s.repo.UpdateFields(ctx, id, cambios); err != nil {
		return err
	}

	s.metrics.ProductoActualizado()
	return nil
}

func (s *ProductoService) Eliminar(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.metrics.ProductoEliminado()
	return nil
}
