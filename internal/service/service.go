package service

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/gersonomarperezsalguero/backend-pinateria/internal/dto"
	"github.com/gersonomarperezsalguero/backend-pinateria/internal/metrics"
	"github.com/gersonomarperezsalguero/backend-pinateria/internal/model"
)

// Interfaz que debe implementar repository
type PedidoRepository interface {
	Insert(ctx context.Context, p *model.Pedido) (string, error)
	FindAll(ctx context.Context) ([]*model.Pedido, error)
	UpdateFields(ctx context.Context, id string, cambios map[string]any) error
	Delete(ctx context.Context, id string) error
}

// EventPublisher publica eventos del ciclo de vida del pedido.
// La publicación es best effort: nunca afecta la respuesta HTTP.
type EventPublisher interface {
	Publish(routingKey string, payload any)
}

// Errores de negocio exportados (los usa el controller)
var ErrSinCambios = errors.New("no se enviaron cambios")

// Campos que el PATCH nunca puede pisar.
var camposInmutables = []string{"id", "_id", "timestamp"}

type PedidoService struct {
	repo    PedidoRepository
	events  EventPublisher
	metrics *metrics.Metrics
}

func NewPedidoService(r PedidoRepository, events EventPublisher, m *metrics.Metrics) *PedidoService {
	return &PedidoService{repo: r, events: events, metrics: m}
}

// Crear arma el pedido con sus valores iniciales: timestamp del
// servidor y banderas de estado apagadas.
func (s *PedidoService) Crear(ctx context.Context, req dto.CrearPedidoRequest) (string, error) {
	pedido := &model.Pedido{
		NombreCliente:    req.NombreCliente,
		Telefono:         req.Telefono,
		FechaEntrega:     req.FechaEntrega,
		DireccionEntrega: req.DireccionEntrega,
		Pinatas:          req.Pinatas,
		Entregado:        false,
		EnCamino:         false,
		Timestamp:        time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, pedido)
	if err != nil {
		return "", err
	}

	s.metrics.PedidoCreado()
	s.publicar("pedido_creado", map[string]any{
		"pedidoId":      id,
		"nombreCliente": pedido.NombreCliente,
		"fechaEntrega":  pedido.FechaEntrega,
		"pinatas":       len(pedido.Pinatas),
	})

	return id, nil
}

func (s *PedidoService) Listar(ctx context.Context) ([]*model.Pedido, error) {
	return s.repo.FindAll(ctx)
}

// Actualizar aplica un merge superficial de cambios sobre el pedido.
// No valida el esquema de los campos: se acepta cualquier nombre y
// valor, igual que en el cliente original.
func (s *PedidoService) Actualizar(ctx context.Context, id string, cambios map[string]any) error {
	for _, campo := range camposInmutables {
		delete(cambios, campo)
	}
	if len(cambios) == 0 {
		return ErrSinCambios
	}

	if err := s.repo.UpdateFields(ctx, id, cambios); err != nil {
		return err
	}

	s.metrics.PedidoActualizado()
	s.publicar("pedido_actualizado", map[string]any{
		"pedidoId": id,
		"cambios":  cambios,
	})
	return nil
}

func (s *PedidoService) Eliminar(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.metrics.PedidoEliminado()
	s.publicar("pedido_eliminado", map[string]any{"pedidoId": id})
	return nil
}

func (s *PedidoService) publicar(routingKey string, payload any) {
	if s.events == nil {
		return
	}
	s.events.Publish(routingKey, payload)
	log.WithField("evento", routingKey).Debug("evento de pedido publicado")
}
