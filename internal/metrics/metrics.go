package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics cuenta las operaciones sobre pedidos y productos.
type Metrics struct {
	pedidosCreados        prometheus.Counter
	pedidosActualizados   prometheus.Counter
	pedidosEliminados     prometheus.Counter
	productosCreados      prometheus.Counter
	productosActualizados prometheus.Counter
	productosEliminados   prometheus.Counter
}

// New registra los contadores en el registerer dado. Los tests pasan
// un prometheus.NewRegistry() para no chocar con el registro global.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		pedidosCreados: factory.NewCounter(prometheus.CounterOpts{
			Name: "pinateria_pedidos_creados_total",
			Help: "Total de pedidos creados",
		}),
		pedidosActualizados: factory.NewCounter(prometheus.CounterOpts{
			Name: "pinateria_pedidos_actualizados_total",
			Help: "Total de pedidos actualizados parcialmente",
		}),
		pedidosEliminados: factory.NewCounter(prometheus.CounterOpts{
			Name: "pinateria_pedidos_eliminados_total",
			Help: "Total de pedidos eliminados",
		}),
		productosCreados: factory.NewCounter(prometheus.CounterOpts{
			Name: "pinateria_productos_creados_total",
			Help: "Total de productos creados",
		}),
		productosActualizados: factory.NewCounter(prometheus.CounterOpts{
			Name: "pinateria_productos_actualizados_total",
			Help: "Total de productos actualizados parcialmente",
		}),
		productosEliminados: factory.NewCounter(prometheus.CounterOpts{
			Name: "pinateria_productos_eliminados_total",
			Help: "Total de productos eliminados",
		}),
	}
}

func (m *Metrics) PedidoCreado()        { m.pedidosCreados.Inc() }
func (m *Metrics) PedidoActualizado()   { m.pedidosActualizados.Inc() }
func (m *Metrics) PedidoEliminado()     { m.pedidosEliminados.Inc() }
func (m *Metrics) ProductoCreado()      { m.productosCreados.Inc() }
func (m *Metrics) ProductoActualizado() { m.productosActualizados.Inc() }
func (m *Metrics) ProductoEliminado()   { m.productosEliminados.Inc() }
