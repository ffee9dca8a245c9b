package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	pedidos   *PedidoController
	productos *ProductoController
}

func NewRouter(pedidos *PedidoController, productos *ProductoController) *Router {
	return &Router{pedidos: pedidos, productos: productos}
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API de Piñatería Las Palmas funcionando")
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	engine.POST("/pedidos", r.pedidos.Crear)
	engine.GET("/pedidos", r.pedidos.Listar)
	engine.PATCH("/pedidos/:id", r.pedidos.Actualizar)
	engine.DELETE("/pedidos/:id", r.pedidos.Eliminar)

	engine.POST("/productos", r.productos.Crear)
	engine.GET("/productos", r.productos.Listar)
	engine.PATCH("/productos/:id", r.productos.Actualizar)
	engine.DELETE("/productos/:id", r.productos.Eliminar)
}
