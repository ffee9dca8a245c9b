package controller

import (
	"errors"
	"net/http"

	"github.com/gersonomarperezsalguero/backend-pinateria/internal/dto"
	"github.com/gersonomarperezsalguero/backend-pinateria/internal/repository"
	"github.com/gersonomarperezsalguero/backend-pinateria/internal/service"

	"github.com/gin-gonic/gin"
)

type PedidoController struct {
	Service *service.PedidoService
}

func NewPedidoController(s *service.PedidoService) *PedidoController {
	return &PedidoController{Service: s}
}

// POST /pedidos
func (ctl *PedidoController) Crear(c *gin.Context) {
	var req dto.CrearPedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan campos obligatorios en el pedido"})
		return
	}

	id, err := ctl.Service.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Pedido guardado correctamente", "id": id})
}

// GET /pedidos — ordenados por timestamp descendente
func (ctl *PedidoController) Listar(c *gin.Context) {
	pedidos, err := ctl.Service.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pedidos)
}

// PATCH /pedidos/:id — merge superficial de los campos enviados
func (ctl *PedidoController) Actualizar(c *gin.Context) {
	id := c.Param("id")

	var cambios map[string]any
	if err := c.ShouldBindJSON(&cambios); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se enviaron cambios"})
		return
	}

	err := ctl.Service.Actualizar(c.Request.Context(), id, cambios)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"mensaje": "Pedido actualizado correctamente"})
	case errors.Is(err, service.ErrSinCambios):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se enviaron cambios"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Pedido no encontrado"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// DELETE /pedidos/:id
func (ctl *PedidoController) Eliminar(c *gin.Context) {
	id := c.Param("id")

	err := ctl.Service.Eliminar(c.Request.Context(), id)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"mensaje": "Pedido eliminado correctamente"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Pedido no encontrado"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
