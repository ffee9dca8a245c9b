package controller

import (
	"errors"
	"net/http"

	"github.com/gersonomarperezsalguero/backend-pinateria/internal/dto"
	"github.com/gersonomarperezsalguero/backend-pinateria/internal/repository"
	"github.com/gersonomarperezsalguero/backend-pinateria/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductoController struct {
	Service *service.ProductoService
}

func NewProductoController(s *service.ProductoService) *ProductoController {
	return &ProductoController{Service: s}
}

// POST /productos
func (ctl *ProductoController) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan campos obligatorios en el producto"})
		return
	}

	id, err := ctl.Service.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Producto guardado correctamente", "id": id})
}

// GET /productos
func (ctl *ProductoController) Listar(c *gin.Context) {
	productos, err := ctl.Service.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, productos)
}

// PATCH /productos/:id
func (ctl *ProductoController) Actualizar(c *gin.Context) {
	id := c.Param("id")

	var cambios map[string]any
	if err := c.ShouldBindJSON(&cambios); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se enviaron cambios"})
		return
	}

	err := ctl.Service.Actualizar(c.Request.Context(), id, cambios)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"mensaje": "Producto actualizado correctamente"})
	case errors.Is(err, service.ErrSinCambios):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se enviaron cambios"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// DELETE /productos/:id
func (ctl *ProductoController) Eliminar(c *gin.Context) {
	id := c.Param("id")

	err := ctl.Service.Eliminar(c.Request.Context(), id)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"mensaje": "Producto eliminado correctamente"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
