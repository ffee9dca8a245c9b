// dto.go
package dto

import "github.com/gersonomarperezsalguero/backend-pinateria/internal/model"

// CrearPedidoRequest valida la presencia de los campos obligatorios
// antes de tocar la base. Las piñatas deben venir y no estar vacías.
type CrearPedidoRequest struct {
	NombreCliente    string         `json:"nombreCliente" binding:"required"`
	Telefono         string         `json:"telefono" binding:"required"`
	FechaEntrega     string         `json:"fechaEntrega" binding:"required"`
	DireccionEntrega string         `json:"direccionEntrega" binding:"required"`
	Pinatas          []model.Pinata `json:"pinatas" binding:"required,min=1"`
}

// CrearProductoRequest exige los cuatro campos del catálogo.
type CrearProductoRequest struct {
	Nombre   string  `json:"nombre" binding:"required"`
	Detalles string  `json:"detalles" binding:"required"`
	Precio   float64 `json:"precio" binding:"required"`
	Foto     string  `json:"foto" binding:"required"`
}
