// models.go
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pedido es un pedido de la piñatería con sus datos de entrega y
// banderas de estado.
type Pedido struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NombreCliente    string             `bson:"nombreCliente" json:"nombreCliente"`
	Telefono         string             `bson:"telefono" json:"telefono"`
	FechaEntrega     string             `bson:"fechaEntrega" json:"fechaEntrega"`
	DireccionEntrega string             `bson:"direccionEntrega" json:"direccionEntrega"`
	Pinatas          []Pinata           `bson:"pinatas" json:"pinatas"`

	// Banderas de estado: arrancan en false y solo cambian vía PATCH
	Entregado bool `bson:"entregado" json:"entregado"`
	EnCamino  bool `bson:"enCamino" json:"enCamino"`

	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// Pinata es una línea del pedido.
type Pinata struct {
	Tipo     string  `bson:"tipo" json:"tipo"`
	Tamano   string  `bson:"tamano,omitempty" json:"tamano,omitempty"`
	Cantidad int     `bson:"cantidad,omitempty" json:"cantidad,omitempty"`
	Precio   float64 `bson:"precio,omitempty" json:"precio,omitempty"`
}

// Producto es un artículo del catálogo.
type Producto struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nombre    string             `bson:"nombre" json:"nombre"`
	Detalles  string             `bson:"detalles" json:"detalles"`
	Precio    float64            `bson:"precio" json:"precio"`
	Foto      string             `bson:"foto" json:"foto"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
