package repository

import (
	"context"
	"errors"

	"github.com/gersonomarperezsalguero/backend-pinateria/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("documento no encontrado")

// Los listados salen ordenados por timestamp descendente (el más
// reciente primero), igual que los mostraba el cliente original.
var sortByTimestampDesc = options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

// Mongo implementation
type MongoPedidoRepository struct {
	col *mongo.Collection
}

func NewMongoPedidoRepository(db *mongo.Database) *MongoPedidoRepository {
	return &MongoPedidoRepository{col: db.Collection("pedidos")}
}

func (m *MongoPedidoRepository) Insert(ctx context.Context, p *model.Pedido) (string, error) {
	res, err := m.col.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("id generado inválido")
	}
	return oid.Hex(), nil
}

func (m *MongoPedidoRepository) FindAll(ctx context.Context) ([]*model.Pedido, error) {
	cur, err := m.col.Find(ctx, bson.M{}, sortByTimestampDesc)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]*model.Pedido, 0)
	for cur.Next(ctx) {
		var v model.Pedido
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, cur.Err()
}

// UpdateFields hace el merge superficial: solo pisa los campos que
// vienen en cambios, el resto del documento queda intacto.
func (m *MongoPedidoRepository) UpdateFields(ctx context.Context, id string, cambios map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := m.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M(cambios)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoPedidoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := m.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
