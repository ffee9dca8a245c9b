package repository

import (
	"context"
	"errors"

	"github.com/gersonomarperezsalguero/backend-pinateria/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoProductoRepository struct {
	col *mongo.Collection
}

func NewMongoProductoRepository(db *mongo.Database) *MongoProductoRepository {
	return &MongoProductoRepository{col: db.Collection("productos")}
}

func (m *MongoProductoRepository) Insert(ctx context.Context, p *model.Producto) (string, error) {
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

func (m *MongoProductoRepository) FindAll(ctx context.Context) ([]*model.Producto, error) {
	cur, err := m.col.Find(ctx, bson.M{}, sortByTimestampDesc)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]*model.Producto, 0)
	for cur.Next(ctx) {
		var v model.Producto
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, cur.Err()
}

func (m *MongoProductoRepository) UpdateFields(ctx context.Context, id string, cambios map[string]any) error {
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

func (m *MongoProductoRepository) Delete(ctx context.Context, id string) error {
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
