package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"utsav/activity-service/internal/models"
)

type PlacedOrderRepository interface {
	Create(ctx context.Context, order *models.PlacedOrder) error
	GetByEmail(ctx context.Context, email string) ([]models.PlacedOrder, error)
}

type placedOrderRepository struct {
	collection *mongo.Collection
}

func NewPlacedOrderRepository(db *mongo.Database) PlacedOrderRepository {
	return &placedOrderRepository{collection: db.Collection("placed_orders")}
}

func (r *placedOrderRepository) Create(ctx context.Context, order *models.PlacedOrder) error {
	order.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, order)
	return err
}

// GetByEmail matches bookings by email rather than user id, so bookings made
// before the account existed still surface for the account holder.
func (r *placedOrderRepository) GetByEmail(ctx context.Context, email string) ([]models.PlacedOrder, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.PlacedOrder
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.PlacedOrder{}
	}
	return orders, nil
}
