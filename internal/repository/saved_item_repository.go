package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"utsav/activity-service/internal/models"
)

type SavedItemRepository interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, item *models.SavedItem) error
	DeleteByIDAndOwner(ctx context.Context, id, userID primitive.ObjectID) error
	GetByOwner(ctx context.Context, userID primitive.ObjectID) ([]models.SavedItem, error)
	GetByItemAndOwner(ctx context.Context, itemID int, userID primitive.ObjectID) (*models.SavedItem, error)
}

type savedItemRepository struct {
	collection *mongo.Collection
}

func NewSavedItemRepository(db *mongo.Database) SavedItemRepository {
	return &savedItemRepository{collection: db.Collection("saved_items")}
}

// EnsureIndexes creates the unique (user_id, item_id) index. The index closes
// the check-then-insert race: concurrent saves of the same pair cannot both
// land, the loser gets a duplicate-key error.
func (r *savedItemRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "item_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *savedItemRepository) Create(ctx context.Context, item *models.SavedItem) error {
	item.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, item)
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrDuplicate
	}
	return err
}

func (r *savedItemRepository) DeleteByIDAndOwner(ctx context.Context, id, userID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *savedItemRepository) GetByOwner(ctx context.Context, userID primitive.ObjectID) ([]models.SavedItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.SavedItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.SavedItem{}
	}
	return items, nil
}

func (r *savedItemRepository) GetByItemAndOwner(ctx context.Context, itemID int, userID primitive.ObjectID) (*models.SavedItem, error) {
	var item models.SavedItem
	err := r.collection.FindOne(ctx, bson.M{"item_id": itemID, "user_id": userID}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
