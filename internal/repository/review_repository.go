package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"utsav/activity-service/internal/models"
)

type ReviewRepository interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	GetByItemWithUser(ctx context.Context, itemID int) ([]models.ReviewWithUser, error)
	GetByOwnerWithUser(ctx context.Context, userID primitive.ObjectID) ([]models.ReviewWithUser, error)
}

type reviewRepository struct {
	collection *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) ReviewRepository {
	return &reviewRepository{collection: db.Collection("reviews")}
}

// EnsureIndexes creates the unique (user_id, item_id) index enforcing one
// review per user per item at the store level.
func (r *reviewRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "item_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	review.ID = primitive.NewObjectID()
	review.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, review)
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrDuplicate
	}
	return err
}

func (r *reviewRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	var review models.Review
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// GetByItemWithUser joins each review of an item with its owner's current
// display name. Inner-join semantics: reviews whose owner record is gone are
// dropped from the result.
func (r *reviewRepository) GetByItemWithUser(ctx context.Context, itemID int) ([]models.ReviewWithUser, error) {
	return r.aggregateWithUser(ctx, bson.M{"item_id": itemID})
}

// GetByOwnerWithUser lists one user's reviews, each carrying the owner's
// display name.
func (r *reviewRepository) GetByOwnerWithUser(ctx context.Context, userID primitive.ObjectID) ([]models.ReviewWithUser, error) {
	return r.aggregateWithUser(ctx, bson.M{"user_id": userID})
}

func (r *reviewRepository) aggregateWithUser(ctx context.Context, match bson.M) ([]models.ReviewWithUser, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		{{Key: "$unwind", Value: "$owner"}},
		{{Key: "$project", Value: bson.M{
			"review_text": 1,
			"item_id":     1,
			"created_at":  1,
			"user_name":   "$owner.name",
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.ReviewWithUser
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.ReviewWithUser{}
	}
	return reviews, nil
}
