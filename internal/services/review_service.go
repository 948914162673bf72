package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"utsav/activity-service/internal/models"
	"utsav/activity-service/internal/repository"
	"utsav/activity-service/internal/utils"
)

type ReviewService interface {
	Save(ctx context.Context, userID string, review *models.Review) (*models.Review, error)
	ListForItem(ctx context.Context, itemID int) ([]models.ReviewWithUser, error)
	Delete(ctx context.Context, userID, reviewID string) error
	ListForUser(ctx context.Context, userID string) ([]models.ReviewWithUser, error)
}

type reviewService struct {
	reviews repository.ReviewRepository
	users   repository.UserRepository
	redis   *redis.Client
}

func NewReviewService(reviews repository.ReviewRepository, users repository.UserRepository, rdb *redis.Client) ReviewService {
	return &reviewService{reviews: reviews, users: users, redis: rdb}
}

func reviewsCacheKey(itemID int) string {
	return fmt.Sprintf("reviews_by_item:%d", itemID)
}

// Save posts the user's review of an item. One review per (user, item); the
// store's unique index rejects a second one.
func (s *reviewService) Save(ctx context.Context, userID string, review *models.Review) (*models.Review, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, models.ErrUserNotFound
	}
	if _, err := s.users.GetByID(ctx, uid); err != nil {
		return nil, err
	}

	if err := review.Validate(); err != nil {
		return nil, err
	}

	review.UserID = uid
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, review.ItemID)
	return review, nil
}

// ListForItem returns an item's reviews joined with each owner's display
// name. No authentication; results are cached briefly per item.
func (s *reviewService) ListForItem(ctx context.Context, itemID int) ([]models.ReviewWithUser, error) {
	cacheKey := reviewsCacheKey(itemID)
	if s.redis != nil {
		if cached, err := utils.GetFromCache(ctx, s.redis, cacheKey); err == nil {
			var reviews []models.ReviewWithUser
			if err := json.Unmarshal([]byte(cached), &reviews); err == nil {
				return reviews, nil
			}
		}
	}

	reviews, err := s.reviews.GetByItemWithUser(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(reviews); err == nil {
			if err := utils.SetToCache(ctx, s.redis, cacheKey, string(data), utils.RedisCacheDuration); err != nil {
				log.Printf("Failed to cache reviews: %v", err)
			}
		}
	}

	return reviews, nil
}

// Delete removes a review. Only its author may delete it.
func (s *reviewService) Delete(ctx context.Context, userID, reviewID string) error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.ErrUserNotFound
	}
	if _, err := s.users.GetByID(ctx, uid); err != nil {
		return err
	}

	id, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return models.ErrInvalidID
	}

	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if review.UserID != uid {
		return models.ErrNotOwner
	}

	if err := s.reviews.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCache(ctx, review.ItemID)
	return nil
}

// ListForUser returns every review the user has posted, each carrying the
// display name. An empty result is a success, not an error.
func (s *reviewService) ListForUser(ctx context.Context, userID string) ([]models.ReviewWithUser, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, models.ErrUserNotFound
	}
	if _, err := s.users.GetByID(ctx, uid); err != nil {
		return nil, err
	}

	return s.reviews.GetByOwnerWithUser(ctx, uid)
}

func (s *reviewService) invalidateCache(ctx context.Context, itemID int) {
	if s.redis == nil {
		return
	}
	if err := utils.DeleteFromCache(ctx, s.redis, reviewsCacheKey(itemID)); err != nil {
		log.Printf("Failed to invalidate reviews cache: %v", err)
	}
}
