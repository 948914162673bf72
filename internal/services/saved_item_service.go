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

type SavedItemService interface {
	Save(ctx context.Context, userID string, item *models.SavedItem) (*models.SavedItem, error)
	Remove(ctx context.Context, userID, recordID string) error
	ListByUser(ctx context.Context, userID string) ([]models.SavedItem, error)
	CheckShortlisted(ctx context.Context, userID string, itemID int) (*models.SavedItem, error)
}

type savedItemService struct {
	items repository.SavedItemRepository
	users repository.UserRepository
	redis *redis.Client
}

func NewSavedItemService(items repository.SavedItemRepository, users repository.UserRepository, rdb *redis.Client) SavedItemService {
	return &savedItemService{items: items, users: users, redis: rdb}
}

func savedItemsCacheKey(userID primitive.ObjectID) string {
	return fmt.Sprintf("saved_items_by_user:%s", userID.Hex())
}

// Save shortlists an item for the user, snapshotting the user's display name
// into the record. Duplicates of the (user, item) pair are rejected by the
// store's unique index.
func (s *savedItemService) Save(ctx context.Context, userID string, item *models.SavedItem) (*models.SavedItem, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, models.ErrUserNotFound
	}
	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	item.UserID = uid
	item.UserName = user.Name
	item.ItemSaved = true

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, uid)
	return item, nil
}

// Remove deletes a shortlist entry by its record id. The delete is scoped to
// the requesting owner, so a valid record id belonging to someone else reads
// as not found.
func (s *savedItemService) Remove(ctx context.Context, userID, recordID string) error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.ErrUserNotFound
	}
	id, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return models.ErrInvalidID
	}

	if err := s.items.DeleteByIDAndOwner(ctx, id, uid); err != nil {
		return err
	}

	s.invalidateCache(ctx, uid)
	return nil
}

func (s *savedItemService) ListByUser(ctx context.Context, userID string) ([]models.SavedItem, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, models.ErrUserNotFound
	}
	if _, err := s.users.GetByID(ctx, uid); err != nil {
		return nil, err
	}

	cacheKey := savedItemsCacheKey(uid)
	if s.redis != nil {
		if cached, err := utils.GetFromCache(ctx, s.redis, cacheKey); err == nil {
			var items []models.SavedItem
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		}
	}

	items, err := s.items.GetByOwner(ctx, uid)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(items); err == nil {
			if err := utils.SetToCache(ctx, s.redis, cacheKey, string(data), utils.RedisCacheDuration); err != nil {
				log.Printf("Failed to cache saved items: %v", err)
			}
		}
	}

	return items, nil
}

func (s *savedItemService) CheckShortlisted(ctx context.Context, userID string, itemID int) (*models.SavedItem, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, models.ErrUserNotFound
	}
	if _, err := s.users.GetByID(ctx, uid); err != nil {
		return nil, err
	}

	return s.items.GetByItemAndOwner(ctx, itemID, uid)
}

func (s *savedItemService) invalidateCache(ctx context.Context, userID primitive.ObjectID) {
	if s.redis == nil {
		return
	}
	if err := utils.DeleteFromCache(ctx, s.redis, savedItemsCacheKey(userID)); err != nil {
		log.Printf("Failed to invalidate saved items cache: %v", err)
	}
}
