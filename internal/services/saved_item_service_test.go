package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"utsav/activity-service/internal/models"
)

type mockSavedItemRepo struct {
	createFn         func(ctx context.Context, item *models.SavedItem) error
	deleteFn         func(ctx context.Context, id, userID primitive.ObjectID) error
	getByOwnerFn     func(ctx context.Context, userID primitive.ObjectID) ([]models.SavedItem, error)
	getByItemOwnerFn func(ctx context.Context, itemID int, userID primitive.ObjectID) (*models.SavedItem, error)
}

func (m *mockSavedItemRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (m *mockSavedItemRepo) Create(ctx context.Context, item *models.SavedItem) error {
	return m.createFn(ctx, item)
}

func (m *mockSavedItemRepo) DeleteByIDAndOwner(ctx context.Context, id, userID primitive.ObjectID) error {
	return m.deleteFn(ctx, id, userID)
}

func (m *mockSavedItemRepo) GetByOwner(ctx context.Context, userID primitive.ObjectID) ([]models.SavedItem, error) {
	return m.getByOwnerFn(ctx, userID)
}

func (m *mockSavedItemRepo) GetByItemAndOwner(ctx context.Context, itemID int, userID primitive.ObjectID) (*models.SavedItem, error) {
	return m.getByItemOwnerFn(ctx, itemID, userID)
}

type mockUserRepo struct {
	getByIDFn      func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	getByContactFn func(ctx context.Context, email, mobileNumber, name string) (*models.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockUserRepo) GetByContact(ctx context.Context, email, mobileNumber, name string) (*models.User, error) {
	return m.getByContactFn(ctx, email, mobileNumber, name)
}

func knownUser(id primitive.ObjectID, name string) *mockUserRepo {
	return &mockUserRepo{
		getByIDFn: func(ctx context.Context, got primitive.ObjectID) (*models.User, error) {
			if got != id {
				return nil, models.ErrUserNotFound
			}
			return &models.User{ID: id, Name: name, Email: "owner@example.com"}, nil
		},
	}
}

func TestSavedItemService_Save_SnapshotsUserName(t *testing.T) {
	uid := primitive.NewObjectID()

	var created *models.SavedItem
	items := &mockSavedItemRepo{
		createFn: func(ctx context.Context, item *models.SavedItem) error {
			item.ID = primitive.NewObjectID()
			created = item
			return nil
		},
	}

	svc := NewSavedItemService(items, knownUser(uid, "Asha"), nil)

	saved, err := svc.Save(context.Background(), uid.Hex(), &models.SavedItem{
		ItemID: 42,
		Name:   "Hall A",
		Rating: 4.5,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, uid, saved.UserID)
	assert.Equal(t, "Asha", saved.UserName)
	assert.Equal(t, 42, saved.ItemID)
	assert.True(t, saved.ItemSaved)
}

func TestSavedItemService_Save_DuplicatePair(t *testing.T) {
	uid := primitive.NewObjectID()
	items := &mockSavedItemRepo{
		createFn: func(ctx context.Context, item *models.SavedItem) error {
			return models.ErrDuplicate
		},
	}

	svc := NewSavedItemService(items, knownUser(uid, "Asha"), nil)

	_, err := svc.Save(context.Background(), uid.Hex(), &models.SavedItem{ItemID: 42, Name: "Hall A"})
	assert.ErrorIs(t, err, models.ErrDuplicate)
}

func TestSavedItemService_Save_UnknownUser(t *testing.T) {
	svc := NewSavedItemService(&mockSavedItemRepo{}, knownUser(primitive.NewObjectID(), "Asha"), nil)

	_, err := svc.Save(context.Background(), primitive.NewObjectID().Hex(), &models.SavedItem{ItemID: 1, Name: "X"})
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestSavedItemService_Save_InvalidPayload(t *testing.T) {
	uid := primitive.NewObjectID()
	svc := NewSavedItemService(&mockSavedItemRepo{}, knownUser(uid, "Asha"), nil)

	tests := []struct {
		name string
		item models.SavedItem
	}{
		{"missing item id", models.SavedItem{Name: "Hall A"}},
		{"missing name", models.SavedItem{ItemID: 42}},
		{"rating out of range", models.SavedItem{ItemID: 42, Name: "Hall A", Rating: 9}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Save(context.Background(), uid.Hex(), &tc.item)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestSavedItemService_Remove(t *testing.T) {
	uid := primitive.NewObjectID()
	recordID := primitive.NewObjectID()

	items := &mockSavedItemRepo{
		deleteFn: func(ctx context.Context, id, userID primitive.ObjectID) error {
			if id != recordID || userID != uid {
				return models.ErrNotFound
			}
			return nil
		},
	}
	svc := NewSavedItemService(items, knownUser(uid, "Asha"), nil)

	assert.NoError(t, svc.Remove(context.Background(), uid.Hex(), recordID.Hex()))
	assert.ErrorIs(t, svc.Remove(context.Background(), uid.Hex(), primitive.NewObjectID().Hex()), models.ErrNotFound)
	assert.ErrorIs(t, svc.Remove(context.Background(), uid.Hex(), "not-a-hex-id"), models.ErrInvalidID)
}

func TestSavedItemService_Remove_OtherUsersRecord(t *testing.T) {
	owner := primitive.NewObjectID()
	intruder := primitive.NewObjectID()
	recordID := primitive.NewObjectID()

	items := &mockSavedItemRepo{
		deleteFn: func(ctx context.Context, id, userID primitive.ObjectID) error {
			if id == recordID && userID == owner {
				return nil
			}
			return models.ErrNotFound
		},
	}
	svc := NewSavedItemService(items, knownUser(intruder, "Mallory"), nil)

	assert.ErrorIs(t, svc.Remove(context.Background(), intruder.Hex(), recordID.Hex()), models.ErrNotFound)
}

func TestSavedItemService_CheckShortlisted(t *testing.T) {
	uid := primitive.NewObjectID()
	saved := &models.SavedItem{ID: primitive.NewObjectID(), UserID: uid, ItemID: 42, Name: "Hall A"}

	items := &mockSavedItemRepo{
		getByItemOwnerFn: func(ctx context.Context, itemID int, userID primitive.ObjectID) (*models.SavedItem, error) {
			if itemID == 42 && userID == uid {
				return saved, nil
			}
			return nil, models.ErrNotFound
		},
	}
	svc := NewSavedItemService(items, knownUser(uid, "Asha"), nil)

	got, err := svc.CheckShortlisted(context.Background(), uid.Hex(), 42)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	_, err = svc.CheckShortlisted(context.Background(), uid.Hex(), 7)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSavedItemService_ListByUser(t *testing.T) {
	uid := primitive.NewObjectID()
	items := &mockSavedItemRepo{
		getByOwnerFn: func(ctx context.Context, userID primitive.ObjectID) ([]models.SavedItem, error) {
			return []models.SavedItem{{UserID: userID, ItemID: 1, Name: "A"}, {UserID: userID, ItemID: 2, Name: "B"}}, nil
		},
	}
	svc := NewSavedItemService(items, knownUser(uid, "Asha"), nil)

	got, err := svc.ListByUser(context.Background(), uid.Hex())
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = svc.ListByUser(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}
