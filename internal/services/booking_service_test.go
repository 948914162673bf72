package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"utsav/activity-service/internal/models"
	"utsav/activity-service/internal/utils"
)

type mockOrderRepo struct {
	created   []models.PlacedOrder
	byEmailFn func(ctx context.Context, email string) ([]models.PlacedOrder, error)
}

func (m *mockOrderRepo) Create(ctx context.Context, order *models.PlacedOrder) error {
	order.ID = primitive.NewObjectID()
	m.created = append(m.created, *order)
	return nil
}

func (m *mockOrderRepo) GetByEmail(ctx context.Context, email string) ([]models.PlacedOrder, error) {
	return m.byEmailFn(ctx, email)
}

type mockNotifier struct {
	sent []utils.BookingNotification
	err  error
}

func (m *mockNotifier) SendBookingConfirmation(ctx context.Context, n utils.BookingNotification) error {
	m.sent = append(m.sent, n)
	return m.err
}

func validBooking() models.PlacedOrder {
	return models.PlacedOrder{
		Name:         "Raj",
		Email:        "raj@x.com",
		MobileNumber: "9999999999",
		Pincode:      "400001",
		Time:         "18:00",
		Date:         "2025-01-01",
		Guests:       5,
		Address:      "X",
	}
}

func TestBookingService_BookVenue(t *testing.T) {
	orders := &mockOrderRepo{}
	notifier := &mockNotifier{}
	svc := NewBookingService(orders, &mockUserRepo{}, notifier)

	booking := validBooking()
	placed, err := svc.BookVenue(context.Background(), &booking)
	require.NoError(t, err)

	assert.True(t, placed.OrderPlaced)
	assert.False(t, placed.ID.IsZero())
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "raj@x.com", notifier.sent[0].Email)
}

func TestBookingService_BookVenue_Validation(t *testing.T) {
	svc := NewBookingService(&mockOrderRepo{}, &mockUserRepo{}, nil)

	tests := []struct {
		name   string
		mutate func(*models.PlacedOrder)
	}{
		{"zero guests", func(o *models.PlacedOrder) { o.Guests = 0 }},
		{"bad email", func(o *models.PlacedOrder) { o.Email = "not-an-email" }},
		{"bad mobile number", func(o *models.PlacedOrder) { o.MobileNumber = "12ab" }},
		{"missing name", func(o *models.PlacedOrder) { o.Name = "" }},
		{"missing address", func(o *models.PlacedOrder) { o.Address = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			booking := validBooking()
			tc.mutate(&booking)
			_, err := svc.BookVenue(context.Background(), &booking)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestBookingService_BookVenue_OneGuestAccepted(t *testing.T) {
	svc := NewBookingService(&mockOrderRepo{}, &mockUserRepo{}, nil)

	booking := validBooking()
	booking.Guests = 1
	_, err := svc.BookVenue(context.Background(), &booking)
	assert.NoError(t, err)
}

func TestBookingService_BookVenue_RepeatBookingsAllKept(t *testing.T) {
	orders := &mockOrderRepo{}
	svc := NewBookingService(orders, &mockUserRepo{}, nil)

	for i := 0; i < 3; i++ {
		booking := validBooking()
		_, err := svc.BookVenue(context.Background(), &booking)
		require.NoError(t, err)
	}

	assert.Len(t, orders.created, 3)
}

func TestBookingService_BookVenue_NotificationFailureIsNonFatal(t *testing.T) {
	notifier := &mockNotifier{err: assert.AnError}
	svc := NewBookingService(&mockOrderRepo{}, &mockUserRepo{}, notifier)

	booking := validBooking()
	_, err := svc.BookVenue(context.Background(), &booking)
	assert.NoError(t, err)
}

func TestBookingService_VerifyUser(t *testing.T) {
	users := &mockUserRepo{
		getByContactFn: func(ctx context.Context, email, mobileNumber, name string) (*models.User, error) {
			if email == "raj@x.com" && mobileNumber == "9999999999" && name == "Raj" {
				return &models.User{Name: name, Email: email, MobileNumber: mobileNumber}, nil
			}
			return nil, models.ErrUserNotFound
		},
	}
	svc := NewBookingService(&mockOrderRepo{}, users, nil)

	_, err := svc.VerifyUser(context.Background(), &models.BookingVerification{
		Email: "raj@x.com", MobileNumber: "9999999999", Name: "Raj",
	})
	assert.NoError(t, err)

	_, err = svc.VerifyUser(context.Background(), &models.BookingVerification{
		Email: "other@x.com", MobileNumber: "9999999999", Name: "Raj",
	})
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	_, err = svc.VerifyUser(context.Background(), &models.BookingVerification{Email: "raj@x.com"})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestBookingService_PlacedOrdersForUser_MatchesByEmail(t *testing.T) {
	uid := primitive.NewObjectID()

	// A booking placed without an account: no user id, only the email.
	anonymous := validBooking()
	anonymous.Email = "owner@example.com"

	orders := &mockOrderRepo{
		byEmailFn: func(ctx context.Context, email string) ([]models.PlacedOrder, error) {
			if email == "owner@example.com" {
				return []models.PlacedOrder{anonymous}, nil
			}
			return []models.PlacedOrder{}, nil
		},
	}
	svc := NewBookingService(orders, knownUser(uid, "Asha"), nil)

	got, err := svc.PlacedOrdersForUser(context.Background(), uid.Hex())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].UserID)

	_, err = svc.PlacedOrdersForUser(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}
