package services

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"utsav/activity-service/internal/models"
	"utsav/activity-service/internal/repository"
	"utsav/activity-service/internal/utils"
)

// Notifier delivers booking confirmations through the notification service.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, notification utils.BookingNotification) error
}

type BookingService interface {
	VerifyUser(ctx context.Context, verification *models.BookingVerification) (*models.User, error)
	BookVenue(ctx context.Context, order *models.PlacedOrder) (*models.PlacedOrder, error)
	PlacedOrdersForUser(ctx context.Context, userID string) ([]models.PlacedOrder, error)
}

type bookingService struct {
	orders   repository.PlacedOrderRepository
	users    repository.UserRepository
	notifier Notifier
}

func NewBookingService(orders repository.PlacedOrderRepository, users repository.UserRepository, notifier Notifier) BookingService {
	return &bookingService{orders: orders, users: users, notifier: notifier}
}

// VerifyUser checks whether an account exists for the exact
// (email, mobile number, name) triple supplied before booking.
func (s *bookingService) VerifyUser(ctx context.Context, verification *models.BookingVerification) (*models.User, error) {
	if err := verification.Validate(); err != nil {
		return nil, err
	}

	return s.users.GetByContact(ctx, verification.Email, verification.MobileNumber, verification.Name)
}

// BookVenue places a booking. No account is required and there is no
// duplicate check: repeat bookings are a normal use case.
func (s *bookingService) BookVenue(ctx context.Context, order *models.PlacedOrder) (*models.PlacedOrder, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	order.OrderPlaced = true
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		err := s.notifier.SendBookingConfirmation(ctx, utils.BookingNotification{
			Email:        order.Email,
			Title:        "Booking confirmed",
			Message:      "Your venue booking has been placed. Details are available on your bookings page.",
			Type:         "booking_confirmed",
			DeliveryType: "email",
			Metadata:     map[string]string{"order_id": order.ID.Hex()},
		})
		if err != nil {
			log.Printf("Failed to send booking confirmation: %v", err)
		}
	}

	return order, nil
}

// PlacedOrdersForUser lists bookings by the account's email, not by user id,
// so bookings placed before the account was created are included.
func (s *bookingService) PlacedOrdersForUser(ctx context.Context, userID string) ([]models.PlacedOrder, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, models.ErrUserNotFound
	}
	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	return s.orders.GetByEmail(ctx, user.Email)
}
