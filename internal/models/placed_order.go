package models

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"utsav/activity-service/internal/utils"
)

// PlacedOrder is a venue booking. Bookings are allowed without an account,
// so UserID is often empty; listing for a user matches on email instead.
// Repeat bookings are legitimate — there is no uniqueness constraint.
type PlacedOrder struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID       string             `json:"userId,omitempty" bson:"user_id,omitempty"`
	Name         string             `json:"name" bson:"name" validate:"required"`
	Email        string             `json:"email" bson:"email" validate:"required,email"`
	MobileNumber string             `json:"mobileNumber" bson:"mobile_number" validate:"required,mobile"`
	Pincode      string             `json:"pincode" bson:"pincode" validate:"required"`
	Time         string             `json:"time" bson:"time" validate:"required"`
	Date         string             `json:"date" bson:"date"`
	Guests       int                `json:"guests" bson:"guests" validate:"required,min=1"`
	Address      string             `json:"address" bson:"address" validate:"required"`
	OrderPlaced  bool               `json:"orderPlaced" bson:"order_placed"`
}

// Validate validates a booking request.
func (po PlacedOrder) Validate() error {
	validate := utils.GetValidator()
	if err := validate.Struct(po); err != nil {
		errs := utils.ParseErrors(err)
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, " // "))
	}

	return nil
}

// BookingVerification is the pre-booking identity check payload. The response
// echoes the same triple back so the client can correlate feedback.
type BookingVerification struct {
	Email        string `json:"email" validate:"required"`
	MobileNumber string `json:"mobileNumber" validate:"required"`
	Name         string `json:"name" validate:"required"`
}

// Validate validates a verification request.
func (bv BookingVerification) Validate() error {
	validate := utils.GetValidator()
	if err := validate.Struct(bv); err != nil {
		errs := utils.ParseErrors(err)
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, " // "))
	}

	return nil
}
