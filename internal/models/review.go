package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"utsav/activity-service/internal/utils"
)

// Review is a single user's review of an item. One review per (user, item);
// the pair is backed by a unique index on the collection.
type Review struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID     primitive.ObjectID `json:"userId" bson:"user_id"`
	ItemID     int                `json:"itemId" bson:"item_id" validate:"required,gt=0"`
	ReviewText string             `json:"reviewText" bson:"review_text" validate:"required"`
	CreatedAt  time.Time          `json:"createdAt,omitempty" bson:"created_at"`
}

// Validate validates the client-supplied fields of a Review.
func (rv Review) Validate() error {
	validate := utils.GetValidator()
	if err := validate.Struct(rv); err != nil {
		errs := utils.ParseErrors(err)
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, " // "))
	}

	return nil
}

// ReviewWithUser is a review joined with the owner's current display name.
// Produced by the listing aggregation; reviews whose owner record no longer
// exists are excluded from it.
type ReviewWithUser struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	ItemID     int                `json:"itemId" bson:"item_id"`
	ReviewText string             `json:"reviewText" bson:"review_text"`
	CreatedAt  time.Time          `json:"createdAt" bson:"created_at"`
	UserName   string             `json:"userName" bson:"user_name"`
}
