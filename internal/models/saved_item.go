package models

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"utsav/activity-service/internal/utils"
)

// SavedItem is a venue (or other vendor item) shortlisted by a user.
// UserName is a snapshot of the owner's display name taken at save time;
// it is not updated if the user later renames.
type SavedItem struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID       primitive.ObjectID `json:"userId" bson:"user_id"`
	UserName     string             `json:"userName" bson:"user_name"`
	ItemID       int                `json:"itemId" bson:"item_id" validate:"required,gt=0"`
	Name         string             `json:"name" bson:"name" validate:"required"`
	Image        string             `json:"image" bson:"image"`
	Location     string             `json:"location" bson:"location"`
	FoodCategory string             `json:"foodCategory" bson:"food_category"`
	Rating       float64            `json:"rating" bson:"rating" validate:"gte=0,lte=5"`
	ItemSaved    bool               `json:"itemSaved" bson:"item_saved"`
}

// Validate validates the client-supplied fields of a SavedItem.
func (si SavedItem) Validate() error {
	validate := utils.GetValidator()
	if err := validate.Struct(si); err != nil {
		errs := utils.ParseErrors(err)
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, " // "))
	}

	return nil
}
