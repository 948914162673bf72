package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a platform account. The users collection is owned by the auth
// service; this service only reads it.
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	MobileNumber string             `json:"mobileNumber" bson:"mobile_number"`
}
