package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User model for MongoDB. Users are keyed by email and written with upsert,
// so the same document is created or overwritten on every save.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"` // "guest" or "host"
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
}
