package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Host is the room owner snapshot embedded in rooms and bookings.
type Host struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
	Email string `bson:"email" json:"email"`
}

// Room is a listed place to stay. Host.Email is a soft reference to
// User.Email; nothing enforces it on write.
type Room struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	From        string             `bson:"from,omitempty" json:"from,omitempty"`
	To          string             `bson:"to,omitempty" json:"to,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
	TotalGuest  int                `bson:"total_guest,omitempty" json:"total_guest,omitempty"`
	Bedrooms    int                `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms   int                `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Host        Host               `bson:"host" json:"host"`
	Booked      bool               `bson:"booked" json:"booked"`
}
