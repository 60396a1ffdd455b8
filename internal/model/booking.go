package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Guest identifies who made a booking.
type Guest struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Email string `bson:"email" json:"email"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

// Booking links a guest to a room. Host is stored as a bare email string,
// unlike Room which embeds the full host object. Deleting a room does not
// touch its bookings.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RoomID        string             `bson:"roomId,omitempty" json:"roomId,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	From          string             `bson:"from,omitempty" json:"from,omitempty"`
	To            string             `bson:"to,omitempty" json:"to,omitempty"`
	Guest         Guest              `bson:"guest" json:"guest"`
	Host          string             `bson:"host" json:"host"`
	RoomImage     string             `bson:"image,omitempty" json:"image,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Date          string             `bson:"date,omitempty" json:"date,omitempty"`
}
