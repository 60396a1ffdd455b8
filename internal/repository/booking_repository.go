package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/abuabdullah23/air-cnc-conceptual-server/internal/model"
)

type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(client *mongo.Client, dbName string) *BookingRepository {
	return &BookingRepository{coll: client.Database(dbName).Collection("bookings")}
}

func (r *BookingRepository) Insert(ctx context.Context, booking *model.Booking) (*mongo.InsertOneResult, error) {
	result, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("BookingRepository.Insert: %w", err)
	}
	return result, nil
}

// ListByGuestEmail filters on the nested guest.email field. The empty-email
// short-circuit is the caller's contract, not the repository's.
func (r *BookingRepository) ListByGuestEmail(ctx context.Context, email string) ([]model.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"guest.email": email})
	if err != nil {
		return nil, fmt.Errorf("BookingRepository.ListByGuestEmail: %w", err)
	}

	bookings := make([]model.Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("BookingRepository.ListByGuestEmail: %w", err)
	}
	return bookings, nil
}

// ListByHostEmail filters on the top-level host field, which holds a bare
// email string.
func (r *BookingRepository) ListByHostEmail(ctx context.Context, email string) ([]model.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"host": email})
	if err != nil {
		return nil, fmt.Errorf("BookingRepository.ListByHostEmail: %w", err)
	}

	bookings := make([]model.Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("BookingRepository.ListByHostEmail: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) DeleteByID(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("BookingRepository.DeleteByID: %w", err)
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return nil, fmt.Errorf("BookingRepository.DeleteByID: %w", err)
	}
	return result, nil
}
