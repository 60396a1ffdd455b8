package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/abuabdullah23/air-cnc-conceptual-server/internal/model"
)

type RoomRepository struct {
	coll *mongo.Collection
}

func NewRoomRepository(client *mongo.Client, dbName string) *RoomRepository {
	return &RoomRepository{coll: client.Database(dbName).Collection("rooms")}
}

// Insert stores a new room and returns the generated id in the raw result.
func (r *RoomRepository) Insert(ctx context.Context, room *model.Room) (*mongo.InsertOneResult, error) {
	result, err := r.coll.InsertOne(ctx, room)
	if err != nil {
		return nil, fmt.Errorf("RoomRepository.Insert: %w", err)
	}
	return result, nil
}

// ReplaceByID overwrites the room with upsert semantics. In practice the id
// always comes from a prior insert, so the upsert branch never fires.
func (r *RoomRepository) ReplaceByID(ctx context.Context, id string, room *model.Room) (*mongo.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("RoomRepository.ReplaceByID: %w", err)
	}

	filter := bson.M{"_id": objID}
	update := bson.M{"$set": room}
	opts := options.Update().SetUpsert(true)

	result, err := r.coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return nil, fmt.Errorf("RoomRepository.ReplaceByID: %w", err)
	}
	return result, nil
}

// ListAll returns every room. No pagination, no limit.
func (r *RoomRepository) ListAll(ctx context.Context) ([]model.Room, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("RoomRepository.ListAll: %w", err)
	}

	rooms := make([]model.Room, 0)
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("RoomRepository.ListAll: %w", err)
	}
	return rooms, nil
}

// GetByID returns the room or nil when no document matches.
func (r *RoomRepository) GetByID(ctx context.Context, id string) (*model.Room, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("RoomRepository.GetByID: %w", err)
	}

	var room model.Room
	err = r.coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&room)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("RoomRepository.GetByID: %w", err)
	}
	return &room, nil
}

// ListByHostEmail filters on the nested host.email field.
func (r *RoomRepository) ListByHostEmail(ctx context.Context, email string) ([]model.Room, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"host.email": email})
	if err != nil {
		return nil, fmt.Errorf("RoomRepository.ListByHostEmail: %w", err)
	}

	rooms := make([]model.Room, 0)
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("RoomRepository.ListByHostEmail: %w", err)
	}
	return rooms, nil
}

// DeleteByID removes at most one room. A missing id yields a zero-count
// result, not an error.
func (r *RoomRepository) DeleteByID(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("RoomRepository.DeleteByID: %w", err)
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return nil, fmt.Errorf("RoomRepository.DeleteByID: %w", err)
	}
	return result, nil
}

// SetBookedStatus patches only the booked flag.
func (r *RoomRepository) SetBookedStatus(ctx context.Context, id string, booked bool) (*mongo.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("RoomRepository.SetBookedStatus: %w", err)
	}

	update := bson.M{"$set": bson.M{"booked": booked}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return nil, fmt.Errorf("RoomRepository.SetBookedStatus: %w", err)
	}
	return result, nil
}
