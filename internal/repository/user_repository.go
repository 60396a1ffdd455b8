package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/abuabdullah23/air-cnc-conceptual-server/internal/model"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(client *mongo.Client, dbName string) *UserRepository {
	return &UserRepository{coll: client.Database(dbName).Collection("users")}
}

// UpsertByEmail merges the given user fields into the document keyed by
// email, creating it if absent. The raw driver result goes back to the
// caller unmodified.
func (r *UserRepository) UpsertByEmail(ctx context.Context, email string, user *model.User) (*mongo.UpdateResult, error) {
	filter := bson.M{"email": email}
	update := bson.M{"$set": user}
	opts := options.Update().SetUpsert(true)

	result, err := r.coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return nil, fmt.Errorf("UserRepository.UpsertByEmail: %w", err)
	}
	return result, nil
}

// GetByEmail returns the user document or nil when no document matches.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("UserRepository.GetByEmail: %w", err)
	}
	return &user, nil
}
