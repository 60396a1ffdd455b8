package handler

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/abuabdullah23/air-cnc-conceptual-server/internal/model"
)

// Test errors
var errMockStore = errors.New("store error")

// mockUserStore implements UserStore for testing
type mockUserStore struct {
	UpsertByEmailFunc func(ctx context.Context, email string, user *model.User) (*mongo.UpdateResult, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*model.User, error)
}

func (m *mockUserStore) UpsertByEmail(ctx context.Context, email string, user *model.User) (*mongo.UpdateResult, error) {
	if m.UpsertByEmailFunc != nil {
		return m.UpsertByEmailFunc(ctx, email, user)
	}
	return &mongo.UpdateResult{}, nil
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

// mockRoomStore implements RoomStore for testing
type mockRoomStore struct {
	InsertFunc          func(ctx context.Context, room *model.Room) (*mongo.InsertOneResult, error)
	ReplaceByIDFunc     func(ctx context.Context, id string, room *model.Room) (*mongo.UpdateResult, error)
	ListAllFunc         func(ctx context.Context) ([]model.Room, error)
	GetByIDFunc         func(ctx context.Context, id string) (*model.Room, error)
	ListByHostEmailFunc func(ctx context.Context, email string) ([]model.Room, error)
	DeleteByIDFunc      func(ctx context.Context, id string) (*mongo.DeleteResult, error)
	SetBookedStatusFunc func(ctx context.Context, id string, booked bool) (*mongo.UpdateResult, error)

	hostEmailCalls int
}

func (m *mockRoomStore) Insert(ctx context.Context, room *model.Room) (*mongo.InsertOneResult, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, room)
	}
	return &mongo.InsertOneResult{}, nil
}

func (m *mockRoomStore) ReplaceByID(ctx context.Context, id string, room *model.Room) (*mongo.UpdateResult, error) {
	if m.ReplaceByIDFunc != nil {
		return m.ReplaceByIDFunc(ctx, id, room)
	}
	return &mongo.UpdateResult{}, nil
}

func (m *mockRoomStore) ListAll(ctx context.Context) ([]model.Room, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return []model.Room{}, nil
}

func (m *mockRoomStore) GetByID(ctx context.Context, id string) (*model.Room, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRoomStore) ListByHostEmail(ctx context.Context, email string) ([]model.Room, error) {
	m.hostEmailCalls++
	if m.ListByHostEmailFunc != nil {
		return m.ListByHostEmailFunc(ctx, email)
	}
	return []model.Room{}, nil
}

func (m *mockRoomStore) DeleteByID(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return &mongo.DeleteResult{}, nil
}

func (m *mockRoomStore) SetBookedStatus(ctx context.Context, id string, booked bool) (*mongo.UpdateResult, error) {
	if m.SetBookedStatusFunc != nil {
		return m.SetBookedStatusFunc(ctx, id, booked)
	}
	return &mongo.UpdateResult{}, nil
}

// mockBookingStore implements BookingStore for testing
type mockBookingStore struct {
	ListByGuestEmailFunc func(ctx context.Context, email string) ([]model.Booking, error)
	ListByHostEmailFunc  func(ctx context.Context, email string) ([]model.Booking, error)
	DeleteByIDFunc       func(ctx context.Context, id string) (*mongo.DeleteResult, error)

	listCalls int
}

func (m *mockBookingStore) ListByGuestEmail(ctx context.Context, email string) ([]model.Booking, error) {
	m.listCalls++
	if m.ListByGuestEmailFunc != nil {
		return m.ListByGuestEmailFunc(ctx, email)
	}
	return []model.Booking{}, nil
}

func (m *mockBookingStore) ListByHostEmail(ctx context.Context, email string) ([]model.Booking, error) {
	m.listCalls++
	if m.ListByHostEmailFunc != nil {
		return m.ListByHostEmailFunc(ctx, email)
	}
	return []model.Booking{}, nil
}

func (m *mockBookingStore) DeleteByID(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return &mongo.DeleteResult{}, nil
}

// mockBookingCreator implements BookingCreator for testing
type mockBookingCreator struct {
	CreateFunc func(ctx context.Context, booking *model.Booking) (*mongo.InsertOneResult, error)
}

func (m *mockBookingCreator) Create(ctx context.Context, booking *model.Booking) (*mongo.InsertOneResult, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, booking)
	}
	return &mongo.InsertOneResult{}, nil
}

// mockGateway implements PaymentGateway for testing
type mockGateway struct {
	CreateIntentFunc func(ctx context.Context, price float64) (string, error)

	calls []float64
}

func (m *mockGateway) CreateIntent(ctx context.Context, price float64) (string, error) {
	m.calls = append(m.calls, price)
	if m.CreateIntentFunc != nil {
		return m.CreateIntentFunc(ctx, price)
	}
	return "secret_test", nil
}
