package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/abuabdullah23/air-cnc-conceptual-server/internal/middleware"
	"github.com/abuabdullah23/air-cnc-conceptual-server/internal/model"
)

const testSecret = "test-secret"

func roomRouter(store *mockRoomStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &RoomHandler{Rooms: store}
	h.RegisterRoutes(r, middleware.JWTAuthMiddleware(testSecret))
	return r
}

func hostToken(t *testing.T, email string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestCreateRoom(t *testing.T) {
	store := &mockRoomStore{
		InsertFunc: func(ctx context.Context, room *model.Room) (*mongo.InsertOneResult, error) {
			assert.Equal(t, "Dhaka", room.Location)
			return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
		},
	}
	r := roomRouter(store)

	body := `{"location":"Dhaka","price":45,"host":{"email":"host@example.com"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/rooms", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "InsertedID")
}

func TestListRooms(t *testing.T) {
	store := &mockRoomStore{
		ListAllFunc: func(ctx context.Context) ([]model.Room, error) {
			return []model.Room{{Location: "Dhaka"}, {Location: "Sylhet"}}, nil
		},
	}
	r := roomRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var rooms []model.Room
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	assert.Len(t, rooms, 2)
}

func TestGetRoom_NotFound(t *testing.T) {
	store := &mockRoomStore{}
	r := roomRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/room/"+primitive.NewObjectID().Hex(), nil)
	r.ServeHTTP(w, req)

	// a miss is an empty document, not an error
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestUpdateRoom_RequiresToken(t *testing.T) {
	store := &mockRoomStore{}
	r := roomRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/rooms/"+primitive.NewObjectID().Hex(), strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateRoom_Authenticated(t *testing.T) {
	id := primitive.NewObjectID().Hex()
	store := &mockRoomStore{
		ReplaceByIDFunc: func(ctx context.Context, gotID string, room *model.Room) (*mongo.UpdateResult, error) {
			assert.Equal(t, id, gotID)
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}
	r := roomRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/rooms/"+id, strings.NewReader(`{"location":"Dhaka"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+hostToken(t, "anyone@example.com"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHostRooms_EmailMismatchIsForbidden(t *testing.T) {
	store := &mockRoomStore{}
	r := roomRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rooms/other@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+hostToken(t, "host@example.com"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "forbidden access")
	assert.Zero(t, store.hostEmailCalls, "store must not be read on a forbidden request")
}

func TestHostRooms_EmailMatch(t *testing.T) {
	store := &mockRoomStore{
		ListByHostEmailFunc: func(ctx context.Context, email string) ([]model.Room, error) {
			assert.Equal(t, "host@example.com", email)
			return []model.Room{{Host: model.Host{Email: email}}}, nil
		},
	}
	r := roomRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rooms/host@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+hostToken(t, "host@example.com"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, store.hostEmailCalls)
}

func TestDeleteRoom_MissingIDIsZeroCount(t *testing.T) {
	store := &mockRoomStore{
		DeleteByIDFunc: func(ctx context.Context, id string) (*mongo.DeleteResult, error) {
			return &mongo.DeleteResult{DeletedCount: 0}, nil
		},
	}
	r := roomRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/rooms/"+primitive.NewObjectID().Hex(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"DeletedCount":0`)
}

func TestUpdateStatus(t *testing.T) {
	id := primitive.NewObjectID().Hex()
	store := &mockRoomStore{
		SetBookedStatusFunc: func(ctx context.Context, gotID string, booked bool) (*mongo.UpdateResult, error) {
			assert.Equal(t, id, gotID)
			assert.True(t, booked)
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}
	r := roomRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/room/status/"+id, strings.NewReader(`{"status":true}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListRooms_StoreError(t *testing.T) {
	store := &mockRoomStore{
		ListAllFunc: func(ctx context.Context) ([]model.Room, error) {
			return nil, errMockStore
		},
	}
	r := roomRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
