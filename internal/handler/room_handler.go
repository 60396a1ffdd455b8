package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/abuabdullah23/air-cnc-conceptual-server/internal/middleware"
	"github.com/abuabdullah23/air-cnc-conceptual-server/internal/model"
)

// RoomStore is the slice of the room repository the handler needs.
type RoomStore interface {
	Insert(ctx context.Context, room *model.Room) (*mongo.InsertOneResult, error)
	ReplaceByID(ctx context.Context, id string, room *model.Room) (*mongo.UpdateResult, error)
	ListAll(ctx context.Context) ([]model.Room, error)
	GetByID(ctx context.Context, id string) (*model.Room, error)
	ListByHostEmail(ctx context.Context, email string) ([]model.Room, error)
	DeleteByID(ctx context.Context, id string) (*mongo.DeleteResult, error)
	SetBookedStatus(ctx context.Context, id string, booked bool) (*mongo.UpdateResult, error)
}

// RoomHandler управляет всеми операциями над комнатами.
type RoomHandler struct {
	Rooms RoomStore
}

// RegisterRoutes регистрирует роуты для Rooms. Только обновление и список
// комнат хоста закрыты JWT; остальные роуты открыты.
func (h *RoomHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	r.POST("/rooms", h.CreateRoom)
	r.GET("/rooms", h.ListRooms)
	r.GET("/room/:id", h.GetRoom)
	r.DELETE("/rooms/:id", h.DeleteRoom)
	r.PATCH("/room/status/:id", h.UpdateStatus)

	r.PUT("/rooms/:id", auth, h.UpdateRoom)
	r.GET("/rooms/:email", auth, h.HostRooms)
}

// POST /rooms
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var room model.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	result, err := h.Rooms.Insert(c.Request.Context(), &room)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// PUT /rooms/:id — full replace with upsert semantics. Any authenticated
// caller may update any room; there is no ownership check here.
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id := c.Param("id")

	var room model.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	result, err := h.Rooms.ReplaceByID(c.Request.Context(), id, &room)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /rooms — full collection scan, unbounded by design.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.Rooms.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GET /room/:id — single room or null.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id := c.Param("id")

	room, err := h.Rooms.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, room)
}

// GET /rooms/:email — rooms of one host. The path email must match the
// token's email; the store is never touched on mismatch.
func (h *RoomHandler) HostRooms(c *gin.Context) {
	email := c.Param("email")

	decoded, _ := c.Get(middleware.EmailKey)
	if decoded != email {
		c.JSON(http.StatusForbidden, gin.H{"error": true, "message": "forbidden access"})
		return
	}

	rooms, err := h.Rooms.ListByHostEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// DELETE /rooms/:id — a missing id yields a zero-count result, not an error.
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id := c.Param("id")

	result, err := h.Rooms.DeleteByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

type statusRequest struct {
	Status bool `json:"status"`
}

// PATCH /room/status/:id — flips only the booked flag.
func (h *RoomHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	result, err := h.Rooms.SetBookedStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
