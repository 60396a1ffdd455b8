package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/abuabdullah23/air-cnc-conceptual-server/internal/model"
)

// BookingCreator inserts a booking and notifies both parties.
type BookingCreator interface {
	Create(ctx context.Context, booking *model.Booking) (*mongo.InsertOneResult, error)
}

// BookingStore is the slice of the booking repository the handler needs.
type BookingStore interface {
	ListByGuestEmail(ctx context.Context, email string) ([]model.Booking, error)
	ListByHostEmail(ctx context.Context, email string) ([]model.Booking, error)
	DeleteByID(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

// BookingHandler управляет операциями над бронированиями.
type BookingHandler struct {
	Service  BookingCreator
	Bookings BookingStore
}

// RegisterRoutes регистрирует роуты для Bookings.
func (h *BookingHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/bookings", h.CreateBooking)
	r.GET("/bookings", h.GuestBookings)
	r.GET("/bookings/host", h.HostBookings)
	r.DELETE("/bookings/:id", h.DeleteBooking)
}

// POST /bookings — insert plus two notification dispatches.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var booking model.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	result, err := h.Service.Create(c.Request.Context(), &booking)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /bookings?email= — bookings of a guest. Without an email the handler
// answers [] and never queries the store.
func (h *BookingHandler) GuestBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []model.Booking{})
		return
	}

	bookings, err := h.Bookings.ListByGuestEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /bookings/host?email= — bookings against a host, same short-circuit.
func (h *BookingHandler) HostBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []model.Booking{})
		return
	}

	bookings, err := h.Bookings.ListByHostEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// DELETE /bookings/:id — either party may delete.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id := c.Param("id")

	result, err := h.Bookings.DeleteByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
