package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/abuabdullah23/air-cnc-conceptual-server/internal/metrics"
	"github.com/abuabdullah23/air-cnc-conceptual-server/internal/model"
)

// BookingStore is the slice of the booking repository the service needs.
type BookingStore interface {
	Insert(ctx context.Context, booking *model.Booking) (*mongo.InsertOneResult, error)
}

// Dispatcher sends a notification without reporting back to the caller.
type Dispatcher interface {
	SendAsync(to, subject, body string)
}

// BookingService inserts the booking and notifies both parties. The insert
// result is what the HTTP caller gets; the notifications never affect it.
type BookingService struct {
	bookings BookingStore
	mail     Dispatcher
	metrics  *metrics.Metrics
}

// NewBookingService wires the store and the dispatcher; metrics may be nil.
func NewBookingService(bookings BookingStore, mail Dispatcher, m *metrics.Metrics) *BookingService {
	return &BookingService{bookings: bookings, mail: mail, metrics: m}
}

// Create stores the booking, then dispatches exactly two emails: one to the
// guest, one to the host. A failed insert skips the notifications.
func (s *BookingService) Create(ctx context.Context, booking *model.Booking) (*mongo.InsertOneResult, error) {
	result, err := s.bookings.Insert(ctx, booking)
	if err != nil {
		return nil, err
	}

	guestBody := fmt.Sprintf(
		"Your booking for %s is confirmed. Transaction Id: %s. Check-in: %s, Check-out: %s.",
		booking.Location, booking.TransactionID, booking.From, booking.To,
	)
	hostBody := fmt.Sprintf(
		"%s booked your room in %s. Transaction Id: %s. Check-in: %s, Check-out: %s.",
		booking.Guest.Email, booking.Location, booking.TransactionID, booking.From, booking.To,
	)

	s.mail.SendAsync(booking.Guest.Email, "Booking Successful!", guestBody)
	s.mail.SendAsync(booking.Host, "Your room got booked!", hostBody)

	if s.metrics != nil {
		s.metrics.BookingsCreated.Inc()
		s.metrics.MailsDispatched.Add(2)
	}

	return result, nil
}
