package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abuabdullah23/air-cnc-conceptual-server/internal/config"
	"github.com/abuabdullah23/air-cnc-conceptual-server/internal/handler"
	"github.com/abuabdullah23/air-cnc-conceptual-server/internal/mailer"
	"github.com/abuabdullah23/air-cnc-conceptual-server/internal/metrics"
	"github.com/abuabdullah23/air-cnc-conceptual-server/internal/middleware"
	mongodb "github.com/abuabdullah23/air-cnc-conceptual-server/internal/mongo"
	"github.com/abuabdullah23/air-cnc-conceptual-server/internal/payment"
	"github.com/abuabdullah23/air-cnc-conceptual-server/internal/repository"
	"github.com/abuabdullah23/air-cnc-conceptual-server/internal/service"
)

const dbName = "aircncDb"

func main() {
	cfg := config.Load()

	// Подключение к MongoDB. Ошибка ping не фатальна: сервер продолжает
	// слушать, а ошибки стора всплывают на уровне запросов.
	client, err := mongodb.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		if client == nil {
			log.Fatalf("❌ Mongo connect error: %v", err)
		}
		log.Printf("❌ Mongo ping failed: %v", err)
	} else {
		log.Println("✅ Connected to MongoDB")
	}

	userRepo := repository.NewUserRepository(client, dbName)
	roomRepo := repository.NewRoomRepository(client, dbName)
	bookingRepo := repository.NewBookingRepository(client, dbName)

	m := metrics.NewMetrics()
	mail := mailer.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.MailUser, cfg.MailPass, m.MailsSent, m.MailsFailed)
	bookingService := service.NewBookingService(bookingRepo, mail, m)
	gateway := payment.NewGateway(cfg.StripeSecretKey)

	userHandler := &handler.UserHandler{Users: userRepo}
	roomHandler := &handler.RoomHandler{Rooms: roomRepo}
	bookingHandler := &handler.BookingHandler{Service: bookingService, Bookings: bookingRepo}
	authHandler := &handler.AuthHandler{Secret: cfg.JWTSecret}
	paymentHandler := &handler.PaymentHandler{Gateway: gateway}

	r := gin.Default()
	r.Use(m.Middleware())

	auth := middleware.JWTAuthMiddleware(cfg.JWTSecret)
	userHandler.RegisterRoutes(r)
	roomHandler.RegisterRoutes(r, auth)
	bookingHandler.RegisterRoutes(r)
	authHandler.RegisterRoutes(r)
	paymentHandler.RegisterRoutes(r)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "AirCNC Server is running..")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	log.Printf("AirCNC is running on port %s …", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
