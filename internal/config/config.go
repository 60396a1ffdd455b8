package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config собирает все настройки сервиса из переменных окружения.
type Config struct {
	Port            string
	MongoURI        string
	JWTSecret       string
	StripeSecretKey string
	MailUser        string
	MailPass        string
	SMTPHost        string
	SMTPPort        int
}

// Load reads .env if present and builds the Config from the environment.
// Missing values fall back to defaults; credentials stay empty and surface
// later as request-level errors, not startup failures.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file")
	}

	cfg := &Config{
		Port:            getEnv("PORT", "5000"),
		MongoURI:        os.Getenv("MONGO_URI"),
		JWTSecret:       os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeSecretKey: os.Getenv("PAYMENT_SECRET_KEY"),
		MailUser:        os.Getenv("MAIL_USER"),
		MailPass:        os.Getenv("MAIL_PASS"),
		SMTPHost:        getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:        587,
	}

	if cfg.MongoURI == "" {
		cfg.MongoURI = fmt.Sprintf(
			"mongodb+srv://%s:%s@cluster0.ufrxsge.mongodb.net/?retryWrites=true&w=majority",
			os.Getenv("DB_USER"), os.Getenv("DB_PASS"),
		)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
