// config.go

package main

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	MongoURI     string
	DBName       string
	JWTSecret    []byte
	StripeKey    string
	SMTPHost     string
	SMTPPort     int
	SMTPEmail    string
	SMTPPassword string
}

func loadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:         getenv("PORT", "5000"),
		MongoURI:     os.Getenv("MONGO_URI"),
		DBName:       getenv("DB_NAME", "organicDb"),
		JWTSecret:    []byte(os.Getenv("JWT_SECRET")),
		StripeKey:    os.Getenv("PAYMENT_SECRET_KEY"),
		SMTPHost:     getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     587,
		SMTPEmail:    os.Getenv("SMTP_EMAIL"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
	}
	if p := os.Getenv("SMTP_PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			log.Fatalf("invalid SMTP_PORT %q: %v", p, err)
		}
		cfg.SMTPPort = port
	}
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI not set")
	}
	if len(cfg.JWTSecret) == 0 {
		log.Fatal("JWT_SECRET not set")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
