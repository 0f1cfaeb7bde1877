// main.go

package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	cfg := loadConfig()

	log.Println("Connecting to MongoDB...")
	client, err := connectMongo(cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	stripe.Key = cfg.StripeKey

	mailer := newMailer(cfg)
	mailer.start()

	s := newServer(cfg, client, mailer)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))
	s.routes(r)

	log.Printf("Server started on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
