// server.go

package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Server owns the process-wide resources: the mongo client, the database
// handle and the notification mailer. It is built once in main and shared
// by every request.
type Server struct {
	client *mongo.Client
	db     *mongo.Database
	mailer *Mailer
	cfg    Config
}

func newServer(cfg Config, client *mongo.Client, mailer *Mailer) *Server {
	return &Server{
		client: client,
		db:     client.Database(cfg.DBName),
		mailer: mailer,
		cfg:    cfg,
	}
}

func connectMongo(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *Server) col(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// objectIDParam parses the :id path parameter into an ObjectID and answers
// 400 itself when the value is malformed.
func objectIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return primitive.NilObjectID, false
	}
	return id, true
}
