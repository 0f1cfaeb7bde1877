// cards.go

package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func (s *Server) createCard(c *gin.Context) {
	var card Card
	if err := c.ShouldBindJSON(&card); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	res, err := s.col("cards").InsertOne(c.Request.Context(), card)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	s.mailer.notify(
		"your order is success fully",
		fmt.Sprintf("Order Id: %v", res.InsertedID),
		card.Email,
	)
	c.JSON(200, res)
}

// listCardsByEmail returns the caller's own cart entries. Asking for
// someone else's email is forbidden; asking for none at all yields an
// empty list.
func (s *Server) listCardsByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(200, []Card{})
		return
	}
	if email != c.GetString("email") {
		c.JSON(403, gin.H{"error": true, "message": "Forbidden access"})
		return
	}
	cur, err := s.col("cards").Find(c.Request.Context(), bson.M{"email": email})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	cards := []Card{}
	if err := cur.All(c.Request.Context(), &cards); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, cards)
}

func (s *Server) listCards(c *gin.Context) {
	cur, err := s.col("cards").Find(c.Request.Context(), bson.M{})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	cards := []Card{}
	if err := cur.All(c.Request.Context(), &cards); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, cards)
}

func (s *Server) deleteCard(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}
	res, err := s.col("cards").DeleteOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, res)
}
