// users.go

package main

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// createUser is idempotent by email: a duplicate answers a 200 with an
// error payload and inserts nothing.
func (s *Server) createUser(c *gin.Context) {
	var user User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}

	ctx := c.Request.Context()
	err := s.col("users").FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		c.JSON(200, gin.H{"error": "Email already exists"})
		return
	}
	if err != mongo.ErrNoDocuments {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	if user.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		user.Password = string(hashed)
	}

	res, err := s.col("users").InsertOne(ctx, user)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	s.mailer.notify(
		"Account Create Success fully",
		"please verify your account and enjoy more future",
		user.Email,
	)
	c.JSON(200, res)
}

func (s *Server) listUsers(c *gin.Context) {
	cur, err := s.col("users").Find(c.Request.Context(), bson.M{})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	users := []User{}
	if err := cur.All(c.Request.Context(), &users); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	for i := range users {
		users[i].Password = ""
	}
	c.JSON(200, users)
}

func (s *Server) makeAdmin(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}
	res, err := s.col("users").UpdateOne(
		c.Request.Context(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": "admin"}},
	)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, res)
}

// checkAdmin reports whether the given email belongs to an admin. Callers
// may only ask about themselves.
func (s *Server) checkAdmin(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString("email") {
		c.JSON(403, gin.H{"admin": false})
		return
	}
	var user User
	err := s.col("users").FindOne(c.Request.Context(), bson.M{"email": email}).Decode(&user)
	if err != nil && err != mongo.ErrNoDocuments {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"admin": user.Role == "admin"})
}

func (s *Server) deleteUser(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}
	res, err := s.col("users").DeleteOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, res)
}
