// middleware.go

package main

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func requestID(c *gin.Context) {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	c.Set("requestId", id)
	c.Writer.Header().Set("X-Request-ID", id)
	c.Next()
}

// authRequired rejects requests without a valid bearer token and stashes
// the token's email in the context for downstream handlers.
func (s *Server) authRequired(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.AbortWithStatusJSON(401, gin.H{"error": true, "message": "Unauthorized access"})
		return
	}
	claims, err := s.parseToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		c.AbortWithStatusJSON(401, gin.H{"error": true, "message": "Unauthorized access"})
		return
	}
	c.Set("email", claims.Email)
	c.Next()
}

// adminRequired must run after authRequired. A missing context email means
// the guard was miswired, so it fails closed.
func (s *Server) adminRequired(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.AbortWithStatusJSON(403, gin.H{"error": true, "message": "Forbidden access"})
		return
	}
	var user User
	err := s.col("users").FindOne(c.Request.Context(), bson.M{"email": email}).Decode(&user)
	if err != nil || user.Role != "admin" {
		c.AbortWithStatusJSON(403, gin.H{"error": true, "message": "Forbidden access"})
		return
	}
	c.Next()
}
