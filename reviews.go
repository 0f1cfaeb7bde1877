// reviews.go

package main

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *Server) createReview(c *gin.Context) {
	var review bson.M
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	delete(review, "_id")
	res, err := s.col("reviews").InsertOne(c.Request.Context(), review)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, res)
}

func (s *Server) listReviews(c *gin.Context) {
	cur, err := s.col("reviews").Find(c.Request.Context(), bson.M{})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	reviews := []bson.M{}
	if err := cur.All(c.Request.Context(), &reviews); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, reviews)
}

func (s *Server) listReviewsByEmail(c *gin.Context) {
	cur, err := s.col("reviews").Find(c.Request.Context(), bson.M{"email": c.Param("email")})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	reviews := []bson.M{}
	if err := cur.All(c.Request.Context(), &reviews); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, reviews)
}

func (s *Server) getReview(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}
	var review bson.M
	err := s.col("reviews").FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&review)
	if err == mongo.ErrNoDocuments {
		c.JSON(200, nil)
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, review)
}

func (s *Server) updateReview(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}
	var fields bson.M
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	delete(fields, "_id")
	res, err := s.col("reviews").UpdateOne(
		c.Request.Context(),
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, res)
}

func (s *Server) deleteReview(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}
	res, err := s.col("reviews").DeleteOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, res)
}
