// items.go

package main

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Items are schemaless product documents; handlers pass the request body
// through to the collection untouched apart from stripping any client-sent
// _id.
func (s *Server) createItem(c *gin.Context) {
	var item bson.M
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	delete(item, "_id")
	res, err := s.col("items").InsertOne(c.Request.Context(), item)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, res)
}

func (s *Server) listItems(c *gin.Context) {
	cur, err := s.col("items").Find(c.Request.Context(), bson.M{})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	items := []bson.M{}
	if err := cur.All(c.Request.Context(), &items); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, items)
}

func (s *Server) getItem(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}
	var item bson.M
	err := s.col("items").FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		c.JSON(200, nil)
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, item)
}

// updateItem merges the request body into the document, creating it when
// absent.
func (s *Server) updateItem(c *gin.Context) {
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
	res, err := s.col("items").UpdateOne(
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

func (s *Server) deleteItem(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}
	res, err := s.col("items").DeleteOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, res)
}
