// stats.go

package main

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func revenueOf(payments []Payment) float64 {
	var total float64
	for _, p := range payments {
		total += p.Price
	}
	return total
}

// adminStatus reports collection counts plus total revenue. Revenue is a
// full scan of the payments collection.
func (s *Server) adminStatus(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := s.col("users").EstimatedDocumentCount(ctx)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	products, err := s.col("items").EstimatedDocumentCount(ctx)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	orders, err := s.col("payments").EstimatedDocumentCount(ctx)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	cur, err := s.col("payments").Find(ctx, bson.M{})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	var payments []Payment
	if err := cur.All(ctx, &payments); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, AdminStatus{
		Revenue:  revenueOf(payments),
		Users:    users,
		Products: products,
		Orders:   orders,
	})
}

// orderStats groups sold items by category with per-category counts and
// totals, joining payments to items on their itemsId references.
func (s *Server) orderStats(c *gin.Context) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "items",
			"localField":   "itemsId",
			"foreignField": "_id",
			"as":           "orderItems",
		}}},
		{{Key: "$unwind", Value: "$orderItems"}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$orderItems.category",
			"count": bson.M{"$sum": 1},
			"total": bson.M{"$sum": "$orderItems.price"},
		}}},
		{{Key: "$project", Value: bson.M{
			"category": "$_id",
			"count":    1,
			"total":    bson.M{"$round": bson.A{"$total", 2}},
			"_id":      0,
		}}},
	}

	ctx := c.Request.Context()
	cur, err := s.col("payments").Aggregate(ctx, pipeline)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	stats := []CategoryStat{}
	if err := cur.All(ctx, &stats); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, stats)
}
