// banners.go

package main

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func (s *Server) addBanner(c *gin.Context) {
	var banner bson.M
	if err := c.ShouldBindJSON(&banner); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	delete(banner, "_id")
	res, err := s.col("banners").InsertOne(c.Request.Context(), banner)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, res)
}

func (s *Server) listBanners(c *gin.Context) {
	cur, err := s.col("banners").Find(c.Request.Context(), bson.M{})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	banners := []bson.M{}
	if err := cur.All(c.Request.Context(), &banners); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, banners)
}

func (s *Server) deleteBanner(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}
	res, err := s.col("banners").DeleteOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, res)
}
