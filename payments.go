// payments.go

package main

import (
	"math"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// minorUnits converts a major-unit price into integer cents.
func minorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

func parseObjectIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *Server) createPaymentIntent(c *gin.Context) {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Price <= 0 {
		c.JSON(400, gin.H{"error": "Invalid price value"})
		return
	}
	amount := minorUnits(req.Price)
	if amount < 1 {
		c.JSON(400, gin.H{"error": "Amount must be greater than or equal to 1"})
		return
	}

	pi, err := paymentintent.New(&stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"clientSecret": pi.ClientSecret})
}

// createPayment records the payment and removes the paid cart entries in a
// single transaction, so a failed delete never leaves a recorded payment
// behind.
func (s *Server) createPayment(c *gin.Context) {
	var req struct {
		Email       string   `json:"email"`
		Price       float64  `json:"price"`
		ItemsID     []string `json:"itemsId"`
		CartItemsID []string `json:"cartItemsId"`
		Status      string   `json:"status"`
		Date        string   `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	cartIDs, err := parseObjectIDs(req.CartItemsID)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	itemIDs, err := parseObjectIDs(req.ItemsID)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}

	payment := bson.M{
		"email":       req.Email,
		"price":       req.Price,
		"itemsId":     itemIDs,
		"cartItemsId": req.CartItemsID,
		"status":      req.Status,
		"date":        req.Date,
	}

	ctx := c.Request.Context()
	session, err := s.client.StartSession()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	defer session.EndSession(ctx)

	out, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		insertRes, err := s.col("payments").InsertOne(sc, payment)
		if err != nil {
			return nil, err
		}
		deleteRes, err := s.col("cards").DeleteMany(sc, bson.M{"_id": bson.M{"$in": cartIDs}})
		if err != nil {
			return nil, err
		}
		return gin.H{"insertResult": insertRes, "deleteResult": deleteRes}, nil
	})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, out)
}
