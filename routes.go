// routes.go

package main

import "github.com/gin-gonic/gin"

func (s *Server) routes(r *gin.Engine) {
	r.Use(requestID)

	r.GET("/", s.liveness)
	r.POST("/jwt", s.createToken)

	// Banners
	r.POST("/addBanner", s.addBanner)
	r.GET("/banner", s.listBanners)
	r.DELETE("/deleteBanner/:id", s.deleteBanner)

	// Users
	r.POST("/users", s.createUser)
	r.GET("/users", s.authRequired, s.adminRequired, s.listUsers)
	r.PATCH("/users/admin/:id", s.makeAdmin)
	r.GET("/users/admin/:email", s.authRequired, s.checkAdmin)
	r.DELETE("/user/:id", s.deleteUser)

	// Items
	r.POST("/items", s.authRequired, s.adminRequired, s.createItem)
	r.GET("/items", s.listItems)
	r.GET("/items/:id", s.getItem)
	r.PUT("/items/:id", s.authRequired, s.adminRequired, s.updateItem)
	r.DELETE("/items/:id", s.authRequired, s.adminRequired, s.deleteItem)

	// Reviews
	r.POST("/review", s.authRequired, s.createReview)
	r.GET("/reviews", s.listReviews)
	r.GET("/review/:email", s.authRequired, s.listReviewsByEmail)
	r.GET("/editReviews/:id", s.getReview)
	r.PUT("/updateReview/:id", s.updateReview)
	r.DELETE("/review/:id", s.authRequired, s.deleteReview)

	// Cards (shopping cart entries)
	r.POST("/cards", s.createCard)
	r.GET("/cards", s.authRequired, s.listCardsByEmail)
	r.GET("/card", s.authRequired, s.adminRequired, s.listCards)
	r.DELETE("/cards/:id", s.deleteCard)

	// Payments
	r.POST("/create-payment-intent", s.authRequired, s.createPaymentIntent)
	r.POST("/payments", s.authRequired, s.createPayment)

	// Admin dashboards
	r.GET("/admin-status", s.authRequired, s.adminRequired, s.adminStatus)
	r.GET("/order-stats", s.authRequired, s.adminRequired, s.orderStats)
}

func (s *Server) liveness(c *gin.Context) {
	c.String(200, "Shop is running port: %s", s.cfg.Port)
}
