// models.go

package main

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Photo    string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`
	Password string             `bson:"password,omitempty" json:"password,omitempty"`
}

type Card struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	ItemID   string             `bson:"itemId" json:"itemId"`
	Name     string             `bson:"name" json:"name"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Price    float64            `bson:"price" json:"price"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

type Payment struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Email       string               `bson:"email" json:"email"`
	Price       float64              `bson:"price" json:"price"`
	ItemsID     []primitive.ObjectID `bson:"itemsId" json:"itemsId"`
	CartItemsID []string             `bson:"cartItemsId" json:"cartItemsId"`
	Status      string               `bson:"status,omitempty" json:"status,omitempty"`
	Date        string               `bson:"date,omitempty" json:"date,omitempty"`
}

type AdminStatus struct {
	Revenue  float64 `json:"revenue"`
	Users    int64   `json:"users"`
	Products int64   `json:"products"`
	Orders   int64   `json:"orders"`
}

type CategoryStat struct {
	Category string  `bson:"category" json:"category"`
	Count    int64   `bson:"count" json:"count"`
	Total    float64 `bson:"total" json:"total"`
}
