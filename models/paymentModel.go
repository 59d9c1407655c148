package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a completed charge. Menu item and cart ids are stored as
// native ObjectIDs so the order-stats $lookup against the menu collection can
// join on _id directly.
type Payment struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string               `bson:"email" json:"email"`
	Price         float64              `bson:"price" json:"price"`
	TransactionID string               `bson:"transactionId" json:"transactionId"`
	Date          time.Time            `bson:"date" json:"date"`
	Status        string               `bson:"status" json:"status"`
	MenuItemIDs   []primitive.ObjectID `bson:"menuItemIds" json:"menuItemIds"`
	CartIDs       []primitive.ObjectID `bson:"cartIds" json:"cartIds"`
}
