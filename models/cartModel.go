package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a snapshot of a menu item placed in a user's cart. The owning
// email is the only link back to the user; the menu item id is kept so a
// payment can later reference what was ordered.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email" json:"email" validate:"required,email"`
	MenuItemID string             `bson:"menuItemId" json:"menuItemId" validate:"required"`
	Name       string             `bson:"name" json:"name"`
	Image      string             `bson:"image" json:"image"`
	Price      float64            `bson:"price" json:"price"`
}
