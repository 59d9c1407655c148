package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Category string             `bson:"category" json:"category" validate:"required,min=2,max=50"`
	Recipe   string             `bson:"recipe" json:"recipe"`
	Image    string             `bson:"image" json:"image"`
	Price    float64            `bson:"price" json:"price" validate:"required,gt=0"`
}
