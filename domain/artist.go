package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Artist struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Genres    []string           `bson:"genres,omitempty" json:"genres,omitempty"`
	Bio       string             `bson:"bio,omitempty" json:"bio,omitempty"`
	ImageURL  string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
