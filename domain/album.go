package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Album struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	ArtistID    string             `bson:"artistId" json:"artistId"`
	ReleaseYear int                `bson:"releaseYear,omitempty" json:"releaseYear,omitempty"`
	CoverArt    string             `bson:"coverArt,omitempty" json:"coverArt,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
