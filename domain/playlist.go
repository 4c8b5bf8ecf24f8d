package domain

import "time"

type Playlist struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Creator   string    `bson:"creator" json:"creator"` // user id
	CoverArt  string    `bson:"coverArt" json:"coverArt"`
	SongIDs   []string  `bson:"songIds" json:"songIds"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
