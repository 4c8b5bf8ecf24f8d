package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Song is the stored shape of a track. Optional fields carry omitempty so an
// unset field is absent from the document rather than written as a zero value.
type Song struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Album       string             `bson:"album,omitempty" json:"album,omitempty"`
	ReleaseYear int                `bson:"releaseYear,omitempty" json:"releaseYear,omitempty"`
	Duration    int                `bson:"duration,omitempty" json:"duration,omitempty"` // seconds
	Genre       []string           `bson:"genre,omitempty" json:"genre,omitempty"`
	CoverArt    string             `bson:"coverArt,omitempty" json:"coverArt,omitempty"`
	AudioURL    string             `bson:"audioUrl,omitempty" json:"audioUrl,omitempty"`
	LyricsLRC   string             `bson:"lyrics_lrc,omitempty" json:"lyrics_lrc,omitempty"`
	ArtistID    string             `bson:"artistId" json:"artistId"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   *time.Time         `bson:"updated_at" json:"updated_at"`
}

// SongView is the denormalized representation returned by every read path.
// The artist name is resolved at read time; optional fields are given explicit
// zero defaults. UpdatedAt stays nullable to signal "never updated".
type SongView struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Artist      string     `json:"artist"`
	Album       string     `json:"album"`
	ReleaseYear int        `json:"releaseYear"`
	Duration    int        `json:"duration"`
	Genre       []string   `json:"genre"`
	CoverArt    string     `json:"coverArt"`
	AudioURL    string     `json:"audioUrl"`
	LyricsLRC   string     `json:"lyrics_lrc"`
	ArtistID    string     `json:"artistId"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
