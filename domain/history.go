package domain

import "time"

// HistoryEntry records a single play of a song by a user.
type HistoryEntry struct {
	ID       string    `bson:"id" json:"id"`
	UserID   string    `bson:"userId" json:"userId"`
	SongID   string    `bson:"songId" json:"songId"`
	PlayedAt time.Time `bson:"played_at" json:"played_at"`
}
