package dto

type CreateSongRequest struct {
	Title       string   `json:"title" binding:"required"`
	Album       string   `json:"album"`
	ReleaseYear int      `json:"releaseYear"`
	Duration    int      `json:"duration"`
	Genre       []string `json:"genre"`
	CoverArt    string   `json:"coverArt"`
	AudioURL    string   `json:"audioUrl"`
	LyricsLRC   string   `json:"lyrics_lrc"`
	ArtistID    string   `json:"artistId" binding:"required"`
}

// UpdateSongRequest is a field update set: a nil pointer means the field was
// not supplied and must be left untouched on the stored record.
type UpdateSongRequest struct {
	Title       *string   `json:"title"`
	Album       *string   `json:"album"`
	ReleaseYear *int      `json:"releaseYear"`
	Duration    *int      `json:"duration"`
	Genre       *[]string `json:"genre"`
	CoverArt    *string   `json:"coverArt"`
	AudioURL    *string   `json:"audioUrl"`
	LyricsLRC   *string   `json:"lyrics_lrc"`
	ArtistID    *string   `json:"artistId"`
}

type ListSongsQuery struct {
	Sort  string `form:"sort"`
	Limit int64  `form:"limit"`
	Skip  int64  `form:"skip"`
}
