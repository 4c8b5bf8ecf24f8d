package dto

type CreateArtistRequest struct {
	Name     string   `json:"name" binding:"required"`
	Genres   []string `json:"genres"`
	Bio      string   `json:"bio"`
	ImageURL string   `json:"imageUrl"`
}

type UpdateArtistRequest struct {
	Name     *string   `json:"name"`
	Genres   *[]string `json:"genres"`
	Bio      *string   `json:"bio"`
	ImageURL *string   `json:"imageUrl"`
}

type CreateAlbumRequest struct {
	Title       string `json:"title" binding:"required"`
	ArtistID    string `json:"artistId" binding:"required"`
	ReleaseYear int    `json:"releaseYear"`
	CoverArt    string `json:"coverArt"`
}

type UpdateAlbumRequest struct {
	Title       *string `json:"title"`
	ArtistID    *string `json:"artistId"`
	ReleaseYear *int    `json:"releaseYear"`
	CoverArt    *string `json:"coverArt"`
}

type CreatePlaylistRequest struct {
	Name     string   `json:"name" binding:"required"`
	Creator  string   `json:"creator"`
	CoverArt string   `json:"coverArt"`
	SongIDs  []string `json:"songIds"`
}

type PlaylistSongRequest struct {
	SongID string `json:"songId" binding:"required"`
}
