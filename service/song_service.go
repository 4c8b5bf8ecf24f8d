package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Trungproe/ResVibe/domain"
	"github.com/Trungproe/ResVibe/dto"
	"github.com/Trungproe/ResVibe/repository"
	"github.com/Trungproe/ResVibe/urlcheck"
	"go.mongodb.org/mongo-driver/bson"
)

// SongService is the authority for turning stored song records into validated,
// denormalized views and for mediating writes through existence and
// reachability checks.
type SongService interface {
	GetAllSongs(ctx context.Context, opts repository.ListOptions) ([]*domain.SongView, error)
	GetSongByID(ctx context.Context, id string) (*domain.SongView, error)
	CreateSong(ctx context.Context, req *dto.CreateSongRequest) (string, error)
	UpdateSong(ctx context.Context, id string, req *dto.UpdateSongRequest) (bool, error)
	DeleteSong(ctx context.Context, id string) (bool, error)
	GetRandomSongs(ctx context.Context, limit int, region string) ([]*domain.SongView, error)
	GetSongsByRegion(ctx context.Context, region string, limit int) ([]*domain.SongView, error)
	GetRandomSongsByRegion(ctx context.Context, region string, limit int) ([]*domain.SongView, error)
	GetSongsByGenre(ctx context.Context, genre string, page, limit int) ([]*domain.SongView, error)
	GetSongsByArtistID(ctx context.Context, artistID string) ([]*domain.SongView, error)
	GetSongsByAlbum(ctx context.Context, album string) ([]*domain.SongView, error)
	SearchSongs(ctx context.Context, query string, limit int) ([]*domain.SongView, error)
}

type songService struct {
	songRepo   repository.SongRepository
	artistRepo repository.ArtistRepository
	checker    urlcheck.Checker
}

func NewSongService(songRepo repository.SongRepository, artistRepo repository.ArtistRepository, checker urlcheck.Checker) SongService {
	return &songService{
		songRepo:   songRepo,
		artistRepo: artistRepo,
		checker:    checker,
	}
}

// mapToView resolves the artist name at read time. An artist that no longer
// exists yields an empty name, not an error.
func (s *songService) mapToView(ctx context.Context, song *domain.Song) *domain.SongView {
	artistName := ""
	if song.ArtistID != "" {
		if artist, err := s.artistRepo.FindByID(ctx, song.ArtistID); err == nil && artist != nil {
			artistName = artist.Name
		}
	}

	genre := song.Genre
	if genre == nil {
		genre = []string{}
	}

	return &domain.SongView{
		ID:          song.ID.Hex(),
		Title:       song.Title,
		Artist:      artistName,
		Album:       song.Album,
		ReleaseYear: song.ReleaseYear,
		Duration:    song.Duration,
		Genre:       genre,
		CoverArt:    song.CoverArt,
		AudioURL:    song.AudioURL,
		LyricsLRC:   song.LyricsLRC,
		ArtistID:    song.ArtistID,
		CreatedAt:   song.CreatedAt,
		UpdatedAt:   song.UpdatedAt,
	}
}

func (s *songService) mapAll(ctx context.Context, songs []*domain.Song) []*domain.SongView {
	out := make([]*domain.SongView, 0, len(songs))
	for _, song := range songs {
		out = append(out, s.mapToView(ctx, song))
	}
	return out
}

func (s *songService) GetAllSongs(ctx context.Context, opts repository.ListOptions) ([]*domain.SongView, error) {
	songs, err := s.songRepo.FindAll(ctx, opts)
	if err != nil {
		return nil, err
	}
	return s.mapAll(ctx, songs), nil
}

func (s *songService) GetSongByID(ctx context.Context, id string) (*domain.SongView, error) {
	song, err := s.songRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return s.mapToView(ctx, song), nil
}

func (s *songService) CreateSong(ctx context.Context, req *dto.CreateSongRequest) (string, error) {
	if err := s.validateArtistExists(ctx, req.ArtistID); err != nil {
		return "", err
	}
	if req.AudioURL != "" && !s.checker.Check(req.AudioURL) {
		return "", domain.NewValidationError("audioUrl", "invalid or inaccessible audio URL")
	}
	if req.CoverArt != "" && !s.checker.Check(req.CoverArt) {
		return "", domain.NewValidationError("coverArt", "invalid or inaccessible cover art URL")
	}

	song := &domain.Song{
		Title:       req.Title,
		Album:       req.Album,
		ReleaseYear: req.ReleaseYear,
		Duration:    req.Duration,
		Genre:       req.Genre,
		CoverArt:    req.CoverArt,
		AudioURL:    req.AudioURL,
		LyricsLRC:   req.LyricsLRC,
		ArtistID:    req.ArtistID,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   nil,
	}
	return s.songRepo.Insert(ctx, song)
}

// UpdateSong applies only the fields present in req. A missing target id is a
// no-op (false), not an error.
func (s *songService) UpdateSong(ctx context.Context, id string, req *dto.UpdateSongRequest) (bool, error) {
	updates := bson.M{}

	if req.ArtistID != nil {
		if err := s.validateArtistExists(ctx, *req.ArtistID); err != nil {
			return false, err
		}
		updates["artistId"] = *req.ArtistID
	}
	if req.AudioURL != nil {
		if *req.AudioURL != "" && !s.checker.Check(*req.AudioURL) {
			return false, domain.NewValidationError("audioUrl", "invalid or inaccessible audio URL")
		}
		updates["audioUrl"] = *req.AudioURL
	}
	if req.CoverArt != nil {
		if *req.CoverArt != "" && !s.checker.Check(*req.CoverArt) {
			return false, domain.NewValidationError("coverArt", "invalid or inaccessible cover art URL")
		}
		updates["coverArt"] = *req.CoverArt
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Album != nil {
		updates["album"] = *req.Album
	}
	if req.ReleaseYear != nil {
		updates["releaseYear"] = *req.ReleaseYear
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.Genre != nil {
		updates["genre"] = *req.Genre
	}
	if req.LyricsLRC != nil {
		updates["lyrics_lrc"] = *req.LyricsLRC
	}

	updates["updated_at"] = time.Now().UTC()
	return s.songRepo.Update(ctx, id, updates)
}

func (s *songService) DeleteSong(ctx context.Context, id string) (bool, error) {
	return s.songRepo.Delete(ctx, id)
}

// GetRandomSongs oversamples the repository threefold so the region filter
// still leaves enough candidates, then shuffles and truncates. Fewer than
// limit results are returned as-is, with no backfill.
func (s *songService) GetRandomSongs(ctx context.Context, limit int, region string) ([]*domain.SongView, error) {
	if limit <= 0 {
		limit = 10
	}
	songs, err := s.songRepo.FindRandom(ctx, limit*3)
	if err != nil {
		return nil, err
	}

	if region != "" {
		wantVietnamese := strings.EqualFold(region, "vietnamese")
		filtered := songs[:0]
		for _, song := range songs {
			if hasVietnameseTag(song.Genre) == wantVietnamese {
				filtered = append(filtered, song)
			}
		}
		songs = filtered
	}

	rand.Shuffle(len(songs), func(i, j int) {
		songs[i], songs[j] = songs[j], songs[i]
	})
	if len(songs) > limit {
		songs = songs[:limit]
	}
	return s.mapAll(ctx, songs), nil
}

func (s *songService) GetSongsByRegion(ctx context.Context, region string, limit int) ([]*domain.SongView, error) {
	if limit <= 0 {
		limit = 12
	}
	songs, err := s.songRepo.FindRandomByRegion(ctx, region, limit)
	if err != nil {
		return nil, err
	}
	return s.mapAll(ctx, songs), nil
}

// GetRandomSongsByRegion is an alias kept for route compatibility; it is the
// same repository call and mapping as GetSongsByRegion.
func (s *songService) GetRandomSongsByRegion(ctx context.Context, region string, limit int) ([]*domain.SongView, error) {
	return s.GetSongsByRegion(ctx, region, limit)
}

func (s *songService) GetSongsByGenre(ctx context.Context, genre string, page, limit int) ([]*domain.SongView, error) {
	if genre == "" {
		return nil, domain.NewValidationError("genre", "genre is required")
	}
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	songs, err := s.songRepo.FindByGenre(ctx, genre, page, limit)
	if err != nil {
		return nil, err
	}
	return s.mapAll(ctx, songs), nil
}

func (s *songService) GetSongsByArtistID(ctx context.Context, artistID string) ([]*domain.SongView, error) {
	songs, err := s.songRepo.FindByArtistID(ctx, artistID)
	if err != nil {
		return nil, err
	}
	return s.mapAll(ctx, songs), nil
}

func (s *songService) GetSongsByAlbum(ctx context.Context, album string) ([]*domain.SongView, error) {
	songs, err := s.songRepo.FindByAlbum(ctx, album)
	if err != nil {
		return nil, err
	}
	return s.mapAll(ctx, songs), nil
}

func (s *songService) SearchSongs(ctx context.Context, query string, limit int) ([]*domain.SongView, error) {
	songs, err := s.songRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return s.mapAll(ctx, songs), nil
}

func (s *songService) validateArtistExists(ctx context.Context, artistID string) error {
	artist, err := s.artistRepo.FindByID(ctx, artistID)
	if err != nil && !isNotFound(err) {
		return err
	}
	if artist == nil {
		return domain.NewValidationError("artistId", fmt.Sprintf("artist with ID %s does not exist", artistID))
	}
	return nil
}

func hasVietnameseTag(genres []string) bool {
	for _, g := range genres {
		if strings.Contains(strings.ToLower(g), "vietnamese") {
			return true
		}
	}
	return false
}
