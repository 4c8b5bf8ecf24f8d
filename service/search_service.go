package service

import (
	"context"

	"github.com/Trungproe/ResVibe/domain"
	"github.com/Trungproe/ResVibe/repository"
)

type SearchResult struct {
	Songs   []*domain.SongView `json:"songs"`
	Artists []*domain.Artist   `json:"artists"`
	Albums  []*domain.Album    `json:"albums"`
}

type SearchService interface {
	Search(ctx context.Context, query string, limit int) (*SearchResult, error)
}

type searchService struct {
	songSvc    SongService
	artistRepo repository.ArtistRepository
	albumRepo  repository.AlbumRepository
}

func NewSearchService(songSvc SongService, artistRepo repository.ArtistRepository, albumRepo repository.AlbumRepository) SearchService {
	return &searchService{
		songSvc:    songSvc,
		artistRepo: artistRepo,
		albumRepo:  albumRepo,
	}
}

// Search runs one case-insensitive query across songs, artists and albums.
func (s *searchService) Search(ctx context.Context, query string, limit int) (*SearchResult, error) {
	if query == "" {
		return nil, domain.NewValidationError("query", "query is required")
	}
	if limit <= 0 {
		limit = 20
	}

	songs, err := s.songSvc.SearchSongs(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	artists, err := s.artistRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	albums, err := s.albumRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	if songs == nil {
		songs = []*domain.SongView{}
	}
	if artists == nil {
		artists = []*domain.Artist{}
	}
	if albums == nil {
		albums = []*domain.Album{}
	}
	return &SearchResult{Songs: songs, Artists: artists, Albums: albums}, nil
}
