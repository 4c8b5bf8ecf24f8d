package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Trungproe/ResVibe/domain"
	"github.com/Trungproe/ResVibe/dto"
	"github.com/Trungproe/ResVibe/repository"
	"go.mongodb.org/mongo-driver/bson"
)

type AlbumService interface {
	CreateAlbum(ctx context.Context, req *dto.CreateAlbumRequest) (string, error)
	ListAlbums(ctx context.Context) ([]*domain.Album, error)
	GetAlbumByID(ctx context.Context, id string) (*domain.Album, error)
	GetAlbumsByArtistID(ctx context.Context, artistID string) ([]*domain.Album, error)
	GetAlbumSongs(ctx context.Context, id string) ([]*domain.SongView, error)
	UpdateAlbum(ctx context.Context, id string, req *dto.UpdateAlbumRequest) (bool, error)
	DeleteAlbum(ctx context.Context, id string) (bool, error)
}

type albumService struct {
	repo       repository.AlbumRepository
	artistRepo repository.ArtistRepository
	songSvc    SongService
}

func NewAlbumService(repo repository.AlbumRepository, artistRepo repository.ArtistRepository, songSvc SongService) AlbumService {
	return &albumService{
		repo:       repo,
		artistRepo: artistRepo,
		songSvc:    songSvc,
	}
}

func (s *albumService) CreateAlbum(ctx context.Context, req *dto.CreateAlbumRequest) (string, error) {
	artist, err := s.artistRepo.FindByID(ctx, req.ArtistID)
	if err != nil && !isNotFound(err) {
		return "", err
	}
	if artist == nil {
		return "", domain.NewValidationError("artistId", fmt.Sprintf("artist with ID %s does not exist", req.ArtistID))
	}

	album := &domain.Album{
		Title:       req.Title,
		ArtistID:    req.ArtistID,
		ReleaseYear: req.ReleaseYear,
		CoverArt:    req.CoverArt,
		CreatedAt:   time.Now().UTC(),
	}
	return s.repo.Create(ctx, album)
}

func (s *albumService) ListAlbums(ctx context.Context) ([]*domain.Album, error) {
	return s.repo.FindAll(ctx)
}

func (s *albumService) GetAlbumByID(ctx context.Context, id string) (*domain.Album, error) {
	album, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return album, nil
}

func (s *albumService) GetAlbumsByArtistID(ctx context.Context, artistID string) ([]*domain.Album, error) {
	return s.repo.FindByArtistID(ctx, artistID)
}

// GetAlbumSongs resolves an album's tracks by album title; songs store the
// album as a display name, not a reference.
func (s *albumService) GetAlbumSongs(ctx context.Context, id string) ([]*domain.SongView, error) {
	album, err := s.GetAlbumByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if album == nil {
		return nil, nil
	}
	return s.songSvc.GetSongsByAlbum(ctx, album.Title)
}

func (s *albumService) UpdateAlbum(ctx context.Context, id string, req *dto.UpdateAlbumRequest) (bool, error) {
	updates := bson.M{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.ArtistID != nil {
		artist, err := s.artistRepo.FindByID(ctx, *req.ArtistID)
		if err != nil && !isNotFound(err) {
			return false, err
		}
		if artist == nil {
			return false, domain.NewValidationError("artistId", fmt.Sprintf("artist with ID %s does not exist", *req.ArtistID))
		}
		updates["artistId"] = *req.ArtistID
	}
	if req.ReleaseYear != nil {
		updates["releaseYear"] = *req.ReleaseYear
	}
	if req.CoverArt != nil {
		updates["coverArt"] = *req.CoverArt
	}
	if len(updates) == 0 {
		return false, domain.NewValidationError("", "no fields to update")
	}
	return s.repo.Update(ctx, id, updates)
}

func (s *albumService) DeleteAlbum(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
