package service

import (
	"context"
	"time"

	"github.com/Trungproe/ResVibe/domain"
	"github.com/Trungproe/ResVibe/dto"
	"github.com/Trungproe/ResVibe/repository"
	"go.mongodb.org/mongo-driver/bson"
)

type ArtistService interface {
	CreateArtist(ctx context.Context, req *dto.CreateArtistRequest) (string, error)
	ListArtists(ctx context.Context) ([]*domain.Artist, error)
	GetArtistByID(ctx context.Context, id string) (*domain.Artist, error)
	UpdateArtist(ctx context.Context, id string, req *dto.UpdateArtistRequest) (bool, error)
	DeleteArtist(ctx context.Context, id string) (bool, error)
}

type artistService struct {
	repo repository.ArtistRepository
}

func NewArtistService(repo repository.ArtistRepository) ArtistService {
	return &artistService{repo: repo}
}

func (s *artistService) CreateArtist(ctx context.Context, req *dto.CreateArtistRequest) (string, error) {
	artist := &domain.Artist{
		Name:      req.Name,
		Genres:    req.Genres,
		Bio:       req.Bio,
		ImageURL:  req.ImageURL,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Create(ctx, artist)
}

func (s *artistService) ListArtists(ctx context.Context) ([]*domain.Artist, error) {
	return s.repo.FindAll(ctx)
}

func (s *artistService) GetArtistByID(ctx context.Context, id string) (*domain.Artist, error) {
	artist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return artist, nil
}

func (s *artistService) UpdateArtist(ctx context.Context, id string, req *dto.UpdateArtistRequest) (bool, error) {
	updates := bson.M{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Genres != nil {
		updates["genres"] = *req.Genres
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.ImageURL != nil {
		updates["imageUrl"] = *req.ImageURL
	}
	if len(updates) == 0 {
		return false, domain.NewValidationError("", "no fields to update")
	}
	return s.repo.Update(ctx, id, updates)
}

func (s *artistService) DeleteArtist(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
