package service

import (
	"context"

	"github.com/Trungproe/ResVibe/domain"
	"github.com/Trungproe/ResVibe/repository"
)

type RecommendService interface {
	GetRecommendations(ctx context.Context, userID string, limit int) ([]*domain.SongView, error)
}

type recommendService struct {
	userRepo repository.UserRepository
	songSvc  SongService
}

func NewRecommendService(userRepo repository.UserRepository, songSvc SongService) RecommendService {
	return &recommendService{userRepo: userRepo, songSvc: songSvc}
}

// GetRecommendations samples songs from the genres of the user's liked songs.
// Users with no likes, or whose likes resolve to no genres, get a plain
// random sample instead.
func (s *recommendService) GetRecommendations(ctx context.Context, userID string, limit int) ([]*domain.SongView, error) {
	if limit <= 0 {
		limit = 10
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return s.songSvc.GetRandomSongs(ctx, limit, "")
		}
		return nil, err
	}

	genres := map[string]bool{}
	for _, songID := range user.LikedSongs {
		view, err := s.songSvc.GetSongByID(ctx, songID)
		if err != nil {
			return nil, err
		}
		if view == nil {
			continue
		}
		for _, g := range view.Genre {
			genres[g] = true
		}
	}
	if len(genres) == 0 {
		return s.songSvc.GetRandomSongs(ctx, limit, "")
	}

	liked := map[string]bool{}
	for _, id := range user.LikedSongs {
		liked[id] = true
	}

	out := make([]*domain.SongView, 0, limit)
	seen := map[string]bool{}
	for genre := range genres {
		views, err := s.songSvc.GetSongsByGenre(ctx, genre, 1, limit)
		if err != nil {
			return nil, err
		}
		for _, v := range views {
			if liked[v.ID] || seen[v.ID] {
				continue
			}
			seen[v.ID] = true
			out = append(out, v)
			if len(out) >= limit {
				return out, nil
			}
		}
	}

	if len(out) == 0 {
		return s.songSvc.GetRandomSongs(ctx, limit, "")
	}
	return out, nil
}
