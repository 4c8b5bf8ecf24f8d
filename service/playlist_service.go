package service

import (
	"context"
	"time"

	"github.com/Trungproe/ResVibe/domain"
	"github.com/Trungproe/ResVibe/dto"
	"github.com/Trungproe/ResVibe/repository"
	"github.com/google/uuid"
)

const defaultPlaylistCover = "https://via.placeholder.com/640x640.png?text=Playlist+Cover"

type PlaylistService interface {
	CreatePlaylist(ctx context.Context, req *dto.CreatePlaylistRequest) (*domain.Playlist, error)
	ListPlaylists(ctx context.Context, creator string) ([]*domain.Playlist, error)
	GetPlaylistByID(ctx context.Context, id string) (*domain.Playlist, error)
	GetPlaylistSongs(ctx context.Context, id string) ([]*domain.SongView, error)
	AddSong(ctx context.Context, id, songID string) (bool, error)
	RemoveSong(ctx context.Context, id, songID string) (bool, error)
	DeletePlaylist(ctx context.Context, id string) (bool, error)
}

type playlistService struct {
	repo    repository.PlaylistRepository
	songSvc SongService
}

func NewPlaylistService(repo repository.PlaylistRepository, songSvc SongService) PlaylistService {
	return &playlistService{repo: repo, songSvc: songSvc}
}

func (s *playlistService) CreatePlaylist(ctx context.Context, req *dto.CreatePlaylistRequest) (*domain.Playlist, error) {
	cover := req.CoverArt
	if cover == "" {
		cover = defaultPlaylistCover
	}
	songIDs := req.SongIDs
	if songIDs == nil {
		songIDs = []string{}
	}

	p := &domain.Playlist{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Creator:   req.Creator,
		CoverArt:  cover,
		SongIDs:   songIDs,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *playlistService) ListPlaylists(ctx context.Context, creator string) ([]*domain.Playlist, error) {
	return s.repo.FindAll(ctx, creator)
}

func (s *playlistService) GetPlaylistByID(ctx context.Context, id string) (*domain.Playlist, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// GetPlaylistSongs resolves the playlist's song ids through the catalog,
// dropping songs that no longer exist.
func (s *playlistService) GetPlaylistSongs(ctx context.Context, id string) ([]*domain.SongView, error) {
	p, err := s.GetPlaylistByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	out := make([]*domain.SongView, 0, len(p.SongIDs))
	for _, songID := range p.SongIDs {
		view, err := s.songSvc.GetSongByID(ctx, songID)
		if err != nil {
			return nil, err
		}
		if view != nil {
			out = append(out, view)
		}
	}
	return out, nil
}

func (s *playlistService) AddSong(ctx context.Context, id, songID string) (bool, error) {
	song, err := s.songSvc.GetSongByID(ctx, songID)
	if err != nil {
		return false, err
	}
	if song == nil {
		return false, domain.NewValidationError("songId", "song does not exist")
	}
	return s.repo.AddSong(ctx, id, songID)
}

func (s *playlistService) RemoveSong(ctx context.Context, id, songID string) (bool, error) {
	return s.repo.RemoveSong(ctx, id, songID)
}

func (s *playlistService) DeletePlaylist(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
