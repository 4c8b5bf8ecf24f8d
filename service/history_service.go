package service

import (
	"context"
	"time"

	"github.com/Trungproe/ResVibe/domain"
	"github.com/Trungproe/ResVibe/repository"
	"github.com/google/uuid"
)

const maxHistoryEntries = 50

type HistoryService interface {
	RecordPlay(ctx context.Context, userID, songID string) (*domain.HistoryEntry, error)
	GetRecentPlays(ctx context.Context, userID string, limit int) ([]*domain.SongView, error)
}

type historyService struct {
	repo    repository.HistoryRepository
	songSvc SongService
}

func NewHistoryService(repo repository.HistoryRepository, songSvc SongService) HistoryService {
	return &historyService{repo: repo, songSvc: songSvc}
}

func (s *historyService) RecordPlay(ctx context.Context, userID, songID string) (*domain.HistoryEntry, error) {
	song, err := s.songSvc.GetSongByID(ctx, songID)
	if err != nil {
		return nil, err
	}
	if song == nil {
		return nil, domain.NewValidationError("songId", "song does not exist")
	}

	entry := &domain.HistoryEntry{
		ID:       uuid.New().String(),
		UserID:   userID,
		SongID:   songID,
		PlayedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetRecentPlays returns the user's recent plays newest first, deduplicated
// by song, with vanished songs dropped.
func (s *historyService) GetRecentPlays(ctx context.Context, userID string, limit int) ([]*domain.SongView, error) {
	if limit <= 0 || limit > maxHistoryEntries {
		limit = maxHistoryEntries
	}

	entries, err := s.repo.FindByUserID(ctx, userID, limit*2)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.SongView, 0, limit)
	seen := map[string]bool{}
	for _, e := range entries {
		if seen[e.SongID] {
			continue
		}
		seen[e.SongID] = true

		view, err := s.songSvc.GetSongByID(ctx, e.SongID)
		if err != nil {
			return nil, err
		}
		if view == nil {
			continue
		}
		out = append(out, view)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}
