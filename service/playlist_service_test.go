package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Trungproe/ResVibe/domain"
	"github.com/Trungproe/ResVibe/dto"
	"go.mongodb.org/mongo-driver/mongo"
)

type mockPlaylistRepo struct {
	playlists map[string]*domain.Playlist
}

func newMockPlaylistRepo() *mockPlaylistRepo {
	return &mockPlaylistRepo{playlists: make(map[string]*domain.Playlist)}
}

func (m *mockPlaylistRepo) Create(ctx context.Context, p *domain.Playlist) error {
	m.playlists[p.ID] = p
	return nil
}

func (m *mockPlaylistRepo) FindAll(ctx context.Context, creator string) ([]*domain.Playlist, error) {
	var out []*domain.Playlist
	for _, p := range m.playlists {
		if creator == "" || p.Creator == creator {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPlaylistRepo) FindByID(ctx context.Context, id string) (*domain.Playlist, error) {
	p, ok := m.playlists[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return p, nil
}

func (m *mockPlaylistRepo) AddSong(ctx context.Context, id, songID string) (bool, error) {
	p, ok := m.playlists[id]
	if !ok {
		return false, nil
	}
	for _, s := range p.SongIDs {
		if s == songID {
			return true, nil
		}
	}
	p.SongIDs = append(p.SongIDs, songID)
	return true, nil
}

func (m *mockPlaylistRepo) RemoveSong(ctx context.Context, id, songID string) (bool, error) {
	p, ok := m.playlists[id]
	if !ok {
		return false, nil
	}
	kept := p.SongIDs[:0]
	for _, s := range p.SongIDs {
		if s != songID {
			kept = append(kept, s)
		}
	}
	p.SongIDs = kept
	return true, nil
}

func (m *mockPlaylistRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := m.playlists[id]; !ok {
		return false, nil
	}
	delete(m.playlists, id)
	return true, nil
}

func TestCreatePlaylistDefaults(t *testing.T) {
	songSvc, _, _, _ := newTestSongService()
	svc := NewPlaylistService(newMockPlaylistRepo(), songSvc)

	p, err := svc.CreatePlaylist(context.Background(), &dto.CreatePlaylistRequest{
		Name:    "Morning Mix",
		Creator: "u-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == "" {
		t.Fatal("expected generated playlist id")
	}
	if p.CoverArt == "" {
		t.Fatal("expected default cover art")
	}
	if p.SongIDs == nil || len(p.SongIDs) != 0 {
		t.Fatalf("expected empty song list, got %v", p.SongIDs)
	}
}

func TestAddSongRejectsUnknownSong(t *testing.T) {
	songSvc, _, _, _ := newTestSongService()
	repo := newMockPlaylistRepo()
	svc := NewPlaylistService(repo, songSvc)

	p, err := svc.CreatePlaylist(context.Background(), &dto.CreatePlaylistRequest{Name: "Mix", Creator: "u-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.AddSong(context.Background(), p.ID, "000000000000000000000000")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error for unknown song, got %v", err)
	}
}

func TestGetPlaylistSongsDropsVanished(t *testing.T) {
	songSvc, _, artistRepo, _ := newTestSongService()
	repo := newMockPlaylistRepo()
	svc := NewPlaylistService(repo, songSvc)

	artistID := artistRepo.add("Artist")
	songID, err := songSvc.CreateSong(context.Background(), &dto.CreateSongRequest{Title: "Track", ArtistID: artistID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := svc.CreatePlaylist(context.Background(), &dto.CreatePlaylistRequest{
		Name:    "Mix",
		Creator: "u-1",
		SongIDs: []string{songID, "000000000000000000000000"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	songs, err := svc.GetPlaylistSongs(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(songs) != 1 || songs[0].Title != "Track" {
		t.Fatalf("expected vanished songs dropped, got %+v", songs)
	}
}
