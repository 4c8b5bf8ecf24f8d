package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Trungproe/ResVibe/domain"
	"github.com/Trungproe/ResVibe/dto"
	"github.com/Trungproe/ResVibe/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mockSongRepo struct {
	songs        map[string]*domain.Song
	randomPool   []*domain.Song
	genreCalls   int
	insertCalls  int
	lastInserted *domain.Song
}

func newMockSongRepo() *mockSongRepo {
	return &mockSongRepo{songs: make(map[string]*domain.Song)}
}

func (m *mockSongRepo) FindAll(ctx context.Context, opts repository.ListOptions) ([]*domain.Song, error) {
	out := make([]*domain.Song, 0, len(m.songs))
	for _, s := range m.songs {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockSongRepo) FindByID(ctx context.Context, id string) (*domain.Song, error) {
	s, ok := m.songs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return s, nil
}

func (m *mockSongRepo) FindByGenre(ctx context.Context, genre string, page, limit int) ([]*domain.Song, error) {
	m.genreCalls++
	var out []*domain.Song
	for _, s := range m.songs {
		for _, g := range s.Genre {
			if g == genre {
				out = append(out, s)
				break
			}
		}
	}
	return out, nil
}

func (m *mockSongRepo) FindByArtistID(ctx context.Context, artistID string) ([]*domain.Song, error) {
	var out []*domain.Song
	for _, s := range m.songs {
		if s.ArtistID == artistID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSongRepo) FindByAlbum(ctx context.Context, album string) ([]*domain.Song, error) {
	var out []*domain.Song
	for _, s := range m.songs {
		if s.Album == album {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSongRepo) FindRandom(ctx context.Context, limit int) ([]*domain.Song, error) {
	if len(m.randomPool) > limit {
		return m.randomPool[:limit], nil
	}
	return m.randomPool, nil
}

func (m *mockSongRepo) FindRandomByRegion(ctx context.Context, region string, limit int) ([]*domain.Song, error) {
	var out []*domain.Song
	for _, s := range m.randomPool {
		if hasVietnameseTag(s.Genre) == (region == "vietnamese") {
			out = append(out, s)
		}
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (m *mockSongRepo) Search(ctx context.Context, query string, limit int) ([]*domain.Song, error) {
	return nil, nil
}

func (m *mockSongRepo) Insert(ctx context.Context, song *domain.Song) (string, error) {
	m.insertCalls++
	if song.ID.IsZero() {
		song.ID = primitive.NewObjectID()
	}
	m.songs[song.ID.Hex()] = song
	m.lastInserted = song
	return song.ID.Hex(), nil
}

func (m *mockSongRepo) Update(ctx context.Context, id string, updates bson.M) (bool, error) {
	s, ok := m.songs[id]
	if !ok {
		return false, nil
	}
	for k, v := range updates {
		switch k {
		case "title":
			s.Title = v.(string)
		case "album":
			s.Album = v.(string)
		case "releaseYear":
			s.ReleaseYear = v.(int)
		case "duration":
			s.Duration = v.(int)
		case "genre":
			s.Genre = v.([]string)
		case "coverArt":
			s.CoverArt = v.(string)
		case "audioUrl":
			s.AudioURL = v.(string)
		case "lyrics_lrc":
			s.LyricsLRC = v.(string)
		case "artistId":
			s.ArtistID = v.(string)
		case "updated_at":
			t := v.(time.Time)
			s.UpdatedAt = &t
		}
	}
	return true, nil
}

func (m *mockSongRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := m.songs[id]; !ok {
		return false, nil
	}
	delete(m.songs, id)
	return true, nil
}

type mockArtistRepo struct {
	artists map[string]*domain.Artist
}

func newMockArtistRepo() *mockArtistRepo {
	return &mockArtistRepo{artists: make(map[string]*domain.Artist)}
}

func (m *mockArtistRepo) add(name string) string {
	a := &domain.Artist{ID: primitive.NewObjectID(), Name: name}
	m.artists[a.ID.Hex()] = a
	return a.ID.Hex()
}

func (m *mockArtistRepo) Create(ctx context.Context, a *domain.Artist) (string, error) {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	m.artists[a.ID.Hex()] = a
	return a.ID.Hex(), nil
}

func (m *mockArtistRepo) FindAll(ctx context.Context) ([]*domain.Artist, error) { return nil, nil }

func (m *mockArtistRepo) FindByID(ctx context.Context, id string) (*domain.Artist, error) {
	a, ok := m.artists[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return a, nil
}

func (m *mockArtistRepo) Search(ctx context.Context, query string, limit int) ([]*domain.Artist, error) {
	return nil, nil
}

func (m *mockArtistRepo) Update(ctx context.Context, id string, updates bson.M) (bool, error) {
	return false, nil
}

func (m *mockArtistRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := m.artists[id]; !ok {
		return false, nil
	}
	delete(m.artists, id)
	return true, nil
}

type fakeChecker struct {
	unreachable map[string]bool
}

func (f *fakeChecker) Check(url string) bool {
	return !f.unreachable[url]
}

func newTestSongService() (SongService, *mockSongRepo, *mockArtistRepo, *fakeChecker) {
	songRepo := newMockSongRepo()
	artistRepo := newMockArtistRepo()
	checker := &fakeChecker{unreachable: make(map[string]bool)}
	return NewSongService(songRepo, artistRepo, checker), songRepo, artistRepo, checker
}

func TestCreateSongResolvesArtistNameAtReadTime(t *testing.T) {
	svc, _, artistRepo, _ := newTestSongService()
	artistID := artistRepo.add("Son Tung M-TP")

	id, err := svc.CreateSong(context.Background(), &dto.CreateSongRequest{
		Title:    "Chung Ta Cua Hien Tai",
		ArtistID: artistID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view, err := svc.GetSongByID(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view == nil || view.Artist != "Son Tung M-TP" {
		t.Fatalf("expected artist name resolved, got %+v", view)
	}

	// Artist deleted afterwards: subsequent reads yield an empty name, not an error.
	if _, err := artistRepo.Delete(context.Background(), artistID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	view, err = svc.GetSongByID(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Artist != "" {
		t.Fatalf("expected empty artist name after deletion, got %q", view.Artist)
	}
}

func TestCreateSongUnknownArtistWritesNothing(t *testing.T) {
	svc, songRepo, _, _ := newTestSongService()

	_, err := svc.CreateSong(context.Background(), &dto.CreateSongRequest{
		Title:    "Orphan",
		ArtistID: primitive.NewObjectID().Hex(),
	})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if songRepo.insertCalls != 0 {
		t.Fatalf("expected no persistence on failure, got %d inserts", songRepo.insertCalls)
	}
}

func TestCreateSongUnreachableURLFailsBeforePersist(t *testing.T) {
	svc, songRepo, artistRepo, checker := newTestSongService()
	artistID := artistRepo.add("Den Vau")
	checker.unreachable["http://cdn.example.com/dead.mp3"] = true

	_, err := svc.CreateSong(context.Background(), &dto.CreateSongRequest{
		Title:    "Broken",
		ArtistID: artistID,
		AudioURL: "http://cdn.example.com/dead.mp3",
	})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Field != "audioUrl" {
		t.Fatalf("expected audioUrl failure, got field %q", ve.Field)
	}
	if songRepo.insertCalls != 0 {
		t.Fatalf("expected no persistence on failure, got %d inserts", songRepo.insertCalls)
	}
}

func TestUpdateSongUnreachableCoverArtRejected(t *testing.T) {
	svc, songRepo, artistRepo, checker := newTestSongService()
	artistID := artistRepo.add("Hoang Thuy Linh")
	id, err := svc.CreateSong(context.Background(), &dto.CreateSongRequest{Title: "See Tinh", ArtistID: artistID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checker.unreachable["http://cdn.example.com/missing.jpg"] = true
	bad := "http://cdn.example.com/missing.jpg"
	_, err = svc.UpdateSong(context.Background(), id, &dto.UpdateSongRequest{CoverArt: &bad})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if songRepo.songs[id].CoverArt != "" {
		t.Fatalf("expected cover art unchanged, got %q", songRepo.songs[id].CoverArt)
	}
}

func TestUpdateSongPartialTouchesOnlySuppliedFields(t *testing.T) {
	svc, songRepo, artistRepo, _ := newTestSongService()
	artistID := artistRepo.add("My Tam")

	id, err := svc.CreateSong(context.Background(), &dto.CreateSongRequest{
		Title:    "Original Title",
		Album:    "Tam 9",
		Duration: 241,
		Genre:    []string{"vietnamese ballad"},
		ArtistID: artistID,
		AudioURL: "http://cdn.example.com/ok.mp3",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before := time.Now().UTC()
	newTitle := "Renamed"
	updated, err := svc.UpdateSong(context.Background(), id, &dto.UpdateSongRequest{Title: &newTitle})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated {
		t.Fatal("expected update to apply")
	}

	stored := songRepo.songs[id]
	if stored.Title != "Renamed" {
		t.Fatalf("expected title updated, got %q", stored.Title)
	}
	if stored.Album != "Tam 9" || stored.Duration != 241 || stored.ArtistID != artistID || stored.AudioURL != "http://cdn.example.com/ok.mp3" {
		t.Fatalf("expected other fields untouched, got %+v", stored)
	}
	if stored.UpdatedAt == nil || stored.UpdatedAt.Before(before) {
		t.Fatalf("expected updated_at stamped after %v, got %v", before, stored.UpdatedAt)
	}
}

func TestUpdateSongMissingIDIsNoOp(t *testing.T) {
	svc, _, _, _ := newTestSongService()

	title := "Ghost"
	updated, err := svc.UpdateSong(context.Background(), primitive.NewObjectID().Hex(), &dto.UpdateSongRequest{Title: &title})
	if err != nil {
		t.Fatalf("expected no error for missing id, got %v", err)
	}
	if updated {
		t.Fatal("expected no-op update to report false")
	}
}

func regionFixture(artistRepo *mockArtistRepo) []*domain.Song {
	artistID := artistRepo.add("Various")
	pool := make([]*domain.Song, 0, 10)
	for i := 0; i < 5; i++ {
		pool = append(pool, &domain.Song{
			ID:       primitive.NewObjectID(),
			Title:    "VN",
			Genre:    []string{"Vietnamese Pop"},
			ArtistID: artistID,
		})
	}
	for i := 0; i < 5; i++ {
		pool = append(pool, &domain.Song{
			ID:       primitive.NewObjectID(),
			Title:    "INT",
			Genre:    []string{"pop", "rock"},
			ArtistID: artistID,
		})
	}
	return pool
}

func TestGetRandomSongsVietnameseRegion(t *testing.T) {
	svc, songRepo, artistRepo, _ := newTestSongService()
	songRepo.randomPool = regionFixture(artistRepo)

	views, err := svc.GetRandomSongs(context.Background(), 10, "vietnamese")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 5 {
		t.Fatalf("expected 5 vietnamese songs, got %d", len(views))
	}
	for _, v := range views {
		if !hasVietnameseTag(v.Genre) {
			t.Fatalf("expected only vietnamese-tagged songs, got %v", v.Genre)
		}
	}
}

func TestGetRandomSongsOtherRegionExcludesVietnamese(t *testing.T) {
	svc, songRepo, artistRepo, _ := newTestSongService()
	songRepo.randomPool = regionFixture(artistRepo)

	views, err := svc.GetRandomSongs(context.Background(), 10, "pop")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 5 {
		t.Fatalf("expected 5 non-vietnamese songs, got %d", len(views))
	}
	for _, v := range views {
		if hasVietnameseTag(v.Genre) {
			t.Fatalf("expected no vietnamese-tagged songs, got %v", v.Genre)
		}
	}
}

func TestGetRandomSongsTruncatesToLimit(t *testing.T) {
	svc, songRepo, artistRepo, _ := newTestSongService()
	songRepo.randomPool = regionFixture(artistRepo)

	views, err := svc.GetRandomSongs(context.Background(), 3, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 songs, got %d", len(views))
	}
}

func TestGetSongsByGenreRequiresGenre(t *testing.T) {
	svc, songRepo, _, _ := newTestSongService()

	_, err := svc.GetSongsByGenre(context.Background(), "", 1, 50)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if songRepo.genreCalls != 0 {
		t.Fatal("expected repository untouched on empty genre")
	}
}

func TestDeleteSongIdempotent(t *testing.T) {
	svc, _, artistRepo, _ := newTestSongService()
	artistID := artistRepo.add("Bich Phuong")
	id, err := svc.CreateSong(context.Background(), &dto.CreateSongRequest{Title: "Bua Yeu", ArtistID: artistID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deleted, err := svc.DeleteSong(context.Background(), id)
	if err != nil || !deleted {
		t.Fatalf("expected first delete to succeed, got %v %v", deleted, err)
	}
	deleted, err = svc.DeleteSong(context.Background(), id)
	if err != nil {
		t.Fatalf("expected no error on second delete, got %v", err)
	}
	if deleted {
		t.Fatal("expected second delete to report false")
	}
}

func TestCreateSongRoundTrip(t *testing.T) {
	svc, _, artistRepo, _ := newTestSongService()
	artistID := artistRepo.add("Vu")

	req := &dto.CreateSongRequest{
		Title:       "Lau Dai Tinh Ai",
		Album:       "Mot Van Nam",
		ReleaseYear: 2018,
		Duration:    254,
		Genre:       []string{"vietnamese indie", "acoustic"},
		CoverArt:    "http://cdn.example.com/cover.jpg",
		AudioURL:    "http://cdn.example.com/song.mp3",
		LyricsLRC:   "[00:01.00]First line",
		ArtistID:    artistID,
	}
	id, err := svc.CreateSong(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view, err := svc.GetSongByID(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Title != req.Title || view.Album != req.Album || view.ReleaseYear != req.ReleaseYear ||
		view.Duration != req.Duration || view.CoverArt != req.CoverArt || view.AudioURL != req.AudioURL ||
		view.LyricsLRC != req.LyricsLRC || view.ArtistID != artistID {
		t.Fatalf("round trip mismatch: %+v", view)
	}
	if len(view.Genre) != 2 || view.Genre[0] != "vietnamese indie" {
		t.Fatalf("expected genre preserved, got %v", view.Genre)
	}
	if view.CreatedAt.IsZero() {
		t.Fatal("expected created_at stamped")
	}
	if view.UpdatedAt != nil {
		t.Fatalf("expected updated_at absent before first update, got %v", view.UpdatedAt)
	}
}

func TestGetSongByIDAbsent(t *testing.T) {
	svc, _, _, _ := newTestSongService()

	view, err := svc.GetSongByID(context.Background(), primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("expected absence to not be an error, got %v", err)
	}
	if view != nil {
		t.Fatalf("expected nil view, got %+v", view)
	}
}

func TestRegionAliasesMatch(t *testing.T) {
	svc, songRepo, artistRepo, _ := newTestSongService()
	songRepo.randomPool = regionFixture(artistRepo)

	a, err := svc.GetSongsByRegion(context.Background(), "vietnamese", 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := svc.GetRandomSongsByRegion(context.Background(), "vietnamese", 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("expected aliased operations to behave identically, got %d vs %d", len(a), len(b))
	}
}
