package service

import (
	"context"
	"testing"

	"github.com/Trungproe/ResVibe/domain"
	"github.com/Trungproe/ResVibe/dto"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	users map[string]*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*domain.User)}
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return u, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepo) Search(ctx context.Context, query string) ([]*domain.User, error) {
	return nil, nil
}

func (m *mockUserRepo) Update(ctx context.Context, id string, updates bson.M) (bool, error) {
	u, ok := m.users[id]
	if !ok {
		return false, nil
	}
	for k, v := range updates {
		switch k {
		case "username":
			u.Username = v.(string)
		case "email":
			u.Email = v.(string)
		case "password":
			u.Password = v.(string)
		case "role":
			u.Role = v.(string)
		case "banned":
			u.Banned = v.(bool)
		case "likedSongs":
			u.LikedSongs = v.([]string)
		case "updated_at":
			u.UpdatedAt = v.(int64)
		}
	}
	return true, nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := m.users[id]; !ok {
		return false, nil
	}
	delete(m.users, id)
	return true, nil
}

func newTestUserService() (UserService, *mockUserRepo, SongService, *mockSongRepo, *mockArtistRepo) {
	userRepo := newMockUserRepo()
	songSvc, songRepo, artistRepo, _ := newTestSongService()
	return NewUserService(userRepo, songSvc), userRepo, songSvc, songRepo, artistRepo
}

func seedUser(repo *mockUserRepo, username, email, password string) *domain.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	u := &domain.User{
		ID:       "u-" + username,
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     "user",
	}
	repo.users[u.ID] = u
	return u
}

func TestAuthenticateByEmailSuccess(t *testing.T) {
	svc, repo, _, _, _ := newTestUserService()
	user := seedUser(repo, "alice", "a@b.com", "secret123")

	got, err := svc.Authenticate(context.Background(), "a@b.com", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.ID != user.ID {
		t.Fatalf("expected user id %s, got %v", user.ID, got)
	}
}

func TestAuthenticateByUsernameSuccess(t *testing.T) {
	svc, repo, _, _, _ := newTestUserService()
	user := seedUser(repo, "bob", "bob@b.com", "mypw12345")

	got, err := svc.Authenticate(context.Background(), "bob", "mypw12345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.ID != user.ID {
		t.Fatalf("expected user id %s, got %v", user.ID, got)
	}
}

func TestAuthenticateInvalidPassword(t *testing.T) {
	svc, repo, _, _, _ := newTestUserService()
	seedUser(repo, "carol", "x@y.com", "rightpw99")

	_, err := svc.Authenticate(context.Background(), "x@y.com", "wrongpw")
	if err != ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
}

func TestAuthenticateBannedAccount(t *testing.T) {
	svc, repo, _, _, _ := newTestUserService()
	user := seedUser(repo, "dave", "d@y.com", "password1")
	user.Banned = true

	_, err := svc.Authenticate(context.Background(), "d@y.com", "password1")
	if err != ErrAccountBanned {
		t.Fatalf("expected banned account error, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, repo, _, _, _ := newTestUserService()
	seedUser(repo, "eve", "dup@y.com", "password1")

	_, err := svc.Register(context.Background(), &dto.RegisterUserRequest{
		Username: "other",
		Email:    "dup@y.com",
		Password: "password1",
	})
	if err == nil {
		t.Fatal("expected error due to duplicate email, got nil")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, repo, _, _, _ := newTestUserService()
	seedUser(repo, "frank", "f@y.com", "password1")

	_, err := svc.Register(context.Background(), &dto.RegisterUserRequest{
		Username: "frank",
		Email:    "new@y.com",
		Password: "password1",
	})
	if err == nil {
		t.Fatal("expected error due to duplicate username, got nil")
	}
}

func TestToggleLikeSongAddsThenRemoves(t *testing.T) {
	svc, repo, _, _, _ := newTestUserService()
	user := seedUser(repo, "grace", "g@y.com", "password1")

	liked, err := svc.ToggleLikeSong(context.Background(), user.ID, "song-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(liked) != 1 || liked[0] != "song-1" {
		t.Fatalf("expected song liked, got %v", liked)
	}

	liked, err = svc.ToggleLikeSong(context.Background(), user.ID, "song-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(liked) != 0 {
		t.Fatalf("expected song unliked, got %v", liked)
	}
}

func TestGetLikedSongsDropsVanished(t *testing.T) {
	svc, repo, songSvc, _, artistRepo := newTestUserService()
	artistID := artistRepo.add("Artist")

	id, err := songSvc.CreateSong(context.Background(), &dto.CreateSongRequest{Title: "Kept", ArtistID: artistID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := seedUser(repo, "henry", "h@y.com", "password1")
	user.LikedSongs = []string{id, "000000000000000000000000"}

	songs, err := svc.GetLikedSongs(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(songs) != 1 || songs[0].Title != "Kept" {
		t.Fatalf("expected only existing songs, got %+v", songs)
	}
}
