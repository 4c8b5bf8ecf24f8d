package service

import (
	"context"
	"errors"
	"time"

	"github.com/Trungproe/ResVibe/domain"
	"github.com/Trungproe/ResVibe/dto"
	"github.com/Trungproe/ResVibe/repository"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrAccountBanned      = errors.New("account is banned")
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error)
	Authenticate(ctx context.Context, identifier, password string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetAll(ctx context.Context) ([]*dto.UserResponse, error)
	SearchUsers(ctx context.Context, query string) ([]*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, id string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	SetRole(ctx context.Context, id, role string) (bool, error)
	SetBanned(ctx context.Context, id string, banned bool) (bool, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
	ToggleLikeSong(ctx context.Context, userID, songID string) ([]string, error)
	GetLikedSongs(ctx context.Context, userID string) ([]*domain.SongView, error)
}

type userService struct {
	userRepo repository.UserRepository
	songSvc  SongService
}

func NewUserService(userRepo repository.UserRepository, songSvc SongService) UserService {
	return &userService{
		userRepo: userRepo,
		songSvc:  songSvc,
	}
}

func (s *userService) Register(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil && !isNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewValidationError("email", "user with this email already exists")
	}

	existing, err = s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil && !isNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewValidationError("username", "user with this username already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().Unix()
	user := &domain.User{
		ID:         uuid.New().String(),
		Username:   req.Username,
		Email:      req.Email,
		Password:   string(hashed),
		Role:       "user",
		Banned:     false,
		LikedSongs: []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) Authenticate(ctx context.Context, identifier, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, identifier)
	if err != nil {
		if !isNotFound(err) {
			return nil, err
		}
		user, err = s.userRepo.FindByUsername(ctx, identifier)
		if err != nil {
			if isNotFound(err) {
				return nil, ErrInvalidCredentials
			}
			return nil, err
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Banned {
		return nil, ErrAccountBanned
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetAll(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

func (s *userService) SearchUsers(ctx context.Context, query string) ([]*dto.UserResponse, error) {
	users, err := s.userRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

func (s *userService) UpdateProfile(ctx context.Context, id string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	updates := bson.M{}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.AvatarURL != nil {
		updates["avatarUrl"] = *req.AvatarURL
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hashed)
	}
	if len(updates) == 0 {
		return nil, domain.NewValidationError("", "no fields to update")
	}
	updates["updated_at"] = time.Now().Unix()

	if _, err := s.userRepo.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) SetRole(ctx context.Context, id, role string) (bool, error) {
	return s.userRepo.Update(ctx, id, bson.M{"role": role, "updated_at": time.Now().Unix()})
}

func (s *userService) SetBanned(ctx context.Context, id string, banned bool) (bool, error) {
	return s.userRepo.Update(ctx, id, bson.M{"banned": banned, "updated_at": time.Now().Unix()})
}

func (s *userService) DeleteUser(ctx context.Context, id string) (bool, error) {
	return s.userRepo.Delete(ctx, id)
}

// ToggleLikeSong adds the song to the user's liked set, or removes it if
// already present, and returns the resulting set.
func (s *userService) ToggleLikeSong(ctx context.Context, userID, songID string) ([]string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	liked := make([]string, 0, len(user.LikedSongs)+1)
	found := false
	for _, id := range user.LikedSongs {
		if id == songID {
			found = true
			continue
		}
		liked = append(liked, id)
	}
	if !found {
		liked = append(liked, songID)
	}

	if _, err := s.userRepo.Update(ctx, userID, bson.M{"likedSongs": liked, "updated_at": time.Now().Unix()}); err != nil {
		return nil, err
	}
	return liked, nil
}

// GetLikedSongs resolves the user's liked ids through the catalog, dropping
// songs that no longer exist.
func (s *userService) GetLikedSongs(ctx context.Context, userID string) ([]*domain.SongView, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.SongView, 0, len(user.LikedSongs))
	for _, songID := range user.LikedSongs {
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

func toUserResponse(u *domain.User) *dto.UserResponse {
	liked := u.LikedSongs
	if liked == nil {
		liked = []string{}
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		Banned:     u.Banned,
		AvatarURL:  u.AvatarURL,
		LikedSongs: liked,
		CreatedAt:  u.CreatedAt,
	}
}

func toUserResponses(users []*domain.User) []*dto.UserResponse {
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}
