package repository

import (
	"context"
	"time"

	"github.com/Trungproe/ResVibe/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PlaylistRepository interface {
	Create(ctx context.Context, p *domain.Playlist) error
	FindAll(ctx context.Context, creator string) ([]*domain.Playlist, error)
	FindByID(ctx context.Context, id string) (*domain.Playlist, error)
	AddSong(ctx context.Context, id, songID string) (bool, error)
	RemoveSong(ctx context.Context, id, songID string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type playlistRepository struct {
	col *mongo.Collection
}

func NewPlaylistRepository(db *mongo.Database) PlaylistRepository {
	col := db.Collection("playlists")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "creator", Value: 1}}})

	return &playlistRepository{col: col}
}

func (r *playlistRepository) Create(ctx context.Context, p *domain.Playlist) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *playlistRepository) FindAll(ctx context.Context, creator string) ([]*domain.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if creator != "" {
		filter["creator"] = creator
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.Playlist
	for cur.Next(ctx) {
		var p domain.Playlist
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}

func (r *playlistRepository) FindByID(ctx context.Context, id string) (*domain.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p domain.Playlist
	if err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *playlistRepository) AddSong(ctx context.Context, id, songID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$addToSet": bson.M{"songIds": songID}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *playlistRepository) RemoveSong(ctx context.Context, id, songID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$pull": bson.M{"songIds": songID}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *playlistRepository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
