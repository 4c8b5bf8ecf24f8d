package repository

import (
	"context"
	"time"

	"github.com/Trungproe/ResVibe/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HistoryRepository interface {
	Insert(ctx context.Context, entry *domain.HistoryEntry) error
	FindByUserID(ctx context.Context, userID string, limit int) ([]*domain.HistoryEntry, error)
}

type historyRepository struct {
	col *mongo.Collection
}

func NewHistoryRepository(db *mongo.Database) HistoryRepository {
	col := db.Collection("history")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "played_at", Value: -1}},
	})

	return &historyRepository{col: col}
}

func (r *historyRepository) Insert(ctx context.Context, entry *domain.HistoryEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.col.InsertOne(ctx, entry)
	return err
}

func (r *historyRepository) FindByUserID(ctx context.Context, userID string, limit int) ([]*domain.HistoryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	findOpts := options.Find().
		SetSort(bson.D{{Key: "played_at", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, bson.M{"userId": userID}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.HistoryEntry
	for cur.Next(ctx) {
		var e domain.HistoryEntry
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, cur.Err()
}
