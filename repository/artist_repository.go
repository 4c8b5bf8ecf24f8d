package repository

import (
	"context"
	"time"

	"github.com/Trungproe/ResVibe/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ArtistRepository interface {
	Create(ctx context.Context, a *domain.Artist) (string, error)
	FindAll(ctx context.Context) ([]*domain.Artist, error)
	FindByID(ctx context.Context, id string) (*domain.Artist, error)
	Search(ctx context.Context, query string, limit int) ([]*domain.Artist, error)
	Update(ctx context.Context, id string, updates bson.M) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type artistRepository struct {
	col *mongo.Collection
}

func NewArtistRepository(db *mongo.Database) ArtistRepository {
	col := db.Collection("artists")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &artistRepository{col: col}
}

func (r *artistRepository) Create(ctx context.Context, a *domain.Artist) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", mongo.ErrNilDocument
	}
	return oid.Hex(), nil
}

func (r *artistRepository) FindAll(ctx context.Context) ([]*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeArtists(ctx, cur)
}

func (r *artistRepository) FindByID(ctx context.Context, id string) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var artist domain.Artist
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&artist); err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) Search(ctx context.Context, query string, limit int) ([]*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pattern := primitive.Regex{Pattern: regexEscape(query), Options: "i"}
	cur, err := r.col.Find(ctx, bson.M{"name": bson.M{"$regex": pattern}}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeArtists(ctx, cur)
}

func (r *artistRepository) Update(ctx context.Context, id string, updates bson.M) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": updates})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *artistRepository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func decodeArtists(ctx context.Context, cur *mongo.Cursor) ([]*domain.Artist, error) {
	var out []*domain.Artist
	for cur.Next(ctx) {
		var a domain.Artist
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, cur.Err()
}
