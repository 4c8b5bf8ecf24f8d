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

type AlbumRepository interface {
	Create(ctx context.Context, al *domain.Album) (string, error)
	FindAll(ctx context.Context) ([]*domain.Album, error)
	FindByID(ctx context.Context, id string) (*domain.Album, error)
	FindByArtistID(ctx context.Context, artistID string) ([]*domain.Album, error)
	Search(ctx context.Context, query string, limit int) ([]*domain.Album, error)
	Update(ctx context.Context, id string, updates bson.M) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type albumRepository struct {
	col *mongo.Collection
}

func NewAlbumRepository(db *mongo.Database) AlbumRepository {
	col := db.Collection("albums")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "title", Value: 1}}})
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "artistId", Value: 1}}})

	return &albumRepository{col: col}
}

func (r *albumRepository) Create(ctx context.Context, al *domain.Album) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.col.InsertOne(ctx, al)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", mongo.ErrNilDocument
	}
	return oid.Hex(), nil
}

func (r *albumRepository) FindAll(ctx context.Context) ([]*domain.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeAlbums(ctx, cur)
}

func (r *albumRepository) FindByID(ctx context.Context, id string) (*domain.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var album domain.Album
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&album); err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *albumRepository) FindByArtistID(ctx context.Context, artistID string) ([]*domain.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"artistId": artistID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeAlbums(ctx, cur)
}

func (r *albumRepository) Search(ctx context.Context, query string, limit int) ([]*domain.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pattern := primitive.Regex{Pattern: regexEscape(query), Options: "i"}
	cur, err := r.col.Find(ctx, bson.M{"title": bson.M{"$regex": pattern}}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeAlbums(ctx, cur)
}

func (r *albumRepository) Update(ctx context.Context, id string, updates bson.M) (bool, error) {
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

func (r *albumRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func decodeAlbums(ctx context.Context, cur *mongo.Cursor) ([]*domain.Album, error) {
	var out []*domain.Album
	for cur.Next(ctx) {
		var a domain.Album
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, cur.Err()
}
