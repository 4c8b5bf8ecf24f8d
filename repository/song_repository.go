package repository

import (
	"context"
	"strings"
	"time"

	"github.com/Trungproe/ResVibe/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListOptions shapes a find-all query. Zero values mean "unset".
type ListOptions struct {
	Sort  string
	Limit int64
	Skip  int64
	Query bson.M
}

type SongRepository interface {
	FindAll(ctx context.Context, opts ListOptions) ([]*domain.Song, error)
	FindByID(ctx context.Context, id string) (*domain.Song, error)
	FindByGenre(ctx context.Context, genre string, page, limit int) ([]*domain.Song, error)
	FindByArtistID(ctx context.Context, artistID string) ([]*domain.Song, error)
	FindByAlbum(ctx context.Context, album string) ([]*domain.Song, error)
	FindRandom(ctx context.Context, limit int) ([]*domain.Song, error)
	FindRandomByRegion(ctx context.Context, region string, limit int) ([]*domain.Song, error)
	Search(ctx context.Context, query string, limit int) ([]*domain.Song, error)
	Insert(ctx context.Context, song *domain.Song) (string, error)
	Update(ctx context.Context, id string, updates bson.M) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type songRepository struct {
	col *mongo.Collection
}

func NewSongRepository(db *mongo.Database) SongRepository {
	col := db.Collection("songs")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "title", Value: 1}}})
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "genre", Value: 1}}})
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "artistId", Value: 1}}})

	return &songRepository{col: col}
}

func (r *songRepository) FindAll(ctx context.Context, opts ListOptions) ([]*domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if opts.Query != nil {
		filter = opts.Query
	}

	findOpts := options.Find()
	if opts.Sort != "" {
		key := opts.Sort
		order := 1
		if strings.HasPrefix(key, "-") {
			key = strings.TrimPrefix(key, "-")
			order = -1
		}
		findOpts.SetSort(bson.D{{Key: key, Value: order}})
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeSongs(ctx, cur)
}

func (r *songRepository) FindByID(ctx context.Context, id string) (*domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var song domain.Song
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&song); err != nil {
		return nil, err
	}
	return &song, nil
}

func (r *songRepository) FindByGenre(ctx context.Context, genre string, page, limit int) ([]*domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if page < 1 {
		page = 1
	}
	findOpts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	filter := bson.M{"genre": bson.M{"$regex": primitive.Regex{Pattern: "^" + regexEscape(genre) + "$", Options: "i"}}}
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeSongs(ctx, cur)
}

func (r *songRepository) FindByArtistID(ctx context.Context, artistID string) ([]*domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"artistId": artistID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeSongs(ctx, cur)
}

func (r *songRepository) FindByAlbum(ctx context.Context, album string) ([]*domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"album": album})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeSongs(ctx, cur)
}

func (r *songRepository) FindRandom(ctx context.Context, limit int) ([]*domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: limit}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeSongs(ctx, cur)
}

// FindRandomByRegion samples songs whose genre tags do (or, for any region
// other than "vietnamese", do not) contain the vietnamese token.
func (r *songRepository) FindRandomByRegion(ctx context.Context, region string, limit int) ([]*domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	vietnamese := primitive.Regex{Pattern: "vietnamese", Options: "i"}
	var match bson.M
	if strings.EqualFold(region, "vietnamese") {
		match = bson.M{"genre": bson.M{"$regex": vietnamese}}
	} else {
		match = bson.M{"genre": bson.M{"$not": vietnamese}}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: limit}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeSongs(ctx, cur)
}

func (r *songRepository) Search(ctx context.Context, query string, limit int) ([]*domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pattern := primitive.Regex{Pattern: regexEscape(query), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"title": bson.M{"$regex": pattern}},
		{"album": bson.M{"$regex": pattern}},
	}}
	cur, err := r.col.Find(ctx, filter, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeSongs(ctx, cur)
}

func (r *songRepository) Insert(ctx context.Context, song *domain.Song) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.col.InsertOne(ctx, song)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", mongo.ErrNilDocument
	}
	return oid.Hex(), nil
}

func (r *songRepository) Update(ctx context.Context, id string, updates bson.M) (bool, error) {
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

func (r *songRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func decodeSongs(ctx context.Context, cur *mongo.Cursor) ([]*domain.Song, error) {
	var out []*domain.Song
	for cur.Next(ctx) {
		var s domain.Song
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, cur.Err()
}

func regexEscape(s string) string {
	special := `\.+*?()|[]{}^$`
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(special, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
