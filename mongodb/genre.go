package mongodb

import (
	"context"
	"errors"
	"fmt"

	"moviecatalog/genre"
	"moviecatalog/query"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type genreDocument struct {
	ID   bson.ObjectID `bson:"_id,omitempty"`
	Name string        `bson:"name"`
}

func (d genreDocument) toGenre() genre.Genre {
	return genre.Genre{ID: d.ID.Hex(), Name: d.Name}
}

// GenreRepository implements genre.Repository on a MongoDB collection.
// Name uniqueness comes from the index created by EnsureIndexes.
type GenreRepository struct {
	coll *mongo.Collection
}

func NewGenreRepository(db *mongo.Database) *GenreRepository {
	return &GenreRepository{coll: db.Collection(GenresCollection)}
}

func (r *GenreRepository) CreateGenre(ctx context.Context, g genre.Genre) (genre.Genre, error) {
	doc := genreDocument{ID: bson.NewObjectID(), Name: g.Name}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return genre.Genre{}, genre.ErrDuplicateName
		}
		return genre.Genre{}, fmt.Errorf("mongodb: insert genre: %w", err)
	}

	return doc.toGenre(), nil
}

func (r *GenreRepository) FindGenreByID(ctx context.Context, id string) (genre.Genre, error) {
	oid, err := objectID(id, genre.ErrInvalidID)
	if err != nil {
		return genre.Genre{}, err
	}

	return r.decodeOne(r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}), "find")
}

func (r *GenreRepository) UpdateGenre(ctx context.Context, id string, p genre.Patch) (genre.Genre, error) {
	oid, err := objectID(id, genre.ErrInvalidID)
	if err != nil {
		return genre.Genre{}, err
	}
	if p.IsEmpty() {
		return r.FindGenreByID(ctx, id)
	}

	res := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{{Key: genre.FieldName, Value: *p.Name}}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	return r.decodeOne(res, "update")
}

func (r *GenreRepository) DeleteGenre(ctx context.Context, id string) (genre.Genre, error) {
	oid, err := objectID(id, genre.ErrInvalidID)
	if err != nil {
		return genre.Genre{}, err
	}

	return r.decodeOne(r.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}), "delete")
}

func (r *GenreRepository) FindGenres(ctx context.Context, spec query.Spec) ([]genre.Genre, error) {
	cursor, err := r.coll.Find(ctx, Filter(spec.Conditions), findOptions(spec))
	if err != nil {
		return nil, fmt.Errorf("mongodb: find genres: %w", err)
	}

	var docs []genreDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongodb: decode genres: %w", err)
	}

	genres := make([]genre.Genre, len(docs))
	for i, doc := range docs {
		genres[i] = doc.toGenre()
	}
	return genres, nil
}

func (r *GenreRepository) decodeOne(res *mongo.SingleResult, action string) (genre.Genre, error) {
	var doc genreDocument
	if err := res.Decode(&doc); err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return genre.Genre{}, genre.ErrNotFound
		case mongo.IsDuplicateKeyError(err):
			return genre.Genre{}, genre.ErrDuplicateName
		}
		return genre.Genre{}, fmt.Errorf("mongodb: %s genre: %w", action, err)
	}
	return doc.toGenre(), nil
}
