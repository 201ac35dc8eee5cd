package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moviecatalog/movie"
	"moviecatalog/query"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type movieDocument struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Title       string        `bson:"title"`
	Description string        `bson:"description"`
	ReleaseDate time.Time     `bson:"releaseDate"`
	Genre       []string      `bson:"genre"`
}

func newMovieDocument(m movie.Movie) movieDocument {
	return movieDocument{
		Title:       m.Title,
		Description: m.Description,
		ReleaseDate: m.ReleaseDate.UTC(),
		Genre:       m.Genre,
	}
}

func (d movieDocument) toMovie() movie.Movie {
	genres := d.Genre
	if genres == nil {
		genres = []string{}
	}
	return movie.Movie{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		ReleaseDate: d.ReleaseDate.UTC(),
		Genre:       genres,
	}
}

// MovieRepository implements movie.Repository on a MongoDB collection.
type MovieRepository struct {
	coll *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{coll: db.Collection(MoviesCollection)}
}

func (r *MovieRepository) CreateMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	doc := newMovieDocument(m)
	doc.ID = bson.NewObjectID()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return movie.Movie{}, fmt.Errorf("mongodb: insert movie: %w", err)
	}

	return doc.toMovie(), nil
}

func (r *MovieRepository) FindMovieByID(ctx context.Context, id string) (movie.Movie, error) {
	oid, err := objectID(id, movie.ErrInvalidID)
	if err != nil {
		return movie.Movie{}, err
	}

	return r.decodeOne(r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}), "find")
}

func (r *MovieRepository) UpdateMovie(ctx context.Context, id string, p movie.Patch) (movie.Movie, error) {
	oid, err := objectID(id, movie.ErrInvalidID)
	if err != nil {
		return movie.Movie{}, err
	}
	if p.IsEmpty() {
		return r.FindMovieByID(ctx, id)
	}

	res := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: moviePatchSet(p)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	return r.decodeOne(res, "update")
}

func (r *MovieRepository) ReplaceMovie(ctx context.Context, id string, m movie.Movie) (movie.Movie, error) {
	oid, err := objectID(id, movie.ErrInvalidID)
	if err != nil {
		return movie.Movie{}, err
	}

	res := r.coll.FindOneAndReplace(ctx,
		bson.D{{Key: "_id", Value: oid}},
		newMovieDocument(m),
		options.FindOneAndReplace().SetReturnDocument(options.After),
	)
	return r.decodeOne(res, "replace")
}

func (r *MovieRepository) DeleteMovie(ctx context.Context, id string) (movie.Movie, error) {
	oid, err := objectID(id, movie.ErrInvalidID)
	if err != nil {
		return movie.Movie{}, err
	}

	return r.decodeOne(r.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}), "delete")
}

func (r *MovieRepository) FindMovies(ctx context.Context, spec query.Spec) ([]movie.Movie, error) {
	cursor, err := r.coll.Find(ctx, Filter(spec.Conditions), findOptions(spec))
	if err != nil {
		return nil, fmt.Errorf("mongodb: find movies: %w", err)
	}

	var docs []movieDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongodb: decode movies: %w", err)
	}

	movies := make([]movie.Movie, len(docs))
	for i, doc := range docs {
		movies[i] = doc.toMovie()
	}
	return movies, nil
}

func (r *MovieRepository) decodeOne(res *mongo.SingleResult, action string) (movie.Movie, error) {
	var doc movieDocument
	if err := res.Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return movie.Movie{}, movie.ErrNotFound
		}
		return movie.Movie{}, fmt.Errorf("mongodb: %s movie: %w", action, err)
	}
	return doc.toMovie(), nil
}

func moviePatchSet(p movie.Patch) bson.D {
	set := bson.D{}
	if p.Title != nil {
		set = append(set, bson.E{Key: movie.FieldTitle, Value: *p.Title})
	}
	if p.Description != nil {
		set = append(set, bson.E{Key: movie.FieldDescription, Value: *p.Description})
	}
	if p.ReleaseDate != nil {
		set = append(set, bson.E{Key: movie.FieldReleaseDate, Value: p.ReleaseDate.UTC()})
	}
	if p.Genre != nil {
		genres := *p.Genre
		if genres == nil {
			genres = []string{}
		}
		set = append(set, bson.E{Key: movie.FieldGenre, Value: genres})
	}
	return set
}
