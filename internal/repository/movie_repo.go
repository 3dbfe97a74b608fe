// internal/repository/movie_repo.go
package repository

import (
	"context"

	"cinegraf/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{col: db.Collection("movies")}
}

func (r *MovieRepository) GetByID(ctx context.Context, movieID int) (*models.MovieDoc, error) {
	var m models.MovieDoc
	err := r.col.FindOne(ctx, bson.M{"movieId": movieID}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &m, err
}

func (r *MovieRepository) GetByIDs(ctx context.Context, movieIDs []int) ([]models.MovieDoc, error) {
	if len(movieIDs) == 0 {
		return nil, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"movieId": bson.M{"$in": movieIDs}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	return decodeMovies(ctx, cur)
}

// ListAll devuelve el catálogo completo ordenado por título (dropdown).
func (r *MovieRepository) ListAll(ctx context.Context) ([]models.MovieDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	return decodeMovies(ctx, cur)
}

// CandidatesByGenre busca las películas del género que el usuario todavía
// no evaluó (excludeIDs = todo lo que ya tiene arista RATED, sin importar
// la nota).
func (r *MovieRepository) CandidatesByGenre(ctx context.Context, genre string, excludeIDs []int) ([]models.MovieDoc, error) {
	// genres es un array, esto busca que contenga ese género
	filter := bson.M{"genres": genre}
	if len(excludeIDs) > 0 {
		filter["movieId"] = bson.M{"$nin": excludeIDs}
	}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	return decodeMovies(ctx, cur)
}

// InsertMany carga el catálogo precargado (solo lo usa cmd/seed).
func (r *MovieRepository) InsertMany(ctx context.Context, movies []models.MovieDoc) error {
	docs := make([]any, 0, len(movies))
	for _, m := range movies {
		docs = append(docs, m)
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}

func (r *MovieRepository) DeleteAll(ctx context.Context) error {
	_, err := r.col.DeleteMany(ctx, bson.M{})
	return err
}

func decodeMovies(ctx context.Context, cur *mongo.Cursor) ([]models.MovieDoc, error) {
	var out []models.MovieDoc
	for cur.Next(ctx) {
		var m models.MovieDoc
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}
