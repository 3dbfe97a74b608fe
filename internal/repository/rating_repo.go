package repository

import (
	"context"
	"fmt"

	"cinegraf/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RatingRepository struct {
	col *mongo.Collection
}

func NewRatingRepository(db *mongo.Database) *RatingRepository {
	return &RatingRepository{col: db.Collection("ratings")}
}

// Upsert crea o sobreescribe la arista RATED (username, movieId).
// Devuelve cuántos documentos quedaron afectados (matched + upserted).
func (r *RatingRepository) Upsert(ctx context.Context, username string, movieID, rating int, timestamp int64) (int64, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"username": username, "movieId": movieID},
		bson.M{"$set": bson.M{
			"rating": rating,
			// guardamos epoch (int64)
			"timestamp": timestamp,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount + res.UpsertedCount, nil
}

func (r *RatingRepository) GetAllByUser(ctx context.Context, username string) ([]models.RatingDoc, error) {
	return r.find(ctx, bson.M{"username": username})
}

// GetRatedAtLeast devuelve los ratings del usuario con nota >= minRating.
func (r *RatingRepository) GetRatedAtLeast(ctx context.Context, username string, minRating int) ([]models.RatingDoc, error) {
	return r.find(ctx, bson.M{
		"username": username,
		"rating":   bson.M{"$gte": minRating},
	})
}

func (r *RatingRepository) find(ctx context.Context, filter bson.M) ([]models.RatingDoc, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RatingDoc
	for cur.Next(ctx) {
		var rd models.RatingDoc
		if err := cur.Decode(&rd); err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	return out, cur.Err()
}

// PeerStats agrega, por película, los ratings >= minRating de usuarios
// distintos de excludeUser: cuántos son y su promedio. Como hay a lo sumo
// un documento por (username, movieId), contar documentos equivale a
// contar usuarios distintos.
func (r *RatingRepository) PeerStats(ctx context.Context, movieIDs []int, excludeUser string, minRating int) (map[int]models.PeerStat, error) {
	out := make(map[int]models.PeerStat, len(movieIDs))
	if len(movieIDs) == 0 {
		return out, nil
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"movieId":  bson.M{"$in": movieIDs},
			"username": bson.M{"$ne": excludeUser},
			"rating":   bson.M{"$gte": minRating},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":        "$movieId",
			"numRatings": bson.M{"$sum": 1},
			"avgRating":  bson.M{"$avg": "$rating"},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}

		movieID, err := asInt(raw["_id"])
		if err != nil {
			return nil, err
		}
		num, err := asInt(raw["numRatings"])
		if err != nil {
			return nil, err
		}
		avg, err := asFloat64(raw["avgRating"])
		if err != nil {
			return nil, err
		}

		out[movieID] = models.PeerStat{NumRatings: num, AvgRating: avg}
	}
	return out, cur.Err()
}

// helpers de casteo seguro: los agregados de Mongo vuelven como int32,
// int64 o float64 según el caso; cualquier otro tipo (o un int64 que no
// entra en int) se reporta como fallo del store.
func asInt(v any) (int, error) {
	switch x := v.(type) {
	case int32:
		return int(x), nil
	case int64:
		n := int(x)
		if int64(n) != x {
			return 0, fmt.Errorf("valor fuera de rango: %d", x)
		}
		return n, nil
	case float64:
		return int(x), nil
	default:
		return 0, fmt.Errorf("tipo numérico inesperado %T", v)
	}
}

func asFloat64(v any) (float64, error) {
	switch x := v.(type) {
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case float64:
		return x, nil
	default:
		return 0, fmt.Errorf("tipo numérico inesperado %T", v)
	}
}
