package repository

import (
	"context"
	"time"

	"cinegraf/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type RecommendationRepository struct {
	col *mongo.Collection
}

func NewRecommendationRepository(db *mongo.Database) *RecommendationRepository {
	return &RecommendationRepository{
		col: db.Collection("recommendations"),
	}
}

func (r *RecommendationRepository) Insert(ctx context.Context, rec *models.Recommendation) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, rec)
	return err
}

// opcional para futuro: listar historial por usuario
func (r *RecommendationRepository) FindByUser(ctx context.Context, username string, limit int64) ([]models.Recommendation, error) {
	cur, err := r.col.Find(ctx, map[string]any{"username": username})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Recommendation
	for cur.Next(ctx) {
		var rec models.Recommendation
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
	}
	return out, cur.Err()
}
