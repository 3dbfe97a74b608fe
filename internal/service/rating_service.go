package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"cinegraf/internal/cache"
	"cinegraf/internal/models"
)

type RatingService struct {
	ratings RatingStore
	movies  MovieStore
	users   UserStore
	cache   *cache.Cache
}

func NewRatingService(r RatingStore, m MovieStore, u UserStore, c *cache.Cache) *RatingService {
	return &RatingService{
		ratings: r,
		movies:  m,
		users:   u,
		cache:   c,
	}
}

// RecordRating valida y registra la observación (username, movieId, rating).
// Idempotente por par (usuario, película): re-evaluar sobreescribe nota y
// timestamp. Los nodos User y Movie tienen que existir de antemano; si
// alguno falta se devuelve not found en vez de un éxito silencioso.
func (s *RatingService) RecordRating(ctx context.Context, username string, movieID, rating int) error {
	if username == "" {
		return fmt.Errorf("%w: username es obligatorio", models.ErrInvalidInput)
	}
	if movieID == 0 {
		return fmt.Errorf("%w: movieId es obligatorio", models.ErrInvalidInput)
	}
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating debe estar entre 1 y 5", models.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	ok, err := s.users.ExistsByName(ctx, username)
	if err != nil {
		return storeErr(err)
	}
	if !ok {
		return fmt.Errorf("%w: usuario %q", models.ErrNotFound, username)
	}

	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return storeErr(err)
	}
	if movie == nil {
		return fmt.Errorf("%w: película %d", models.ErrNotFound, movieID)
	}

	affected, err := s.ratings.Upsert(ctx, username, movieID, rating, time.Now().Unix())
	if err != nil {
		return storeErr(err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: ningún rating escrito para %q / %d", models.ErrNotFound, username, movieID)
	}

	// las recomendaciones cacheadas del usuario quedaron viejas
	if err := s.cache.Del(ctx, recCacheKey(username)); err != nil {
		log.Printf("[rating] error invalidando cache de %s: %v", username, err)
	}
	return nil
}

func (s *RatingService) GetByUser(ctx context.Context, username string) ([]models.RatingDoc, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username es obligatorio", models.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	list, err := s.ratings.GetAllByUser(ctx, username)
	if err != nil {
		return nil, storeErr(err)
	}
	return list, nil
}
