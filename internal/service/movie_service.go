// internal/service/movie_service.go
package service

import (
	"context"
	"log"

	"cinegraf/internal/cache"
	"cinegraf/internal/models"
)

const filmesCacheKey = "filmes:all"

type MovieService struct {
	movies MovieStore
	cache  *cache.Cache
}

func NewMovieService(m MovieStore, c *cache.Cache) *MovieService {
	return &MovieService{movies: m, cache: c}
}

// ListMovies devuelve el catálogo completo (id + título) ordenado por
// título. El catálogo es precargado y de solo lectura, así que se cachea
// unos minutos en Redis.
func (s *MovieService) ListMovies(ctx context.Context) ([]models.MovieOption, error) {
	var cached []models.MovieOption
	if ok, err := s.cache.GetJSON(ctx, filmesCacheKey, &cached); err == nil && ok {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	movies, err := s.movies.ListAll(ctx)
	if err != nil {
		return nil, storeErr(err)
	}

	out := make([]models.MovieOption, 0, len(movies))
	for _, m := range movies {
		out = append(out, models.MovieOption{ID: m.MovieID, Nome: m.Title})
	}

	if err := s.cache.SetJSON(ctx, filmesCacheKey, out, 10*60); err != nil {
		log.Printf("[movies] error cacheando catálogo: %v", err)
	}
	return out, nil
}
