package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"cinegraf/internal/cache"
	"cinegraf/internal/models"
)

const (
	// MaxRecommendations es el tope de películas por respuesta.
	MaxRecommendations = 5
	// MinLikedRating es la nota mínima para que un rating cuente como
	// señal positiva (del usuario para inferir género, de los pares
	// para el promedio).
	MinLikedRating = 4
	// NeutralAvgRating se usa cuando un candidato no tiene ningún
	// rating >= 4 de otros usuarios.
	NeutralAvgRating = 3.0

	recCacheTTLSeconds = 60 * 60
)

func recCacheKey(username string) string {
	return "rec:user:" + username
}

// RecommendService calcula recomendaciones recorriendo el grafo
// usuario → ratings → géneros → candidatos → ratings de pares. No guarda
// estado entre llamadas: todo vive en el store.
type RecommendService struct {
	ratings RatingStore
	movies  MovieStore
	recRepo RecHistoryStore
	cache   *cache.Cache
}

func NewRecommendService(r RatingStore, m MovieStore, recRepo RecHistoryStore, c *cache.Cache) *RecommendService {
	return &RecommendService{
		ratings: r,
		movies:  m,
		recRepo: recRepo,
		cache:   c,
	}
}

// Recommend arma hasta MaxRecommendations películas para el usuario:
//
//  1. infiere el género preferido G* contando los géneros de las películas
//     que evaluó con nota >= 4 (empate: gana el nombre menor),
//  2. junta las películas de G* que el usuario no evaluó con ninguna nota,
//  3. agrega por candidato los ratings >= 4 de los demás usuarios,
//  4. puntúa costo = (6.0 - promedio) - (frecuencia * 2.0),
//  5. ordena por costo asc, desempata por cantidad de evaluaciones desc.
//
// Movies vacío con error nil significa que no hay datos suficientes; el
// caller lo distingue de un fallo real.
func (s *RecommendService) Recommend(ctx context.Context, username string) (*models.RecResult, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username es obligatorio", models.ErrInvalidInput)
	}

	var cached models.RecResult
	if ok, err := s.cache.GetJSON(ctx, recCacheKey(username), &cached); err == nil && ok {
		return &cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	// 1) género preferido a partir de los ratings altos del usuario
	liked, err := s.ratings.GetRatedAtLeast(ctx, username, MinLikedRating)
	if err != nil {
		return nil, storeErr(err)
	}
	if len(liked) == 0 {
		return &models.RecResult{}, nil
	}

	likedIDs := make([]int, 0, len(liked))
	for _, rt := range liked {
		likedIDs = append(likedIDs, rt.MovieID)
	}
	likedMovies, err := s.movies.GetByIDs(ctx, likedIDs)
	if err != nil {
		return nil, storeErr(err)
	}

	genre, freq := preferredGenre(likedMovies)
	if genre == "" {
		return &models.RecResult{}, nil
	}

	// 2) candidatos: películas del género sin arista RATED del usuario
	rated, err := s.ratings.GetAllByUser(ctx, username)
	if err != nil {
		return nil, storeErr(err)
	}
	ratedIDs := make([]int, 0, len(rated))
	for _, rt := range rated {
		ratedIDs = append(ratedIDs, rt.MovieID)
	}

	candidates, err := s.movies.CandidatesByGenre(ctx, genre, ratedIDs)
	if err != nil {
		return nil, storeErr(err)
	}
	if len(candidates) == 0 {
		return &models.RecResult{Genre: genre, GenreFreq: freq}, nil
	}

	// 3) señal colaborativa de los demás usuarios, en una sola agregación
	candIDs := make([]int, 0, len(candidates))
	for _, m := range candidates {
		candIDs = append(candIDs, m.MovieID)
	}
	stats, err := s.ratings.PeerStats(ctx, candIDs, username, MinLikedRating)
	if err != nil {
		return nil, storeErr(err)
	}

	// 4) costo sintético por candidato
	recs := make([]models.RecMovie, 0, len(candidates))
	for _, m := range candidates {
		avg := NeutralAvgRating
		num := 0
		if st, ok := stats[m.MovieID]; ok && st.NumRatings > 0 {
			avg = st.AvgRating
			num = st.NumRatings
		}
		recs = append(recs, models.RecMovie{
			MovieID:    m.MovieID,
			Title:      m.Title,
			Cost:       (6.0 - avg) - float64(freq)*2.0,
			NumRatings: num,
		})
	}

	// 5) ranking: costo asc, evaluaciones desc; movieId asc para que dos
	// corridas iguales devuelvan lo mismo
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Cost != recs[j].Cost {
			return recs[i].Cost < recs[j].Cost
		}
		if recs[i].NumRatings != recs[j].NumRatings {
			return recs[i].NumRatings > recs[j].NumRatings
		}
		return recs[i].MovieID < recs[j].MovieID
	})
	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}

	res := &models.RecResult{Genre: genre, GenreFreq: freq, Movies: recs}

	// historial en Mongo (si falla no rompemos la respuesta)
	if s.recRepo != nil {
		hist := &models.Recommendation{
			Username:  username,
			Genre:     genre,
			GenreFreq: freq,
			Items:     recs,
			CreatedAt: time.Now(),
		}
		if err := s.recRepo.Insert(ctx, hist); err != nil {
			log.Printf("[recommend] error guardando historial: %v", err)
		}
	}

	if err := s.cache.SetJSON(ctx, recCacheKey(username), res, recCacheTTLSeconds); err != nil {
		log.Printf("[recommend] error cacheando: %v", err)
	}
	return res, nil
}

// preferredGenre cuenta cuántas películas bien evaluadas caen en cada
// género y devuelve el más frecuente con su frecuencia. Los empates se
// resuelven por nombre lexicográficamente menor, nunca por orden de
// iteración del map.
func preferredGenre(movies []models.MovieDoc) (string, int) {
	freq := make(map[string]int)
	for _, m := range movies {
		for _, g := range m.Genres {
			freq[g]++
		}
	}

	best, bestN := "", 0
	for g, n := range freq {
		if n > bestN || (n == bestN && g < best) {
			best, bestN = g, n
		}
	}
	return best, bestN
}
