package service_test

import (
	"context"
	"errors"
	"testing"

	"cinegraf/internal/models"
	"cinegraf/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catálogo base para los escenarios: 1, 2 y 4 son Action, 3 es Comedy.
func baseMovies() []models.MovieDoc {
	return []models.MovieDoc{
		{MovieID: 1, Title: "Heat", Genres: []string{"Action"}},
		{MovieID: 2, Title: "Speed", Genres: []string{"Action"}},
		{MovieID: 3, Title: "Airplane!", Genres: []string{"Comedy"}},
		{MovieID: 4, Title: "Die Hard", Genres: []string{"Action"}},
	}
}

func newRecommendService(ratings *fakeRatingStore, movies *fakeMovieStore, hist service.RecHistoryStore) *service.RecommendService {
	return service.NewRecommendService(ratings, movies, hist, nil)
}

func TestRecommendEndToEnd(t *testing.T) {
	// alice amó dos Action y una Comedy le pareció mala; bob amó Die Hard,
	// que alice no vio. La recomendación tiene que ser Die Hard con
	// custo = (6.0 - 5.0) - (2 * 2.0) = -3.0 y una evaluación de par.
	ratings := &fakeRatingStore{ratings: []models.RatingDoc{
		{Username: "alice", MovieID: 1, Rating: 5, Timestamp: 100},
		{Username: "alice", MovieID: 2, Rating: 5, Timestamp: 101},
		{Username: "alice", MovieID: 3, Rating: 2, Timestamp: 102},
		{Username: "bob", MovieID: 4, Rating: 5, Timestamp: 103},
	}}
	hist := &fakeRecHistory{}
	svc := newRecommendService(ratings, &fakeMovieStore{movies: baseMovies()}, hist)

	res, err := svc.Recommend(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, "Action", res.Genre)
	assert.Equal(t, 2, res.GenreFreq)
	require.Len(t, res.Movies, 1)

	rec := res.Movies[0]
	assert.Equal(t, 4, rec.MovieID)
	assert.Equal(t, "Die Hard", rec.Title)
	assert.Equal(t, 1, rec.NumRatings)
	assert.InDelta(t, -3.0, rec.Cost, 1e-9)

	// el historial quedó guardado
	require.Len(t, hist.recs, 1)
	assert.Equal(t, "alice", hist.recs[0].Username)
	assert.Equal(t, "Action", hist.recs[0].Genre)
}

func TestRecommendInsufficientData(t *testing.T) {
	// carol nunca evaluó nada con nota >= 4: resultado vacío, no error.
	ratings := &fakeRatingStore{ratings: []models.RatingDoc{
		{Username: "carol", MovieID: 1, Rating: 3, Timestamp: 100},
		{Username: "carol", MovieID: 3, Rating: 2, Timestamp: 101},
	}}
	svc := newRecommendService(ratings, &fakeMovieStore{movies: baseMovies()}, nil)

	res, err := svc.Recommend(context.Background(), "carol")
	require.NoError(t, err)
	assert.Empty(t, res.Movies)
}

func TestRecommendNeverReturnsRatedMovies(t *testing.T) {
	// alice ya evaluó la 4 con nota baja: aunque sea del género preferido
	// no puede volver como recomendación.
	ratings := &fakeRatingStore{ratings: []models.RatingDoc{
		{Username: "alice", MovieID: 1, Rating: 5, Timestamp: 100},
		{Username: "alice", MovieID: 4, Rating: 1, Timestamp: 101},
		{Username: "bob", MovieID: 2, Rating: 5, Timestamp: 102},
		{Username: "bob", MovieID: 4, Rating: 5, Timestamp: 103},
	}}
	svc := newRecommendService(ratings, &fakeMovieStore{movies: baseMovies()}, nil)

	res, err := svc.Recommend(context.Background(), "alice")
	require.NoError(t, err)

	for _, rec := range res.Movies {
		assert.NotContains(t, []int{1, 4}, rec.MovieID)
	}
	require.Len(t, res.Movies, 1)
	assert.Equal(t, 2, res.Movies[0].MovieID)
}

func TestRecommendRankingAndTruncation(t *testing.T) {
	// 7 candidatos Action con distinto apoyo de pares: salen a lo sumo 5,
	// con costo ascendente y desempate por cantidad de evaluaciones.
	movies := []models.MovieDoc{
		{MovieID: 1, Title: "Seed", Genres: []string{"Action"}},
	}
	ratings := []models.RatingDoc{
		{Username: "alice", MovieID: 1, Rating: 5, Timestamp: 100},
	}
	peers := []string{"bob", "carol", "dave", "erin"}
	for id := 10; id < 17; id++ {
		movies = append(movies, models.MovieDoc{MovieID: id, Title: "Action Flick", Genres: []string{"Action"}})
		// cuanto más alto el id, más pares lo aman
		for p := 0; p < (id-10)%len(peers); p++ {
			ratings = append(ratings, models.RatingDoc{
				Username: peers[p], MovieID: id, Rating: 5, Timestamp: 200,
			})
		}
	}

	svc := newRecommendService(&fakeRatingStore{ratings: ratings}, &fakeMovieStore{movies: movies}, nil)

	res, err := svc.Recommend(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, res.Movies, service.MaxRecommendations)

	for i := 1; i < len(res.Movies); i++ {
		prev, cur := res.Movies[i-1], res.Movies[i]
		assert.LessOrEqual(t, prev.Cost, cur.Cost)
		if prev.Cost == cur.Cost {
			assert.GreaterOrEqual(t, prev.NumRatings, cur.NumRatings)
		}
	}
}

func TestRecommendGenreTieBreakIsLexicographic(t *testing.T) {
	// empate de frecuencia entre Drama y Comedy: gana Comedy por nombre.
	movies := []models.MovieDoc{
		{MovieID: 1, Title: "Tears", Genres: []string{"Drama"}},
		{MovieID: 2, Title: "Laughs", Genres: []string{"Comedy"}},
		{MovieID: 3, Title: "More Laughs", Genres: []string{"Comedy"}},
		{MovieID: 4, Title: "More Tears", Genres: []string{"Drama"}},
	}
	ratings := &fakeRatingStore{ratings: []models.RatingDoc{
		{Username: "alice", MovieID: 1, Rating: 5, Timestamp: 100},
		{Username: "alice", MovieID: 2, Rating: 5, Timestamp: 101},
	}}
	svc := newRecommendService(ratings, &fakeMovieStore{movies: movies}, nil)

	res, err := svc.Recommend(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "Comedy", res.Genre)
	assert.Equal(t, 1, res.GenreFreq)
}

func TestRecommendNeutralAverageWithoutPeers(t *testing.T) {
	// nadie más evaluó al candidato: promedio neutro 3.0,
	// custo = (6.0 - 3.0) - (1 * 2.0) = 1.0 y cero evaluaciones.
	ratings := &fakeRatingStore{ratings: []models.RatingDoc{
		{Username: "alice", MovieID: 1, Rating: 5, Timestamp: 100},
	}}
	svc := newRecommendService(ratings, &fakeMovieStore{movies: baseMovies()}, nil)

	res, err := svc.Recommend(context.Background(), "alice")
	require.NoError(t, err)
	require.NotEmpty(t, res.Movies)

	for _, rec := range res.Movies {
		assert.Equal(t, 0, rec.NumRatings)
		assert.InDelta(t, 1.0, rec.Cost, 1e-9)
	}
}

func TestRecommendCostDecreasesWithPeerAverage(t *testing.T) {
	// con la frecuencia fija, a mayor promedio de pares menor costo.
	movies := []models.MovieDoc{
		{MovieID: 1, Title: "Seed", Genres: []string{"Action"}},
		{MovieID: 10, Title: "Loved", Genres: []string{"Action"}},
		{MovieID: 11, Title: "Liked", Genres: []string{"Action"}},
	}
	ratings := &fakeRatingStore{ratings: []models.RatingDoc{
		{Username: "alice", MovieID: 1, Rating: 5, Timestamp: 100},
		{Username: "bob", MovieID: 10, Rating: 5, Timestamp: 200},
		{Username: "bob", MovieID: 11, Rating: 4, Timestamp: 201},
	}}
	svc := newRecommendService(ratings, &fakeMovieStore{movies: movies}, nil)

	res, err := svc.Recommend(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, res.Movies, 2)

	assert.Equal(t, 10, res.Movies[0].MovieID)
	assert.Equal(t, 11, res.Movies[1].MovieID)
	assert.Less(t, res.Movies[0].Cost, res.Movies[1].Cost)
}

func TestRecommendValidation(t *testing.T) {
	svc := newRecommendService(&fakeRatingStore{}, &fakeMovieStore{}, nil)

	_, err := svc.Recommend(context.Background(), "")
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestRecommendStoreFailure(t *testing.T) {
	ratings := &fakeRatingStore{err: errors.New("connection reset")}
	svc := newRecommendService(ratings, &fakeMovieStore{movies: baseMovies()}, nil)

	_, err := svc.Recommend(context.Background(), "alice")
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
}
