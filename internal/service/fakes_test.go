package service_test

import (
	"context"
	"sort"

	"cinegraf/internal/models"
)

// Dobles en memoria del contrato del store. Si `err` está seteado, todas
// las operaciones lo devuelven (para simular un store caído).

type fakeUserStore struct {
	users []models.UserDoc
	err   error
}

func (f *fakeUserStore) FindAllByName(_ context.Context, name string) ([]models.UserDoc, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.UserDoc
	for _, u := range f.users {
		if u.Name == name {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (f *fakeUserStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	list, err := f.FindAllByName(ctx, name)
	if err != nil {
		return false, err
	}
	return len(list) > 0, nil
}

func (f *fakeUserStore) NextUserID(_ context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	next := 1
	for _, u := range f.users {
		if u.UserID >= next {
			next = u.UserID + 1
		}
	}
	return next, nil
}

func (f *fakeUserStore) Insert(_ context.Context, u *models.UserDoc) error {
	if f.err != nil {
		return f.err
	}
	f.users = append(f.users, *u)
	return nil
}

type fakeMovieStore struct {
	movies []models.MovieDoc
	err    error
}

func (f *fakeMovieStore) GetByID(_ context.Context, movieID int) (*models.MovieDoc, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.movies {
		if f.movies[i].MovieID == movieID {
			m := f.movies[i]
			return &m, nil
		}
	}
	return nil, nil
}

func (f *fakeMovieStore) GetByIDs(_ context.Context, movieIDs []int) ([]models.MovieDoc, error) {
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[int]bool, len(movieIDs))
	for _, id := range movieIDs {
		want[id] = true
	}
	var out []models.MovieDoc
	for _, m := range f.movies {
		if want[m.MovieID] {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovieStore) ListAll(_ context.Context) ([]models.MovieDoc, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.MovieDoc, len(f.movies))
	copy(out, f.movies)
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (f *fakeMovieStore) CandidatesByGenre(_ context.Context, genre string, excludeIDs []int) ([]models.MovieDoc, error) {
	if f.err != nil {
		return nil, f.err
	}
	excluded := make(map[int]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	var out []models.MovieDoc
	for _, m := range f.movies {
		if excluded[m.MovieID] {
			continue
		}
		for _, g := range m.Genres {
			if g == genre {
				out = append(out, m)
				break
			}
		}
	}
	return out, nil
}

type fakeRatingStore struct {
	ratings []models.RatingDoc
	err     error
}

func (f *fakeRatingStore) Upsert(_ context.Context, username string, movieID, rating int, timestamp int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	for i := range f.ratings {
		if f.ratings[i].Username == username && f.ratings[i].MovieID == movieID {
			f.ratings[i].Rating = rating
			f.ratings[i].Timestamp = timestamp
			return 1, nil
		}
	}
	f.ratings = append(f.ratings, models.RatingDoc{
		Username:  username,
		MovieID:   movieID,
		Rating:    rating,
		Timestamp: timestamp,
	})
	return 1, nil
}

func (f *fakeRatingStore) GetAllByUser(_ context.Context, username string) ([]models.RatingDoc, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.RatingDoc
	for _, r := range f.ratings {
		if r.Username == username {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRatingStore) GetRatedAtLeast(_ context.Context, username string, minRating int) ([]models.RatingDoc, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.RatingDoc
	for _, r := range f.ratings {
		if r.Username == username && r.Rating >= minRating {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRatingStore) PeerStats(_ context.Context, movieIDs []int, excludeUser string, minRating int) (map[int]models.PeerStat, error) {
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[int]bool, len(movieIDs))
	for _, id := range movieIDs {
		want[id] = true
	}

	sums := make(map[int]int)
	counts := make(map[int]int)
	for _, r := range f.ratings {
		if !want[r.MovieID] || r.Username == excludeUser || r.Rating < minRating {
			continue
		}
		sums[r.MovieID] += r.Rating
		counts[r.MovieID]++
	}

	out := make(map[int]models.PeerStat, len(counts))
	for id, n := range counts {
		out[id] = models.PeerStat{
			NumRatings: n,
			AvgRating:  float64(sums[id]) / float64(n),
		}
	}
	return out, nil
}

type fakeRecHistory struct {
	recs []*models.Recommendation
	err  error
}

func (f *fakeRecHistory) Insert(_ context.Context, rec *models.Recommendation) error {
	if f.err != nil {
		return f.err
	}
	f.recs = append(f.recs, rec)
	return nil
}
