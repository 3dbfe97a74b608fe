package service

import (
	"context"
	"fmt"
	"time"

	"cinegraf/internal/models"
)

// Timeout acotado por operación contra el store; al vencer se reporta
// como store no disponible.
const storeTimeout = 10 * time.Second

// Interfaces del store que consumen los servicios. Los repositorios de
// Mongo las implementan; los tests las reemplazan por dobles en memoria.

type UserStore interface {
	FindAllByName(ctx context.Context, name string) ([]models.UserDoc, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	NextUserID(ctx context.Context) (int, error)
	Insert(ctx context.Context, u *models.UserDoc) error
}

type MovieStore interface {
	GetByID(ctx context.Context, movieID int) (*models.MovieDoc, error)
	GetByIDs(ctx context.Context, movieIDs []int) ([]models.MovieDoc, error)
	ListAll(ctx context.Context) ([]models.MovieDoc, error)
	CandidatesByGenre(ctx context.Context, genre string, excludeIDs []int) ([]models.MovieDoc, error)
}

type RatingStore interface {
	Upsert(ctx context.Context, username string, movieID, rating int, timestamp int64) (int64, error)
	GetAllByUser(ctx context.Context, username string) ([]models.RatingDoc, error)
	GetRatedAtLeast(ctx context.Context, username string, minRating int) ([]models.RatingDoc, error)
	PeerStats(ctx context.Context, movieIDs []int, excludeUser string, minRating int) (map[int]models.PeerStat, error)
}

type RecHistoryStore interface {
	Insert(ctx context.Context, rec *models.Recommendation) error
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
}
