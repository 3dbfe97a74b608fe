package service

import (
	"context"
	"fmt"
	"time"

	"cinegraf/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users     UserStore
	jwtSecret []byte
}

func NewAuthService(users UserStore, secret string) *AuthService {
	return &AuthService{users: users, jwtSecret: []byte(secret)}
}

// LoginOrRegister busca un usuario que matchee la tupla (name, password)
// completa; si no existe lo crea con el siguiente userId. Ojo: el mismo
// name con otra password es OTRO usuario, no un cambio de contraseña.
// Las passwords se guardan con bcrypt, el match de la tupla se hace
// comparando el hash de cada usuario con ese name.
func (s *AuthService) LoginOrRegister(ctx context.Context, username, password string) (*models.UserDoc, string, error) {
	if username == "" || password == "" {
		return nil, "", fmt.Errorf("%w: username y password son obligatorios", models.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	candidates, err := s.users.FindAllByName(ctx, username)
	if err != nil {
		return nil, "", storeErr(err)
	}

	var user *models.UserDoc
	for i := range candidates {
		if bcrypt.CompareHashAndPassword([]byte(candidates[i].PasswordHash), []byte(password)) == nil {
			// FindAllByName ordena por userId asc, gana el más antiguo
			user = &candidates[i]
			break
		}
	}

	if user == nil {
		nextID, err := s.users.NextUserID(ctx)
		if err != nil {
			return nil, "", storeErr(err)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, "", err
		}
		u := &models.UserDoc{
			UserID:       nextID,
			Name:         username,
			PasswordHash: string(hash),
			CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.users.Insert(ctx, u); err != nil {
			return nil, "", storeErr(err)
		}
		user = u
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.UserID,
		"name": user.Name,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})
	sToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, "", err
	}
	return user, sToken, nil
}
