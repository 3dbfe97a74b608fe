package main

import (
	"context"
	"log"
	"net/http"

	_ "cinegraf/docs" // swagger docs

	"cinegraf/internal/cache"
	"cinegraf/internal/config"
	"cinegraf/internal/db"
	"cinegraf/internal/handler"
	"cinegraf/internal/repository"
	"cinegraf/internal/service"
)

// @title Cinegraf Movie Recommender API
// @version 1.0
// @description API de login, avaliações y recomendaciones por género (Mongo, Redis)
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	client, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("[mongo] error conectando: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	database := client.Database(cfg.MongoDB)

	c, err := cache.New(cfg)
	if err != nil {
		// sin Redis se sigue trabajando directo contra Mongo
		log.Printf("[redis] no disponible, seguimos sin cache: %v", err)
		c = nil
	}

	// repos
	userRepo := repository.NewUserRepository(database)
	movieRepo := repository.NewMovieRepository(database)
	ratingRepo := repository.NewRatingRepository(database)
	recRepo := repository.NewRecommendationRepository(database)

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	movieSvc := service.NewMovieService(movieRepo, c)
	ratingSvc := service.NewRatingService(ratingRepo, movieRepo, userRepo, c)
	recSvc := service.NewRecommendService(ratingRepo, movieRepo, recRepo, c)

	// handlers
	r := handler.NewRouter(cfg.JWTSecret,
		handler.NewAuthHandler(authSvc),
		handler.NewMovieHandler(movieSvc),
		handler.NewRatingHandler(ratingSvc),
		handler.NewRecommendHandler(recSvc),
	)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
