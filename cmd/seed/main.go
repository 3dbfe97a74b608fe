// cmd/seed carga el dataset precargado (películas con sus géneros y,
// opcionalmente, ratings de ejemplo) en Mongo. En runtime el API trata
// ese catálogo como solo lectura.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"cinegraf/internal/config"
	"cinegraf/internal/db"
	"cinegraf/internal/models"
	"cinegraf/internal/repository"
)

func main() {
	moviesFile := flag.String("movies", "data/movies.json", "JSON con el catálogo [{movieId,title,genres}]")
	ratingsFile := flag.String("ratings", "", "JSON opcional con ratings [{username,movieId,rating}]")
	drop := flag.Bool("drop", false, "borra el catálogo antes de cargar")
	flag.Parse()

	cfg := config.Load()

	client, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("[mongo] error conectando: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	database := client.Database(cfg.MongoDB)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	movieRepo := repository.NewMovieRepository(database)

	var movies []models.MovieDoc
	if err := readJSON(*moviesFile, &movies); err != nil {
		log.Fatalf("[seed] leyendo %s: %v", *moviesFile, err)
	}

	if *drop {
		if err := movieRepo.DeleteAll(ctx); err != nil {
			log.Fatalf("[seed] borrando catálogo: %v", err)
		}
	}
	if err := movieRepo.InsertMany(ctx, movies); err != nil {
		log.Fatalf("[seed] insertando películas: %v", err)
	}
	log.Printf("[seed] %d películas cargadas", len(movies))

	if *ratingsFile == "" {
		return
	}

	ratingRepo := repository.NewRatingRepository(database)

	var ratings []models.RatingDoc
	if err := readJSON(*ratingsFile, &ratings); err != nil {
		log.Fatalf("[seed] leyendo %s: %v", *ratingsFile, err)
	}
	for _, rt := range ratings {
		ts := rt.Timestamp
		if ts == 0 {
			ts = time.Now().Unix()
		}
		if _, err := ratingRepo.Upsert(ctx, rt.Username, rt.MovieID, rt.Rating, ts); err != nil {
			log.Fatalf("[seed] rating %s/%d: %v", rt.Username, rt.MovieID, err)
		}
	}
	log.Printf("[seed] %d ratings cargados", len(ratings))
}

func readJSON(path string, dest any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(dest)
}
