package models

// MovieDoc es el nodo Movie en la colección `movies`.
// El array `genres` representa las aristas HAS_GENRE; es data precargada
// y de solo lectura en runtime (la escribe únicamente cmd/seed).
type MovieDoc struct {
	MovieID int      `json:"movieId" bson:"movieId"`
	Title   string   `json:"title" bson:"title"`
	Genres  []string `json:"genres" bson:"genres"`
}

// MovieOption es lo que devuelve GET /api/filmes (dropdown del front).
type MovieOption struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}
