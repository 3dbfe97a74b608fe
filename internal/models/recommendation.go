package models

import "time"

// RecMovie es un candidato ya puntuado. Los nombres JSON son los que
// espera el front (titulo/id/custo/avaliacoes).
type RecMovie struct {
	Title      string  `json:"titulo" bson:"title"`
	MovieID    int     `json:"id" bson:"movieId"`
	Cost       float64 `json:"custo" bson:"cost"`
	NumRatings int     `json:"avaliacoes" bson:"numRatings"`
}

// RecResult es la salida del motor. Movies vacío con error nil significa
// "sin datos suficientes", que NO es un error.
type RecResult struct {
	Genre     string     `json:"genre"`
	GenreFreq int        `json:"genreFreq"`
	Movies    []RecMovie `json:"movies"`
}

// Recommendation es el historial que se guarda en Mongo por cada
// lista generada.
type Recommendation struct {
	Username  string     `json:"username" bson:"username"`
	Genre     string     `json:"genre" bson:"genre"`
	GenreFreq int        `json:"genreFreq" bson:"genreFreq"`
	Items     []RecMovie `json:"items" bson:"items"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
}
