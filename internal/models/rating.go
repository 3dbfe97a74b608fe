package models

// RatingDoc es la arista RATED (User→Movie) en la colección `ratings`.
// Única por (username, movieId): un segundo rating sobreescribe el anterior.
type RatingDoc struct {
	Username  string `json:"username" bson:"username"`
	MovieID   int    `json:"movieId" bson:"movieId"`
	Rating    int    `json:"rating" bson:"rating"`
	Timestamp int64  `json:"timestamp" bson:"timestamp"`
}

// PeerStat agrega los ratings >= 4 de otros usuarios sobre una película.
type PeerStat struct {
	NumRatings int
	AvgRating  float64
}
