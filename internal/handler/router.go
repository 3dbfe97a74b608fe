package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter arma todas las rutas. Separado de main para poder levantar el
// router completo en los tests con dobles del store.
func NewRouter(jwtSecret string, authH *AuthHandler, movieH *MovieHandler, ratingH *RatingHandler, recH *RecommendHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", Health)

	r.Route("/api", func(r chi.Router) {
		// =============
		// Rutas públicas
		// =============
		r.Post("/login", authH.Login)
		r.Get("/filmes", movieH.ListFilmes)
		r.Post("/avaliar", ratingH.PostAvaliacao)
		r.Post("/recomendar", recH.PostRecomendacao)
		r.Get("/ws/recomendar", recH.RecommendWS)

		// ===========================
		// Rutas protegidas con JWT
		// ===========================
		r.Group(func(r chi.Router) {
			r.Use(JWTAuth(jwtSecret))
			r.Get("/me/avaliacoes", ratingH.GetMinhasAvaliacoes)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
