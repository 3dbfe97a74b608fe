package handler

import (
	"net/http"

	"cinegraf/internal/service"
)

type MovieHandler struct {
	svc *service.MovieService
}

func NewMovieHandler(s *service.MovieService) *MovieHandler {
	return &MovieHandler{svc: s}
}

// @Summary Listar todos los filmes
// @Description Catálogo completo ordenado por título, para el dropdown del front.
// @Tags filmes
// @Produce json
// @Success 200 {array} models.MovieOption
// @Router /api/filmes [get]
func (h *MovieHandler) ListFilmes(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListMovies(r.Context())
	if err != nil {
		serviceError(w, err, "Erro ao buscar filmes")
		return
	}
	writeJSON(w, http.StatusOK, list)
}
