package handler

import (
	"encoding/json"
	"net/http"

	"cinegraf/internal/service"
)

type RatingHandler struct {
	svc *service.RatingService
}

func NewRatingHandler(s *service.RatingService) *RatingHandler {
	return &RatingHandler{svc: s}
}

type ratingRequest struct {
	Username string `json:"username"`
	MovieID  int    `json:"movieId"`
	Rating   int    `json:"rating"`
}

// @Summary Registrar avaliação
// @Description Crea o sobreescribe el rating (1-5) del usuario sobre la película.
// @Tags avaliacoes
// @Accept json
// @Produce json
// @Param body body ratingRequest true "avaliação"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/avaliar [post]
func (h *RatingHandler) PostAvaliacao(w http.ResponseWriter, r *http.Request) {
	var req ratingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.RecordRating(r.Context(), req.Username, req.MovieID, req.Rating); err != nil {
		serviceError(w, err, "Erro ao salvar avaliação")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Avaliação registrada com sucesso!",
	})
}

// @Summary Minhas avaliações
// @Description Lista los ratings del usuario autenticado (el del token).
// @Tags avaliacoes
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.RatingDoc
// @Router /api/me/avaliacoes [get]
func (h *RatingHandler) GetMinhasAvaliacoes(w http.ResponseWriter, r *http.Request) {
	username := UserNameFromContext(r.Context())

	list, err := h.svc.GetByUser(r.Context(), username)
	if err != nil {
		serviceError(w, err, "Erro ao buscar avaliações")
		return
	}
	writeJSON(w, http.StatusOK, list)
}
