package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"cinegraf/internal/service"

	"github.com/gorilla/websocket"
)

// Mensaje que devuelve la API cuando no hay señal suficiente; es una
// respuesta exitosa, no un error.
const msgSemRecomendacoes = "Não foi possível gerar recomendações. Avalie mais filmes com nota >= 4!"

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

type recommendRequest struct {
	Username string `json:"username"`
}

// @Summary Recomendações para um usuário
// @Description Hasta 5 películas del género preferido, ordenadas por costo ascendente.
// @Tags recommend
// @Accept json
// @Produce json
// @Param body body recommendRequest true "usuario"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /api/recomendar [post]
func (h *RecommendHandler) PostRecomendacao(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.Recommend(r.Context(), req.Username)
	if err != nil {
		serviceError(w, err, "Erro ao gerar recomendação")
		return
	}

	if len(res.Movies) == 0 {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"message": msgSemRecomendacoes,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"recomendacoes": res.Movies,
	})
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendações via WebSocket
// @Tags recommend
// @Produce json
// @Param username query string true "username"
// @Success 200 {object} map[string]interface{}
// @Router /api/ws/recomendar [get]
func (h *RecommendHandler) RecommendWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, "No se pudo abrir WebSocket")
		return
	}
	defer conn.Close()

	username := r.URL.Query().Get("username")

	_ = conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, calculando recomendaciones…",
	})

	res, err := h.svc.Recommend(r.Context(), username)
	if err != nil {
		_ = conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": "Erro ao gerar recomendação",
		})
		return
	}

	if len(res.Movies) == 0 {
		_ = conn.WriteJSON(map[string]any{
			"type":    "recommendations",
			"success": false,
			"message": msgSemRecomendacoes,
		})
		return
	}

	_ = conn.WriteJSON(map[string]any{
		"type":          "recommendations",
		"success":       true,
		"username":      username,
		"genero":        res.Genre,
		"recomendacoes": res.Movies,
		"generatedAt":   time.Now(),
	})
}
