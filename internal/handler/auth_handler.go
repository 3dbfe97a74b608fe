package handler

import (
	"encoding/json"
	"net/http"

	"cinegraf/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginUser struct {
	Username string `json:"username"`
	UserID   int    `json:"userId"`
}

// @Summary Login / cadastro automático
// @Description Busca el usuario por la tupla (username, password); si no existe lo crea.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "credenciales"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, token, err := h.svc.LoginOrRegister(r.Context(), req.Username, req.Password)
	if err != nil {
		serviceError(w, err, "Erro ao realizar login")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Login realizado com sucesso",
		"token":   token,
		"user":    loginUser{Username: u.Name, UserID: u.UserID},
	})
}
