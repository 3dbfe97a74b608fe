package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"cinegraf/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// serviceError mapea los centinelas de los servicios a códigos HTTP.
// Los fallos del store se loguean con detalle pero al cliente solo le
// llega el mensaje genérico.
func serviceError(w http.ResponseWriter, err error, genericMsg string) {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("[api] %v", err)
		writeError(w, http.StatusInternalServerError, genericMsg)
	}
}
