package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	msgInternalError = "error interno del servidor, inténtalo de nuevo"

	// DashboardPath страница, куда фронтенд уводит пользователя при 403/404 в панели
	DashboardPath = "/dashboard"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error      string `json:"error"`
	RedirectTo string `json:"redirectTo,omitempty"`
}

// maxBodyBytes ограничение размера тела запроса
const maxBodyBytes = 1 << 20

// DecodeJSON декодирует тело запроса, неизвестные поля запрещены
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}

	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// PathUUID читает UUID из переменной пути mux
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return uuid.Nil, fmt.Errorf("path variable %s is missing", name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("path variable %s: %w", name, err)
	}
	return id, nil
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет ошибку {"error": message}
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondErrorWithRedirect пишет ошибку с подсказкой для перехода
func RespondErrorWithRedirect(w http.ResponseWriter, status int, message, redirectTo string) {
	RespondJSON(w, status, ErrorResponse{Error: message, RedirectTo: redirectTo})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondForbidden 403 с переходом в панель
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondErrorWithRedirect(w, http.StatusForbidden, message, DashboardPath)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondNotFoundDashboard 404 для ресурсов панели (не найден или не принадлежит пользователю)
func RespondNotFoundDashboard(w http.ResponseWriter, message string) {
	RespondErrorWithRedirect(w, http.StatusNotFound, message, DashboardPath)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondTooManyRequests(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusTooManyRequests, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondNoContent 204 без тела
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
