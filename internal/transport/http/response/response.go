package response

import (
	"encoding/json"
	"errors"
	"net/http"

	zlog "github.com/rs/zerolog/log"

	"github.com/amankhan2005/DecoderHealth/internal/domain"
)

// JSON writes v as a JSON body with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes the plain {"message": …} body used by the public form
// endpoints.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"message": msg})
}

// Err maps a domain error onto a status code and a {"message": …} body.
// Non-AppError details stay in the logs only.
func Err(w http.ResponseWriter, err error) {
	if err == nil {
		Message(w, http.StatusInternalServerError, "internal error")
		return
	}

	var ae *domain.AppError
	if errors.As(err, &ae) {
		Message(w, statusFromCode(ae.Code), ae.Message)
		return
	}

	zlog.Error().Err(err).Msg("unhandled error")
	Message(w, http.StatusInternalServerError, "internal error")
}

func statusFromCode(code domain.ErrCode) int {
	switch code {
	case domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeForbidden:
		return http.StatusForbidden
	case domain.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
