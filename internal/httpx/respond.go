// Package httpx holds the JSON response helpers shared by all handlers,
// including the single translation point from typed domain failures to
// HTTP status codes.
package httpx

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/okoskela/bloglist-server/internal/apperr"
)

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Error translates a domain failure into a status code and an
// {error: message} body. Unclassified errors become a generic 500;
// their detail is logged, never sent to the caller.
func Error(w http.ResponseWriter, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Kind == apperr.KindUnknown {
		log.Printf("unhandled error: %v", err)
		JSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	JSON(w, statusFor(ae.Kind), map[string]string{"error": ae.Message})
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation, apperr.KindDuplicateKey:
		return http.StatusBadRequest
	case apperr.KindTokenMissing, apperr.KindTokenInvalid, apperr.KindTokenExpired,
		apperr.KindUserNotFound, apperr.KindInvalidCredentials,
		apperr.KindUnauthorized, apperr.KindForbidden:
		return http.StatusUnauthorized
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// UnknownEndpoint is the catch-all handler for unrecognized routes.
func UnknownEndpoint(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusNotFound, map[string]string{"error": "unknown endpoint"})
}
