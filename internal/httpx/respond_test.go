package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okoskela/bloglist-server/internal/apperr"
)

func TestError_KindMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind   apperr.Kind
		status int
	}{
		{apperr.KindValidation, http.StatusBadRequest},
		{apperr.KindDuplicateKey, http.StatusBadRequest},
		{apperr.KindTokenMissing, http.StatusUnauthorized},
		{apperr.KindTokenInvalid, http.StatusUnauthorized},
		{apperr.KindTokenExpired, http.StatusUnauthorized},
		{apperr.KindUserNotFound, http.StatusUnauthorized},
		{apperr.KindInvalidCredentials, http.StatusUnauthorized},
		{apperr.KindUnauthorized, http.StatusUnauthorized},
		{apperr.KindForbidden, http.StatusUnauthorized},
		{apperr.KindNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		Error(w, apperr.New(tt.kind, "boom"))
		assert.Equal(t, tt.status, w.Code, "kind %v", tt.kind)
		assert.JSONEq(t, `{"error":"boom"}`, w.Body.String())
	}
}

func TestError_WrappedCause(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("handler: %w", apperr.Wrap(apperr.KindDuplicateKey, "username must be unique", errors.New("E11000 duplicate key")))
	w := httptest.NewRecorder()
	Error(w, err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"username must be unique"}`, w.Body.String())
}

func TestError_Unclassified(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	Error(w, errors.New("connection reset by peer"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "connection reset", "no internal detail leaked")
}

func TestUnknownEndpoint(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	UnknownEndpoint(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"unknown endpoint"}`, w.Body.String())
}
