package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/okoskela/bloglist-server/internal/apperr"
	"github.com/okoskela/bloglist-server/internal/httpx"
	"github.com/okoskela/bloglist-server/internal/models"
)

// UserFinder is the slice of the user store the login path needs.
type UserFinder interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// Handler holds the login HTTP handler.
type Handler struct {
	users UserFinder
	codec *TokenCodec
}

func NewHandler(users UserFinder, codec *TokenCodec) *Handler {
	return &Handler{users: users, codec: codec}
}

// Login authenticates a (username, password) pair and issues a token.
// Unknown usernames and wrong passwords are indistinguishable to the
// caller.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperr.New(apperr.KindValidation, "invalid request body"))
		return
	}

	user, err := h.users.GetUserByUsername(r.Context(), req.Username)
	if err != nil || user == nil {
		httpx.Error(w, apperr.New(apperr.KindInvalidCredentials, "invalid username or password"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httpx.Error(w, apperr.New(apperr.KindInvalidCredentials, "invalid username or password"))
		return
	}

	token, err := h.codec.Issue(user.ID.Hex(), user.Username)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, models.LoginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	})
}
