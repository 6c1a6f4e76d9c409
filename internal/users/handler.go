// Package users implements account registration and listing.
package users

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/okoskela/bloglist-server/internal/apperr"
	"github.com/okoskela/bloglist-server/internal/httpx"
	"github.com/okoskela/bloglist-server/internal/models"
)

const minCredentialLength = 3

// Store defines the interface for user persistence.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// BlogLister resolves the blog references of listed users.
type BlogLister interface {
	ListBlogs(ctx context.Context) ([]models.Blog, error)
}

// Handler holds the user HTTP handlers.
type Handler struct {
	users Store
	blogs BlogLister
}

func NewHandler(users Store, blogs BlogLister) *Handler {
	return &Handler{users: users, blogs: blogs}
}

// Create registers a new user. The plaintext password is hashed once
// here and never stored or returned.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperr.New(apperr.KindValidation, "invalid request body"))
		return
	}
	if len(req.Username) < minCredentialLength {
		httpx.Error(w, apperr.New(apperr.KindValidation, "username must be at least 3 characters long"))
		return
	}
	if len(req.Password) < minCredentialLength {
		httpx.Error(w, apperr.New(apperr.KindValidation, "password must be at least 3 characters long"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	user, err := h.users.CreateUser(r.Context(), &models.User{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: string(hash),
	})
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, user)
}

// List returns all users with their owned blogs resolved. The password
// hash never appears in the output.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}
	blogs, err := h.blogs.ListBlogs(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	byID := make(map[primitive.ObjectID]models.BlogSummary, len(blogs))
	for _, b := range blogs {
		byID[b.ID] = models.BlogSummary{ID: b.ID, Title: b.Title, Author: b.Author, URL: b.URL}
	}

	out := make([]models.UserWithBlogs, 0, len(users))
	for _, u := range users {
		owned := make([]models.BlogSummary, 0, len(u.Blogs))
		for _, ref := range u.Blogs {
			if summary, ok := byID[ref]; ok {
				owned = append(owned, summary)
			}
		}
		out = append(out, models.UserWithBlogs{
			ID:       u.ID,
			Username: u.Username,
			Name:     u.Name,
			Blogs:    owned,
		})
	}
	httpx.JSON(w, http.StatusOK, out)
}
