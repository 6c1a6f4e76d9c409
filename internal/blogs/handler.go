package blogs

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/okoskela/bloglist-server/internal/apperr"
	"github.com/okoskela/bloglist-server/internal/auth"
	"github.com/okoskela/bloglist-server/internal/httpx"
	"github.com/okoskela/bloglist-server/internal/models"
)

// BlogStore defines the interface for blog persistence.
type BlogStore interface {
	ListBlogs(ctx context.Context) ([]models.Blog, error)
	InsertBlog(ctx context.Context, blog *models.Blog) (*models.Blog, error)
	GetBlogByID(ctx context.Context, id string) (*models.Blog, error)
	UpdateBlog(ctx context.Context, id string, req models.UpdateBlogRequest) (*models.Blog, error)
	DeleteBlog(ctx context.Context, id string) error
}

// OwnerStore is the slice of the user store needed to resolve owners
// and maintain their blog references.
type OwnerStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	AppendBlog(ctx context.Context, userID, blogID primitive.ObjectID) error
}

// Handler holds the blog HTTP handlers.
type Handler struct {
	blogs BlogStore
	users OwnerStore
}

func NewHandler(blogs BlogStore, users OwnerStore) *Handler {
	return &Handler{blogs: blogs, users: users}
}

// List returns all blogs with their owners resolved to username and
// name. No authentication required.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogs.ListBlogs(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	owners := make(map[primitive.ObjectID]models.BlogOwner, len(users))
	for _, u := range users {
		owners[u.ID] = models.BlogOwner{ID: u.ID, Username: u.Username, Name: u.Name}
	}

	out := make([]models.BlogWithOwner, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, models.BlogWithOwner{
			ID:     b.ID,
			Title:  b.Title,
			Author: b.Author,
			URL:    b.URL,
			Likes:  b.Likes,
			User:   owners[b.User],
		})
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Create persists a new blog owned by the authenticated caller.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		httpx.Error(w, apperr.New(apperr.KindUnauthorized, "token missing or invalid"))
		return
	}

	var req models.CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperr.New(apperr.KindValidation, "invalid request body"))
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.URL) == "" {
		httpx.Error(w, apperr.New(apperr.KindValidation, "title or url missing"))
		return
	}
	likes := 0
	if req.Likes != nil {
		if *req.Likes < 0 {
			httpx.Error(w, apperr.New(apperr.KindValidation, "likes must be non-negative"))
			return
		}
		likes = *req.Likes
	}

	ownerID, err := primitive.ObjectIDFromHex(identity.UserID)
	if err != nil {
		httpx.Error(w, apperr.New(apperr.KindUnauthorized, "token missing or invalid"))
		return
	}

	blog, err := h.blogs.InsertBlog(r.Context(), &models.Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  likes,
		User:   ownerID,
	})
	if err != nil {
		httpx.Error(w, err)
		return
	}

	if err := h.users.AppendBlog(r.Context(), ownerID, blog.ID); err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, blog)
}

// Update applies a partial update by id. No ownership check: likes are
// not security-sensitive, so any caller may update any blog's mutable
// fields. The owner reference itself is never touched.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperr.New(apperr.KindValidation, "invalid request body"))
		return
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		httpx.Error(w, apperr.New(apperr.KindValidation, "title or url missing"))
		return
	}
	if req.URL != nil && strings.TrimSpace(*req.URL) == "" {
		httpx.Error(w, apperr.New(apperr.KindValidation, "title or url missing"))
		return
	}
	if req.Likes != nil && *req.Likes < 0 {
		httpx.Error(w, apperr.New(apperr.KindValidation, "likes must be non-negative"))
		return
	}

	blog, err := h.blogs.UpdateBlog(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	if blog == nil {
		httpx.Error(w, apperr.New(apperr.KindNotFound, "blog not found"))
		return
	}
	httpx.JSON(w, http.StatusOK, blog)
}

// Delete removes a blog. Only the owner may delete; deleting an
// already-absent blog succeeds without complaint.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		httpx.Error(w, apperr.New(apperr.KindUnauthorized, "token missing or invalid"))
		return
	}

	blog, err := h.blogs.GetBlogByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, err)
		return
	}
	if blog == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if blog.User.Hex() != identity.UserID {
		httpx.Error(w, apperr.New(apperr.KindForbidden, "only the creator can delete a blog"))
		return
	}

	if err := h.blogs.DeleteBlog(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Stats returns aggregate figures over the whole blog list.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogs.ListBlogs(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"totalLikes": TotalLikes(blogs),
		"favorite":   FavoriteBlog(blogs),
		"mostBlogs":  MostBlogs(blogs),
		"mostLikes":  MostLikes(blogs),
	})
}
