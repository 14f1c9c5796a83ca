// Package blogs implements the HTTP handlers for the blog CRUD routes.
package blogs

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chandravishaal/AI-Stack-Journal-Backend/controllers/api"
	"github.com/chandravishaal/AI-Stack-Journal-Backend/models/posts"
)

// PostStore is the repository surface the handlers need.
type PostStore interface {
	Create(ctx context.Context, in posts.CreateInput) (*posts.Post, error)
	List(ctx context.Context, opts posts.ListOptions) ([]posts.Post, error)
	GetByIdentifier(ctx context.Context, identifier string) (*posts.Post, error)
	UpdateByIdentifier(ctx context.Context, identifier string, in posts.UpdateInput) (*posts.Post, error)
	DeleteByIdentifier(ctx context.Context, identifier string) (*posts.Post, error)
}

// CreateBlog handles POST /api/blogs. Slug is optional; clients must not
// send an id.
func CreateBlog(w http.ResponseWriter, r *http.Request, store PostStore) {
	var in posts.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	post, err := store.Create(r.Context(), in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	api.JSON(w, http.StatusCreated, post)
}

// ListBlogs handles GET /api/blogs with sort, page and limit query params.
func ListBlogs(w http.ResponseWriter, r *http.Request, store PostStore) {
	opts := parseListQuery(r)

	list, err := store.List(r.Context(), opts)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, list)
}

// GetBlog handles GET /api/blogs/{identifier}, where the identifier is an
// ObjectId hex string or a slug.
func GetBlog(w http.ResponseWriter, r *http.Request, store PostStore) {
	post, err := store.GetByIdentifier(r.Context(), mux.Vars(r)["identifier"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, post)
}

// UpdateBlog handles PUT /api/blogs/{identifier} with a partial payload.
func UpdateBlog(w http.ResponseWriter, r *http.Request, store PostStore) {
	var in posts.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	post, err := store.UpdateByIdentifier(r.Context(), mux.Vars(r)["identifier"], in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, post)
}

// DeleteBlog handles DELETE /api/blogs/{identifier}.
func DeleteBlog(w http.ResponseWriter, r *http.Request, store PostStore) {
	post, err := store.DeleteByIdentifier(r.Context(), mux.Vars(r)["identifier"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Blog deleted successfully",
		"deleted": post,
	})
}

func parseListQuery(r *http.Request) posts.ListOptions {
	q := r.URL.Query()
	opts := posts.ListOptions{Sort: q.Get("sort")}
	if page, err := strconv.ParseInt(q.Get("page"), 10, 64); err == nil {
		opts.Page = page
	}
	if limit, err := strconv.ParseInt(q.Get("limit"), 10, 64); err == nil {
		opts.Limit = limit
	}
	return opts
}

// writeStoreError maps repository errors onto the HTTP error taxonomy.
func writeStoreError(w http.ResponseWriter, err error) {
	var vErr *posts.ValidationError
	switch {
	case errors.As(err, &vErr):
		api.Error(w, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, posts.ErrNotFound):
		api.Error(w, http.StatusNotFound, "Blog not found")
	case errors.Is(err, posts.ErrSlugTaken):
		api.Error(w, http.StatusConflict, "slug already exists")
	default:
		log.Printf("blog store error: %v", err)
		api.Error(w, http.StatusInternalServerError, "Something went wrong")
	}
}
