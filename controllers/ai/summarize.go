// Package ai implements the summarization route.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/chandravishaal/AI-Stack-Journal-Backend/controllers/api"
	"github.com/chandravishaal/AI-Stack-Journal-Backend/models/posts"
)

const (
	// minContentLength rejects inputs too short to be worth summarizing,
	// before any outbound call is made.
	minContentLength = 30

	// maxContentLength cuts large articles to keep the prompt bounded.
	maxContentLength = 3800
)

// ContentSource resolves a post identifier to its stored content.
type ContentSource interface {
	GetByIdentifier(ctx context.Context, identifier string) (*posts.Post, error)
}

// Summarizer produces a summary for the given article text.
type Summarizer interface {
	Summarize(ctx context.Context, article string) (string, error)
}

type summarizeRequest struct {
	Content string `json:"content"`
	PostID  string `json:"postId"`
}

// SummarizeBlog handles POST /api/ai/summarize. The body carries either
// inline content or a postId whose stored content is summarized.
func SummarizeBlog(w http.ResponseWriter, r *http.Request, store ContentSource, summarizer Summarizer) {
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	text := req.Content
	if req.PostID != "" {
		post, err := store.GetByIdentifier(r.Context(), req.PostID)
		if errors.Is(err, posts.ErrNotFound) {
			api.Error(w, http.StatusNotFound, "post not found")
			return
		}
		if err != nil {
			log.Printf("failed to load post for summarization: %v", err)
			api.Error(w, http.StatusInternalServerError, "Something went wrong")
			return
		}
		text = post.Content
	}

	if len(text) < minContentLength {
		api.Error(w, http.StatusBadRequest, "no content or too short")
		return
	}
	if len(text) > maxContentLength {
		text = text[:maxContentLength]
	}

	start := time.Now()
	summary, err := summarizer.Summarize(r.Context(), text)
	if err != nil {
		api.Error(w, http.StatusBadGateway, "AI error: "+err.Error())
		return
	}

	api.JSON(w, http.StatusOK, map[string]interface{}{
		"summary":   summary,
		"latencyMs": time.Since(start).Milliseconds(),
	})
}
