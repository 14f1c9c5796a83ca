package ai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chandravishaal/AI-Stack-Journal-Backend/models/posts"
)

type fakeSummarizer struct {
	calls   int
	gotText string
	summary string
	err     error
}

func (f *fakeSummarizer) Summarize(_ context.Context, article string) (string, error) {
	f.calls++
	f.gotText = article
	return f.summary, f.err
}

type fakeSource struct {
	post *posts.Post
	err  error
}

func (f *fakeSource) GetByIdentifier(context.Context, string) (*posts.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.post, nil
}

func serve(body string, source ContentSource, summarizer Summarizer) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/summarize", strings.NewReader(body))
	SummarizeBlog(rec, req, source, summarizer)
	return rec
}

func TestSummarizeRejectsShortContent(t *testing.T) {
	summarizer := &fakeSummarizer{}
	rec := serve(`{"content":"too short"}`, &fakeSource{}, summarizer)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
	if summarizer.calls != 0 {
		t.Errorf("outbound call made for short content")
	}
}

func TestSummarizeInlineContent(t *testing.T) {
	summarizer := &fakeSummarizer{summary: "TL;DR: a summary"}
	content := strings.Repeat("All work and no play makes a dull post. ", 3)
	rec := serve(`{"content":"`+content+`"}`, &fakeSource{}, summarizer)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "TL;DR: a summary") {
		t.Errorf("summary not relayed: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "latencyMs") {
		t.Errorf("latency missing: %s", rec.Body.String())
	}
}

func TestSummarizeByPostID(t *testing.T) {
	post := &posts.Post{Content: strings.Repeat("stored article content. ", 5)}
	summarizer := &fakeSummarizer{summary: "ok"}
	rec := serve(`{"postId":"64b0c8f2a1d3e4f5a6b7c8d9"}`, &fakeSource{post: post}, summarizer)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	if summarizer.gotText != post.Content {
		t.Errorf("summarizer got %q, want the stored content", summarizer.gotText)
	}
}

func TestSummarizeUnknownPost(t *testing.T) {
	summarizer := &fakeSummarizer{}
	rec := serve(`{"postId":"64b0c8f2a1d3e4f5a6b7c8d9"}`, &fakeSource{err: posts.ErrNotFound}, summarizer)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", rec.Code)
	}
	if summarizer.calls != 0 {
		t.Errorf("outbound call made for a missing post")
	}
}

func TestSummarizeTruncatesLongContent(t *testing.T) {
	summarizer := &fakeSummarizer{summary: "ok"}
	rec := serve(`{"content":"`+strings.Repeat("a", 5000)+`"}`, &fakeSource{}, summarizer)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	if len(summarizer.gotText) != maxContentLength {
		t.Errorf("summarizer got %d chars, want %d", len(summarizer.gotText), maxContentLength)
	}
}

func TestSummarizeUpstreamFailure(t *testing.T) {
	summarizer := &fakeSummarizer{err: errors.New("quota exceeded")}
	rec := serve(`{"content":"`+strings.Repeat("a", 100)+`"}`, &fakeSource{}, summarizer)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("got status %d, want 502", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "quota exceeded") {
		t.Errorf("upstream detail not attached: %s", rec.Body.String())
	}
}
