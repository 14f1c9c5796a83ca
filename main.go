package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"

	"github.com/chandravishaal/AI-Stack-Journal-Backend/config"
	"github.com/chandravishaal/AI-Stack-Journal-Backend/controllers/ai"
	"github.com/chandravishaal/AI-Stack-Journal-Backend/controllers/api"
	"github.com/chandravishaal/AI-Stack-Journal-Backend/controllers/blogs"
	"github.com/chandravishaal/AI-Stack-Journal-Backend/controllers/httpCors"
	"github.com/chandravishaal/AI-Stack-Journal-Backend/controllers/uploads"
	"github.com/chandravishaal/AI-Stack-Journal-Backend/models/posts"
	"github.com/chandravishaal/AI-Stack-Journal-Backend/services"
)

// maxBodySize caps JSON request bodies at 5 MB.
const maxBodySize = 5 << 20

func main() {
	cfg := config.Load()

	db, err := config.ConnectDB(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Database initialization error: %v", err)
	}
	log.Println("Connected to MongoDB")

	repo := posts.NewRepository(db.Collection(config.BlogsCollection))
	imageUploader := services.NewImageUploader(cfg)
	summarizer := services.NewSummarizer(cfg)

	router := mux.NewRouter()
	router.HandleFunc("/", handleHome).Methods(http.MethodGet)

	router.HandleFunc("/api/blogs", func(w http.ResponseWriter, r *http.Request) {
		blogs.CreateBlog(w, r, repo)
	}).Methods(http.MethodPost)
	router.HandleFunc("/api/blogs", func(w http.ResponseWriter, r *http.Request) {
		blogs.ListBlogs(w, r, repo)
	}).Methods(http.MethodGet)
	router.HandleFunc("/api/blogs/{identifier}", func(w http.ResponseWriter, r *http.Request) {
		blogs.GetBlog(w, r, repo)
	}).Methods(http.MethodGet)
	router.HandleFunc("/api/blogs/{identifier}", func(w http.ResponseWriter, r *http.Request) {
		blogs.UpdateBlog(w, r, repo)
	}).Methods(http.MethodPut)
	router.HandleFunc("/api/blogs/{identifier}", func(w http.ResponseWriter, r *http.Request) {
		blogs.DeleteBlog(w, r, repo)
	}).Methods(http.MethodDelete)

	router.HandleFunc("/api/upload", func(w http.ResponseWriter, r *http.Request) {
		uploads.UploadImage(w, r, imageUploader)
	}).Methods(http.MethodPost)
	router.HandleFunc("/api/ai/summarize", func(w http.ResponseWriter, r *http.Request) {
		ai.SummarizeBlog(w, r, repo, summarizer)
	}).Methods(http.MethodPost)

	handler := httpCors.CorsSettings().Handler(withRecovery(withBodyLimit(router)))

	log.Printf("Server running on http://localhost:%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Server startup error: %v", err)
	}
}

func handleHome(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprint(w, "Backend is running!")
}

// withBodyLimit bounds how much of a request body handlers will read.
func withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		next.ServeHTTP(w, r)
	})
}

// withRecovery is the outermost error boundary: panics are logged with a
// stack trace and turned into a generic 500 so internals never leak.
func withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
				api.Error(w, http.StatusInternalServerError, "Something went wrong")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
