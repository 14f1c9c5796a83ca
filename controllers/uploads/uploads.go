// Package uploads implements the image upload route.
package uploads

import (
	"context"
	"io"
	"net/http"

	"github.com/chandravishaal/AI-Stack-Journal-Backend/controllers/api"
)

// maxUploadSize bounds the multipart form held in memory (5 MB).
const maxUploadSize = 5 << 20

// ImageUploader forwards a file to the external image host and returns the
// hosted URL.
type ImageUploader interface {
	UploadImage(ctx context.Context, file io.Reader) (string, error)
}

// UploadImage handles POST /api/upload. It expects a multipart form with an
// "image" file field and responds with the hosted image URL. The URL is
// stored on posts as-is; no format or reachability checks beyond this point.
func UploadImage(w http.ResponseWriter, r *http.Request, up ImageUploader) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		api.Error(w, http.StatusBadRequest, "No image file provided")
		return
	}
	defer file.Close()

	url, err := up.UploadImage(r.Context(), file)
	if err != nil {
		api.Error(w, http.StatusBadGateway, "Upload error: "+err.Error())
		return
	}

	api.JSON(w, http.StatusOK, map[string]string{"imageUrl": url})
}
