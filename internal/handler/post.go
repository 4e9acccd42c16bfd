package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/avicario/photofeed/internal/domain"
	"github.com/avicario/photofeed/internal/service"
)

// maxUploadSize caps the multipart form we are willing to parse, not the
// stored image itself; the stores accept whatever the boundary lets through.
const maxUploadSize = 10 << 20 // 10MB

// PostHandler handles photo upload and image serving.
type PostHandler struct {
	posts *service.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// HandleCreate processes a multipart photo upload.
// POST /api/posts
// Form fields: image (file), caption (text)
// Response: {"post": {"id": ..., "imageUrl": ...}}
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "Upload too large or malformed.")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No image file provided.")
		return
	}
	defer file.Close()

	// The extension allow-list is enforced here at the boundary; the post
	// store trusts bytes that reach it.
	if _, err := service.ValidateMediaType(header.Filename); err != nil {
		writeError(w, http.StatusUnsupportedMediaType, "Invalid file type. Please upload an image (PNG, JPG, JPEG, GIF).")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("read upload", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	caption := r.FormValue("caption")

	post, err := h.posts.Create(r.Context(), user.ID, data, caption)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("create post", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"post": map[string]any{
			"id":       post.ID,
			"caption":  post.Caption,
			"imageUrl": "/api/posts/" + strconv.FormatInt(post.ID, 10) + "/image",
		},
	})
}

// HandleServeImage serves the decoded image bytes for a post.
// GET /api/posts/{id}/image
func (h *PostHandler) HandleServeImage(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post id.")
		return
	}

	data, err := h.posts.GetImage(r.Context(), postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found.")
			return
		}
		slog.Error("serve image", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.Header().Set("Cache-Control", "private, max-age=86400")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}
