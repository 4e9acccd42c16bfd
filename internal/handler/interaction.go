package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/avicario/photofeed/internal/domain"
	"github.com/avicario/photofeed/internal/service"
)

// InteractionHandler handles likes and comments.
type InteractionHandler struct {
	interactions *service.InteractionService
}

// NewInteractionHandler creates a new InteractionHandler.
func NewInteractionHandler(interactions *service.InteractionService) *InteractionHandler {
	return &InteractionHandler{interactions: interactions}
}

// HandleToggleLike toggles the viewer's like on a post.
// POST /api/posts/{id}/like
// Response: {"liked": bool, "likeCount": n}
func (h *InteractionHandler) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	postID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post id.")
		return
	}

	liked, count, err := h.interactions.ToggleLike(r.Context(), user.ID, postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found.")
			return
		}
		slog.Error("toggle like", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"liked":     liked,
		"likeCount": count,
	})
}

// HandleAddComment appends a comment to a post.
// POST /api/posts/{id}/comments
// Request:  {"body":"..."}
// Response: {"comment": {...}}
func (h *InteractionHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	postID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post id.")
		return
	}

	var req struct {
		Body string `json:"body"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	comment, err := h.interactions.AddComment(r.Context(), user.ID, postID, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyComment):
			writeError(w, http.StatusUnprocessableEntity, "Comment cannot be empty.")
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Post not found.")
		default:
			slog.Error("add comment", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"comment": toCommentDTO(domain.CommentWithAuthor{
			Comment:  *comment,
			Username: user.Username,
		}),
	})
}

// HandleListComments returns all comments for a post, oldest first.
// GET /api/posts/{id}/comments
// Response: {"comments": [...]}
func (h *InteractionHandler) HandleListComments(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post id.")
		return
	}

	comments, err := h.interactions.ListComments(r.Context(), postID, 0)
	if err != nil {
		slog.Error("list comments", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"comments": toCommentDTOs(comments),
	})
}
