package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/avicario/photofeed/internal/domain"
	"github.com/avicario/photofeed/internal/service"
)

// FeedHandler serves the assembled feed.
type FeedHandler struct {
	feed *service.FeedService
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(feed *service.FeedService) *FeedHandler {
	return &FeedHandler{feed: feed}
}

// HandleFeed returns the viewer's feed, newest posts first.
// GET /api/feed?limit=20
// Response: {"feed": [...]}
func (h *FeedHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	limit := service.DefaultFeedLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit.")
			return
		}
		limit = parsed
	}

	entries, err := h.feed.BuildFeed(r.Context(), user.ID, limit)
	if err != nil {
		if errors.Is(err, domain.ErrFeedUnavailable) {
			slog.Error("build feed", "error", err)
			writeError(w, http.StatusServiceUnavailable, "Feed is temporarily unavailable.")
			return
		}
		slog.Error("build feed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"feed": toFeedEntryDTOs(entries),
	})
}
