package handler

import (
	"net/http"

	"github.com/avicario/photofeed/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	posts *service.PostService,
	interactions *service.InteractionService,
	feed *service.FeedService,
	cookieSecure bool,
) {
	authHandler := NewAuthHandler(auth, cookieSecure)
	postHandler := NewPostHandler(posts)
	interactionHandler := NewInteractionHandler(interactions)
	feedHandler := NewFeedHandler(feed)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)
	mux.HandleFunc("POST /api/auth/logout", authHandler.HandleLogout)
	mux.Handle("GET /api/auth/me", RequireAuth(auth, http.HandlerFunc(authHandler.HandleMe)))
	mux.Handle("PATCH /api/auth/me", RequireAuth(auth, http.HandlerFunc(authHandler.HandleUpdateMe)))

	mux.Handle("GET /api/feed", RequireAuth(auth, http.HandlerFunc(feedHandler.HandleFeed)))

	mux.Handle("POST /api/posts", RequireAuth(auth, http.HandlerFunc(postHandler.HandleCreate)))
	mux.Handle("GET /api/posts/{id}/image", RequireAuth(auth, http.HandlerFunc(postHandler.HandleServeImage)))

	mux.Handle("POST /api/posts/{id}/like", RequireAuth(auth, http.HandlerFunc(interactionHandler.HandleToggleLike)))
	mux.Handle("POST /api/posts/{id}/comments", RequireAuth(auth, http.HandlerFunc(interactionHandler.HandleAddComment)))
	mux.Handle("GET /api/posts/{id}/comments", RequireAuth(auth, http.HandlerFunc(interactionHandler.HandleListComments)))
}
