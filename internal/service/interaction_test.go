package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/avicario/photofeed/internal/domain"
	"github.com/avicario/photofeed/internal/repository/sqlite"
	"github.com/avicario/photofeed/internal/service"
)

type interactionFixture struct {
	db           *sqlite.DB
	auth         *service.AuthService
	posts        *service.PostService
	interactions *service.InteractionService
}

func newInteractionFixture(t *testing.T) *interactionFixture {
	t.Helper()
	db := newTestDB(t)
	return &interactionFixture{
		db:           db,
		auth:         service.NewAuthService(db.Users(), testJWTSecret, 4),
		posts:        service.NewPostService(db.Posts()),
		interactions: service.NewInteractionService(db.Likes(), db.Comments(), db.Posts()),
	}
}

func (f *interactionFixture) registerUser(t *testing.T, username string) *domain.User {
	t.Helper()
	user, err := f.auth.Register(context.Background(), username, username+"@example.com", "password123")
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return user
}

func (f *interactionFixture) createPost(t *testing.T, userID int64, caption string) *domain.Post {
	t.Helper()
	post, err := f.posts.Create(context.Background(), userID, []byte("img"), caption)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

// The register/upload/like scenario end to end: alice posts, bob's first
// toggle likes (count 1), his second unlikes (count 0).
func TestInteractionService_ToggleLike_Scenario(t *testing.T) {
	f := newInteractionFixture(t)
	ctx := context.Background()

	alice := f.registerUser(t, "alice")
	bob := f.registerUser(t, "bob")
	post := f.createPost(t, alice.ID, "hello")

	liked, count, err := f.interactions.ToggleLike(ctx, bob.ID, post.ID)
	if err != nil {
		t.Fatalf("first ToggleLike: %v", err)
	}
	if !liked || count != 1 {
		t.Fatalf("expected liked=true count=1, got liked=%v count=%d", liked, count)
	}

	liked, count, err = f.interactions.ToggleLike(ctx, bob.ID, post.ID)
	if err != nil {
		t.Fatalf("second ToggleLike: %v", err)
	}
	if liked || count != 0 {
		t.Fatalf("expected liked=false count=0, got liked=%v count=%d", liked, count)
	}
}

func TestInteractionService_ToggleLike_PostNotFound(t *testing.T) {
	f := newInteractionFixture(t)

	bob := f.registerUser(t, "bob")
	_, _, err := f.interactions.ToggleLike(context.Background(), bob.ID, 999999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInteractionService_AddComment(t *testing.T) {
	f := newInteractionFixture(t)
	ctx := context.Background()

	alice := f.registerUser(t, "alice")
	post := f.createPost(t, alice.ID, "caption")

	comment, err := f.interactions.AddComment(ctx, alice.ID, post.ID, "  great light  ")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if comment.Body != "great light" {
		t.Fatalf("expected trimmed body %q, got %q", "great light", comment.Body)
	}
	if comment.ID == 0 {
		t.Fatal("expected comment ID to be set")
	}
}

func TestInteractionService_AddComment_Empty(t *testing.T) {
	f := newInteractionFixture(t)
	ctx := context.Background()

	alice := f.registerUser(t, "alice")
	post := f.createPost(t, alice.ID, "caption")

	for _, body := range []string{"", "   ", "\t\n"} {
		_, err := f.interactions.AddComment(ctx, alice.ID, post.ID, body)
		if !errors.Is(err, domain.ErrEmptyComment) {
			t.Fatalf("body %q: expected ErrEmptyComment, got %v", body, err)
		}
	}
}

func TestInteractionService_AddComment_PostNotFound(t *testing.T) {
	f := newInteractionFixture(t)

	alice := f.registerUser(t, "alice")
	_, err := f.interactions.AddComment(context.Background(), alice.ID, 999999, "orphan")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInteractionService_ListComments_Order(t *testing.T) {
	f := newInteractionFixture(t)
	ctx := context.Background()

	alice := f.registerUser(t, "alice")
	bob := f.registerUser(t, "bob")
	post := f.createPost(t, alice.ID, "caption")

	bodies := []string{"one", "two", "three"}
	authors := []int64{alice.ID, bob.ID, alice.ID}
	for i, body := range bodies {
		if _, err := f.interactions.AddComment(ctx, authors[i], post.ID, body); err != nil {
			t.Fatalf("AddComment %q: %v", body, err)
		}
	}

	comments, err := f.interactions.ListComments(ctx, post.ID, 0)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if len(comments) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(comments))
	}
	for i, body := range bodies {
		if comments[i].Body != body {
			t.Fatalf("position %d: expected %q, got %q", i, body, comments[i].Body)
		}
	}
}

func TestInteractionService_IsLikedBy(t *testing.T) {
	f := newInteractionFixture(t)
	ctx := context.Background()

	alice := f.registerUser(t, "alice")
	bob := f.registerUser(t, "bob")
	post := f.createPost(t, alice.ID, "caption")

	if _, _, err := f.interactions.ToggleLike(ctx, bob.ID, post.ID); err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}

	liked, err := f.interactions.IsLikedBy(ctx, bob.ID, post.ID)
	if err != nil {
		t.Fatalf("IsLikedBy: %v", err)
	}
	if !liked {
		t.Fatal("expected bob to like the post")
	}

	liked, err = f.interactions.IsLikedBy(ctx, alice.ID, post.ID)
	if err != nil {
		t.Fatalf("IsLikedBy: %v", err)
	}
	if liked {
		t.Fatal("expected alice not to like the post")
	}
}
