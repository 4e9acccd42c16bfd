package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/avicario/photofeed/internal/domain"
	"github.com/avicario/photofeed/internal/service"
)

func TestValidateMediaType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
		wantErr  bool
	}{
		{"photo.png", "image/png", false},
		{"photo.jpg", "image/jpeg", false},
		{"photo.JPEG", "image/jpeg", false},
		{"animation.gif", "image/gif", false},
		{"UPPER.PNG", "image/png", false},
		{"document.pdf", "", true},
		{"script.sh", "", true},
		{"noextension", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			got, err := service.ValidateMediaType(tc.filename)
			if tc.wantErr {
				if !errors.Is(err, domain.ErrInvalidMediaType) {
					t.Fatalf("expected ErrInvalidMediaType, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateMediaType: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected content type %q, got %q", tc.want, got)
			}
		})
	}
}

func TestPostService_Create_And_GetImage(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	auth := service.NewAuthService(db.Users(), testJWTSecret, 4)
	posts := service.NewPostService(db.Posts())

	user, err := auth.Register(ctx, "snapper", "snap@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	imageBytes := []byte{0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00} // GIF89a header
	post, err := posts.Create(ctx, user.ID, imageBytes, "tiny gif")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if post.ID == 0 {
		t.Fatal("expected post ID to be set")
	}

	got, err := posts.GetImage(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetImage: %v", err)
	}
	if !bytes.Equal(got, imageBytes) {
		t.Fatal("expected image bytes to round-trip through base64 storage")
	}
}

func TestPostService_Create_EmptyImage(t *testing.T) {
	db := newTestDB(t)
	posts := service.NewPostService(db.Posts())

	_, err := posts.Create(context.Background(), 1, nil, "no image")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPostService_GetImage_NotFound(t *testing.T) {
	db := newTestDB(t)
	posts := service.NewPostService(db.Posts())

	_, err := posts.GetImage(context.Background(), 404404)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
