package handler

import (
	"strconv"
	"time"

	"github.com/avicario/photofeed/internal/domain"
)

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Bio       string `json:"bio"`
	CreatedAt string `json:"createdAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// CommentDTO is the JSON representation of a comment with its author.
type CommentDTO struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"postId"`
	Username  string `json:"username"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
}

func toCommentDTO(c domain.CommentWithAuthor) CommentDTO {
	return CommentDTO{
		ID:        c.ID,
		PostID:    c.PostID,
		Username:  c.Username,
		Body:      c.Body,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func toCommentDTOs(comments []domain.CommentWithAuthor) []CommentDTO {
	dtos := make([]CommentDTO, len(comments))
	for i, c := range comments {
		dtos[i] = toCommentDTO(c)
	}
	return dtos
}

// FeedEntryDTO is the JSON representation of one feed entry. The image is
// referenced by URL rather than inlined; clients fetch the bytes from
// /api/posts/{id}/image.
type FeedEntryDTO struct {
	ID             int64        `json:"id"`
	Username       string       `json:"username"`
	Caption        string       `json:"caption"`
	ImageURL       string       `json:"imageUrl"`
	LikeCount      int          `json:"likeCount"`
	CommentCount   int          `json:"commentCount"`
	IsLikedByYou   bool         `json:"isLikedByYou"`
	CommentPreview []CommentDTO `json:"commentPreview"`
	CreatedAt      string       `json:"createdAt"`
}

func toFeedEntryDTO(e domain.FeedEntry) FeedEntryDTO {
	return FeedEntryDTO{
		ID:             e.Post.ID,
		Username:       e.Post.Username,
		Caption:        e.Post.Caption,
		ImageURL:       "/api/posts/" + strconv.FormatInt(e.Post.ID, 10) + "/image",
		LikeCount:      e.LikeCount,
		CommentCount:   e.CommentCount,
		IsLikedByYou:   e.IsLikedByYou,
		CommentPreview: toCommentDTOs(e.CommentPreview),
		CreatedAt:      e.Post.CreatedAt.Format(time.RFC3339),
	}
}

func toFeedEntryDTOs(entries []domain.FeedEntry) []FeedEntryDTO {
	dtos := make([]FeedEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = toFeedEntryDTO(e)
	}
	return dtos
}
