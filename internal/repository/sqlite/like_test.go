package sqlite_test

import (
	"context"
	"sync"
	"testing"

	"github.com/avicario/photofeed/internal/repository/sqlite"
)

func likeFixture(t *testing.T) (*sqlite.DB, int64, int64) {
	t.Helper()
	db := newTestDB(t)
	user := createTestUser(t, db, "liker", "liker@example.com")
	post := createTestPost(t, db, user.ID, "likeable")
	return db, user.ID, post.ID
}

func TestLikeRepository_Toggle(t *testing.T) {
	db, userID, postID := likeFixture(t)
	ctx := context.Background()

	liked, err := db.Likes().Toggle(ctx, userID, postID)
	if err != nil {
		t.Fatalf("first Toggle: %v", err)
	}
	if !liked {
		t.Fatal("expected first toggle to like")
	}

	count, err := db.Likes().CountByPost(ctx, postID)
	if err != nil {
		t.Fatalf("CountByPost: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 like, got %d", count)
	}

	liked, err = db.Likes().Toggle(ctx, userID, postID)
	if err != nil {
		t.Fatalf("second Toggle: %v", err)
	}
	if liked {
		t.Fatal("expected second toggle to unlike")
	}

	count, err = db.Likes().CountByPost(ctx, postID)
	if err != nil {
		t.Fatalf("CountByPost: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 likes, got %d", count)
	}
}

// A toggle pair returns the like state to where it started.
func TestLikeRepository_TogglePairIsIdentity(t *testing.T) {
	db, userID, postID := likeFixture(t)
	ctx := context.Background()

	before, err := db.Likes().Exists(ctx, userID, postID)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}

	if _, err := db.Likes().Toggle(ctx, userID, postID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if _, err := db.Likes().Toggle(ctx, userID, postID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	after, err := db.Likes().Exists(ctx, userID, postID)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if before != after {
		t.Fatalf("expected like state %v after toggle pair, got %v", before, after)
	}
}

// Concurrent toggles from the same user on the same post must stay
// consistent with the toggle count's parity and must never produce a
// second row for the pair.
func TestLikeRepository_Toggle_ConcurrentSamePair(t *testing.T) {
	for _, n := range []int{8, 9} {
		db, userID, postID := likeFixture(t)
		ctx := context.Background()

		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := db.Likes().Toggle(ctx, userID, postID); err != nil {
					t.Errorf("concurrent Toggle: %v", err)
				}
			}()
		}
		wg.Wait()

		var rows int
		if err := db.SqlDB.QueryRow(
			"SELECT COUNT(*) FROM likes WHERE user_id = ? AND post_id = ?", userID, postID,
		).Scan(&rows); err != nil {
			t.Fatalf("count like rows: %v", err)
		}

		wantRows := n % 2
		if rows != wantRows {
			t.Fatalf("%d toggles: expected %d like rows, got %d", n, wantRows, rows)
		}

		liked, err := db.Likes().Exists(ctx, userID, postID)
		if err != nil {
			t.Fatalf("Exists: %v", err)
		}
		if liked != (wantRows == 1) {
			t.Fatalf("%d toggles: expected liked=%v, got %v", n, wantRows == 1, liked)
		}
	}
}

// Toggles from different users on the same post are independent.
func TestLikeRepository_Toggle_ConcurrentDifferentUsers(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	author := createTestUser(t, db, "author", "author@example.com")
	post := createTestPost(t, db, author.ID, "popular")

	const numUsers = 6
	userIDs := make([]int64, numUsers)
	for i := 0; i < numUsers; i++ {
		u := createTestUser(t, db,
			"fan"+string(rune('a'+i)),
			"fan"+string(rune('a'+i))+"@example.com")
		userIDs[i] = u.ID
	}

	var wg sync.WaitGroup
	for _, id := range userIDs {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			liked, err := db.Likes().Toggle(ctx, userID, post.ID)
			if err != nil {
				t.Errorf("Toggle for user %d: %v", userID, err)
				return
			}
			if !liked {
				t.Errorf("expected user %d's first toggle to like", userID)
			}
		}(id)
	}
	wg.Wait()

	count, err := db.Likes().CountByPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("CountByPost: %v", err)
	}
	if count != numUsers {
		t.Fatalf("expected %d likes, got %d", numUsers, count)
	}
}

func TestLikeRepository_Exists(t *testing.T) {
	db, userID, postID := likeFixture(t)
	ctx := context.Background()

	liked, err := db.Likes().Exists(ctx, userID, postID)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if liked {
		t.Fatal("expected no like before toggle")
	}

	if _, err := db.Likes().Toggle(ctx, userID, postID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	liked, err = db.Likes().Exists(ctx, userID, postID)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !liked {
		t.Fatal("expected like after toggle")
	}
}
