package domain

// FeedEntry is one post in the assembled feed: the post plus its author
// and the interaction metadata re-derived at read time.
type FeedEntry struct {
	Post           PostWithAuthor
	LikeCount      int
	CommentCount   int
	IsLikedByYou   bool
	CommentPreview []CommentWithAuthor
}
