package model

import "context"

// GraphStore defines the read-only queries backing the graph query engine.
// Implementations never mutate state.
type GraphStore interface {
	// PostsByAuthors returns posts authored by any of the given users,
	// ordered by creation time descending (id descending on ties).
	PostsByAuthors(ctx context.Context, authorIDs []uint, limit, skip int) ([]Post, error)
	// PostsRanked returns all posts joined with their live like-count,
	// ordered by like-count descending (id ascending on ties). Posts with
	// no likes are included with a count of zero.
	PostsRanked(ctx context.Context, limit, skip int) ([]RankedPost, error)
}
