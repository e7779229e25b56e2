package store

import (
	"context"

	"github.com/imageshare/imageshare-server/internal/model"
)

var _ model.GraphStore = (*GraphRepository)(nil)

// GraphRepository serves the read-only queries of the graph query engine.
// It never mutates state.
type GraphRepository struct {
	db *Connection
}

// NewGraphRepository creates a new GraphRepository.
func NewGraphRepository(db *Connection) *GraphRepository {
	return &GraphRepository{db: db}
}

// PostsByAuthors returns posts authored by the given users ordered by
// creation time descending, id descending on ties.
func (r *GraphRepository) PostsByAuthors(ctx context.Context, authorIDs []uint, limit, skip int) ([]model.Post, error) {
	posts := make([]model.Post, 0)
	if len(authorIDs) == 0 || limit == 0 {
		return posts, nil
	}

	err := r.db.DB().WithContext(ctx).
		Where("user_id IN ?", authorIDs).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(skip).
		Find(&posts).Error
	if err != nil {
		return nil, wrapError(err)
	}
	return posts, nil
}

// PostsRanked joins every post with its live like-count and orders by
// count descending, id ascending on ties. The join is inclusive: a post
// nobody liked still appears with a count of zero. Only the latest row
// per (user, post) pair counts towards the total.
func (r *GraphRepository) PostsRanked(ctx context.Context, limit, skip int) ([]model.RankedPost, error) {
	ranked := make([]model.RankedPost, 0)
	if limit == 0 {
		return ranked, nil
	}

	const query = `
		SELECT p.*, COALESCE(lc.cnt, 0) AS like_count
		FROM posts p
		LEFT JOIN (
			SELECT l.post_id AS post_id, COUNT(*) AS cnt
			FROM liked_posts l
			WHERE l.id IN (SELECT MAX(id) FROM liked_posts GROUP BY user_id, post_id)
			  AND l.still_liked = ?
			GROUP BY l.post_id
		) lc ON lc.post_id = p.id
		ORDER BY like_count DESC, p.id ASC
		LIMIT ? OFFSET ?`

	err := r.db.DB().WithContext(ctx).
		Raw(query, true, limit, skip).
		Scan(&ranked).Error
	if err != nil {
		return nil, wrapError(err)
	}
	return ranked, nil
}
