package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/SergeyParamoshkin/ncnews/internal/model"
)

var commentSortColumns = map[string]string{
	"comment_id": "comment_id",
	"votes":      "votes",
	"created_at": "created_at",
	"author":     "username",
	"body":       "body",
}

const commentColumns = `comment_id, article_id, username, body, votes, created_at`

// CommentFilter selects a page of one article's comments.
type CommentFilter struct {
	ArticleID int64
	ListFilter
}

// ListComments returns a page of comments on an article.
func (s *Store) ListComments(ctx context.Context, f CommentFilter) ([]model.Comment, error) {
	dir := f.direction()
	query := fmt.Sprintf(`
		SELECT %s
		FROM comments
		WHERE article_id = $1
		ORDER BY %s %s, comment_id %s
		LIMIT $2 OFFSET $3`,
		commentColumns, orderExpr(commentSortColumns, f.Sort), dir, dir)

	rows, err := s.db.Query(ctx, query, f.ArticleID, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", normalize(err))
	}
	defer rows.Close()

	comments := make([]model.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", normalize(err))
	}

	return comments, nil
}

// NewComment is the input of CreateComment.
type NewComment struct {
	ArticleID int64
	Author    string
	Body      string
}

// CreateComment inserts a comment. A missing article or author yields a
// *ConstraintError wrapping ErrForeignKey.
func (s *Store) CreateComment(ctx context.Context, in NewComment) (*model.Comment, error) {
	query := `
		INSERT INTO comments (username, article_id, body)
		VALUES ($1, $2, $3)
		RETURNING ` + commentColumns

	c, err := scanComment(s.db.QueryRow(ctx, query, in.Author, in.ArticleID, in.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", normalize(err))
	}

	return c, nil
}

// IncrementCommentVotes adds inc to a comment's votes. The comment must
// belong to articleID.
func (s *Store) IncrementCommentVotes(ctx context.Context, articleID, commentID, inc int64) (*model.Comment, error) {
	query := `
		UPDATE comments SET votes = votes + $1
		WHERE comment_id = $2 AND article_id = $3
		RETURNING ` + commentColumns

	c, err := scanComment(s.db.QueryRow(ctx, query, inc, commentID, articleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, NewNotFoundError("comment", strconv.FormatInt(commentID, 10))
		}
		return nil, fmt.Errorf("failed to update comment votes: %w", normalize(err))
	}

	return c, nil
}

// DeleteComment removes a comment of articleID.
func (s *Store) DeleteComment(ctx context.Context, articleID, commentID int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1 AND article_id = $2`, commentID, articleID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", normalize(err))
	}
	if tag.RowsAffected() == 0 {
		return NewNotFoundError("comment", strconv.FormatInt(commentID, 10))
	}

	return nil
}

func scanComment(row pgx.Row) (*model.Comment, error) {
	var c model.Comment
	if err := row.Scan(&c.ID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt); err != nil {
		return nil, err
	}

	return &c, nil
}
