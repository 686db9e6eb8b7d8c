package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/SergeyParamoshkin/ncnews/internal/model"
)

// articleSortColumns maps public sort names onto SQL expressions of the
// article listing query.
var articleSortColumns = map[string]string{
	"article_id":    "a.article_id",
	"topic":         "a.topic",
	"title":         "a.title",
	"created_at":    "a.created_at",
	"author":        "a.username",
	"votes":         "a.votes",
	"comment_count": "comment_count",
}

// ArticleFilter narrows an article listing. An empty Topic lists every
// article.
type ArticleFilter struct {
	Topic string
	ListFilter
}

// ListArticles returns a page of articles with their comment counts. Body
// is left empty; listings carry summaries only.
func (s *Store) ListArticles(ctx context.Context, f ArticleFilter) ([]model.Article, error) {
	var (
		where strings.Builder
		args  []any
	)
	if f.Topic != "" {
		args = append(args, f.Topic)
		where.WriteString("WHERE a.topic = $1")
	}
	args = append(args, f.Limit, f.Offset)

	dir := f.direction()
	query := fmt.Sprintf(`
		SELECT a.article_id, a.title, a.topic, a.username, a.votes, a.created_at,
			COUNT(c.comment_id) AS comment_count
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
		%s
		GROUP BY a.article_id
		ORDER BY %s %s, a.article_id %s
		LIMIT $%d OFFSET $%d`,
		where.String(), orderExpr(articleSortColumns, f.Sort), dir, dir, len(args)-1, len(args))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", normalize(err))
	}
	defer rows.Close()

	articles := make([]model.Article, 0)
	for rows.Next() {
		var a model.Article
		err := rows.Scan(&a.ID, &a.Title, &a.Topic, &a.Author, &a.Votes, &a.CreatedAt, &a.CommentCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating articles: %w", normalize(err))
	}

	return articles, nil
}

// GetArticle returns one article with its body and comment count.
func (s *Store) GetArticle(ctx context.Context, id int64) (*model.Article, error) {
	query := `
		SELECT a.article_id, a.title, a.body, a.topic, a.username, a.votes, a.created_at,
			COUNT(c.comment_id) AS comment_count
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
		WHERE a.article_id = $1
		GROUP BY a.article_id`

	a, err := scanArticle(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, NewNotFoundError("article", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to get article: %w", normalize(err))
	}

	return a, nil
}

// NewArticle is the input of CreateArticle.
type NewArticle struct {
	Title  string
	Body   string
	Topic  string
	Author string
}

// CreateArticle inserts an article. An unknown topic or author yields a
// *ConstraintError wrapping ErrForeignKey with Column set to the
// referencing column.
func (s *Store) CreateArticle(ctx context.Context, in NewArticle) (*model.Article, error) {
	query := `
		INSERT INTO articles (title, body, topic, username)
		VALUES ($1, $2, $3, $4)
		RETURNING article_id, title, body, topic, username, votes, created_at, 0::bigint`

	a, err := scanArticle(s.db.QueryRow(ctx, query, in.Title, in.Body, in.Topic, in.Author))
	if err != nil {
		return nil, fmt.Errorf("failed to create article: %w", normalize(err))
	}

	return a, nil
}

// IncrementArticleVotes adds inc to the article's votes and returns the
// updated article in one statement.
func (s *Store) IncrementArticleVotes(ctx context.Context, id, inc int64) (*model.Article, error) {
	query := `
		WITH updated AS (
			UPDATE articles SET votes = votes + $1
			WHERE article_id = $2
			RETURNING article_id, title, body, topic, username, votes, created_at
		)
		SELECT u.article_id, u.title, u.body, u.topic, u.username, u.votes, u.created_at,
			(SELECT COUNT(*) FROM comments c WHERE c.article_id = u.article_id) AS comment_count
		FROM updated u`

	a, err := scanArticle(s.db.QueryRow(ctx, query, inc, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, NewNotFoundError("article", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to update article votes: %w", normalize(err))
	}

	return a, nil
}

// DeleteArticle removes an article. Its comments go with it.
func (s *Store) DeleteArticle(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM articles WHERE article_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", normalize(err))
	}
	if tag.RowsAffected() == 0 {
		return NewNotFoundError("article", strconv.FormatInt(id, 10))
	}

	return nil
}

func scanArticle(row pgx.Row) (*model.Article, error) {
	var a model.Article
	err := row.Scan(&a.ID, &a.Title, &a.Body, &a.Topic, &a.Author, &a.Votes, &a.CreatedAt, &a.CommentCount)
	if err != nil {
		return nil, err
	}

	return &a, nil
}
