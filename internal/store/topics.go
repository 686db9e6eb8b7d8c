package store

import (
	"context"
	"fmt"

	"github.com/SergeyParamoshkin/ncnews/internal/model"
)

// ListTopics returns every topic ordered by slug.
func (s *Store) ListTopics(ctx context.Context) ([]model.Topic, error) {
	query := `
		SELECT slug, COALESCE(description, '')
		FROM topics
		ORDER BY slug`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", normalize(err))
	}
	defer rows.Close()

	topics := make([]model.Topic, 0)
	for rows.Next() {
		var t model.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		topics = append(topics, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating topics: %w", normalize(err))
	}

	return topics, nil
}

// CreateTopic inserts a topic. An empty description is stored as NULL. A
// taken slug yields a *ConstraintError wrapping ErrUnique.
func (s *Store) CreateTopic(ctx context.Context, t model.Topic) (*model.Topic, error) {
	query := `
		INSERT INTO topics (slug, description)
		VALUES ($1, NULLIF($2, ''))
		RETURNING slug, COALESCE(description, '')`

	var created model.Topic
	err := s.db.QueryRow(ctx, query, t.Slug, t.Description).Scan(&created.Slug, &created.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", normalize(err))
	}

	return &created, nil
}
