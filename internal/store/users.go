package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SergeyParamoshkin/ncnews/internal/model"
)

const userColumns = `username, COALESCE(name, ''), COALESCE(avatar_url, '')`

// ListUsers returns every user ordered by username.
func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY username`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", normalize(err))
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", normalize(err))
	}

	return users, nil
}

// GetUser returns the user with the given username.
func (s *Store) GetUser(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	u, err := scanUser(s.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, NewNotFoundError("user", username)
		}
		return nil, fmt.Errorf("failed to get user: %w", normalize(err))
	}

	return u, nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
		return nil, err
	}

	return &u, nil
}
