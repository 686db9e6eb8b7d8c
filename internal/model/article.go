package model

import "time"

// Article is a row of the articles table. CommentCount is not stored; it is
// counted from comments on every read.
type Article struct {
	ID           int64     `json:"article_id"`
	Title        string    `json:"title"`
	Body         string    `json:"body,omitempty"`
	Topic        string    `json:"topic"`
	Author       string    `json:"author"` // users.username
	Votes        int64     `json:"votes"`
	CreatedAt    time.Time `json:"created_at"`
	CommentCount int64     `json:"comment_count"`
}
