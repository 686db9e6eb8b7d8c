package model

import "time"

// Comment is a row of the comments table.
type Comment struct {
	ID        int64     `json:"comment_id"`
	ArticleID int64     `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int64     `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}
