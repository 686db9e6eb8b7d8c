package comment

import (
	"context"

	"github.com/SergeyParamoshkin/ncnews/internal/model"
	"github.com/SergeyParamoshkin/ncnews/internal/store"
)

// Store is the persistence the comment handlers need.
type Store interface {
	ListComments(ctx context.Context, f store.CommentFilter) ([]model.Comment, error)
	CreateComment(ctx context.Context, in store.NewComment) (*model.Comment, error)
	IncrementCommentVotes(ctx context.Context, articleID, commentID, inc int64) (*model.Comment, error)
	DeleteComment(ctx context.Context, articleID, commentID int64) error
}
