package article

import (
	"context"

	"github.com/SergeyParamoshkin/ncnews/internal/model"
	"github.com/SergeyParamoshkin/ncnews/internal/store"
)

// Store is the persistence the article handlers need.
type Store interface {
	ListArticles(ctx context.Context, f store.ArticleFilter) ([]model.Article, error)
	GetArticle(ctx context.Context, id int64) (*model.Article, error)
	IncrementArticleVotes(ctx context.Context, id, inc int64) (*model.Article, error)
	DeleteArticle(ctx context.Context, id int64) error
}
