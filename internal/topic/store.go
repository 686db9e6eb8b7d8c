package topic

import (
	"context"

	"github.com/SergeyParamoshkin/ncnews/internal/model"
	"github.com/SergeyParamoshkin/ncnews/internal/store"
)

// Store is the persistence the topic handlers need.
type Store interface {
	ListTopics(ctx context.Context) ([]model.Topic, error)
	CreateTopic(ctx context.Context, t model.Topic) (*model.Topic, error)
	ListArticles(ctx context.Context, f store.ArticleFilter) ([]model.Article, error)
	CreateArticle(ctx context.Context, in store.NewArticle) (*model.Article, error)
}
