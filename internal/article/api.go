// Package article serves the /articles collection and single articles.
package article

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/ncnews/internal/articleresponse"
	"github.com/SergeyParamoshkin/ncnews/internal/errresponse"
	"github.com/SergeyParamoshkin/ncnews/internal/model"
	"github.com/SergeyParamoshkin/ncnews/internal/query"
	"github.com/SergeyParamoshkin/ncnews/internal/store"
)

type Handler struct {
	store Store
}

func NewHandler(s Store) *Handler {
	return &Handler{store: s}
}

// ListArticles returns a page of articles across every topic.
func (h *Handler) ListArticles(w http.ResponseWriter, r *http.Request) {
	opts, err := query.ArticleOptions(r.URL.Query())
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	articles, err := h.store.ListArticles(r.Context(), store.ArticleFilter{ListFilter: store.FilterFromOptions(opts)})
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	RenderList(w, r, articles)
}

// GetArticle returns the article with its body and comment count.
func (h *Handler) GetArticle(w http.ResponseWriter, r *http.Request) {
	a, err := h.store.GetArticle(r.Context(), IDFromContext(r.Context()))
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	if err := render.Render(w, r, articleresponse.NewArticleResponse(a)); err != nil {
		errresponse.Render(w, r, err)
	}
}

// UpdateArticleVotes applies inc_votes to the article.
func (h *Handler) UpdateArticleVotes(w http.ResponseWriter, r *http.Request) {
	data := &VoteRequest{}
	if err := errresponse.Bind(r, data); err != nil {
		errresponse.Render(w, r, err)

		return
	}

	a, err := h.store.IncrementArticleVotes(r.Context(), IDFromContext(r.Context()), int64(data.IncVotes))
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	if err := render.Render(w, r, articleresponse.NewArticleResponse(a)); err != nil {
		errresponse.Render(w, r, err)
	}
}

// DeleteArticle removes the article and its comments.
func (h *Handler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteArticle(r.Context(), IDFromContext(r.Context())); err != nil {
		errresponse.Render(w, r, err)

		return
	}

	render.NoContent(w, r)
}

// RenderList writes an `{articles}` envelope. An empty page is a 404.
func RenderList(w http.ResponseWriter, r *http.Request, articles []model.Article) {
	if len(articles) == 0 {
		errresponse.Render(w, r, store.NewNotFoundError("articles", ""))

		return
	}

	if err := render.Render(w, r, articleresponse.NewArticleListResponse(articles)); err != nil {
		errresponse.Render(w, r, err)
	}
}
