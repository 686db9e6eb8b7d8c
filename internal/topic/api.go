// Package topic serves topics and the articles filed under them.
package topic

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/ncnews/internal/article"
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

func (h *Handler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.store.ListTopics(r.Context())
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	if len(topics) == 0 {
		errresponse.Render(w, r, store.NewNotFoundError("topics", ""))

		return
	}

	if err := render.Render(w, r, &TopicListResponse{Topics: topics}); err != nil {
		errresponse.Render(w, r, err)
	}
}

// CreateTopic stores the posted topic and echoes it back. A missing
// description is echoed as "".
func (h *Handler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	data := &TopicRequest{}
	if err := errresponse.Bind(r, data); err != nil {
		errresponse.Render(w, r, err)

		return
	}

	t, err := h.store.CreateTopic(r.Context(), model.Topic{Slug: *data.Slug, Description: data.description()})
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	render.Status(r, http.StatusCreated)
	if err := render.Render(w, r, &TopicResponse{Topic: t}); err != nil {
		errresponse.Render(w, r, err)
	}
}

// ListArticles returns a page of the topic's articles. An unknown topic
// has no articles and is therefore a 404.
func (h *Handler) ListArticles(w http.ResponseWriter, r *http.Request) {
	opts, err := query.ArticleOptions(r.URL.Query())
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	articles, err := h.store.ListArticles(r.Context(), store.ArticleFilter{
		Topic:      chi.URLParam(r, "topic"),
		ListFilter: store.FilterFromOptions(opts),
	})
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	article.RenderList(w, r, articles)
}

// CreateArticle files a new article under the topic.
func (h *Handler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	data := &ArticleRequest{}
	if err := errresponse.Bind(r, data); err != nil {
		errresponse.Render(w, r, err)

		return
	}

	a, err := h.store.CreateArticle(r.Context(), store.NewArticle{
		Title:  *data.Title,
		Body:   *data.Body,
		Topic:  chi.URLParam(r, "topic"),
		Author: *data.Username,
	})
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	render.Status(r, http.StatusCreated)
	if err := render.Render(w, r, articleresponse.NewArticleResponse(a)); err != nil {
		errresponse.Render(w, r, err)
	}
}
