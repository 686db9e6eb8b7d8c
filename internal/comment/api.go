// Package comment serves the comments of one article. Every route is
// mounted below article.ArticleCtx.
package comment

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/ncnews/internal/article"
	"github.com/SergeyParamoshkin/ncnews/internal/errresponse"
	"github.com/SergeyParamoshkin/ncnews/internal/query"
	"github.com/SergeyParamoshkin/ncnews/internal/store"
)

type Handler struct {
	store Store
}

func NewHandler(s Store) *Handler {
	return &Handler{store: s}
}

// ListComments returns a page of the article's comments. Unlike article
// listings, an unknown sort_by is rejected.
func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	opts, err := query.CommentOptions(r.URL.Query())
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	comments, err := h.store.ListComments(r.Context(), store.CommentFilter{
		ArticleID:  article.IDFromContext(r.Context()),
		ListFilter: store.FilterFromOptions(opts),
	})
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	if len(comments) == 0 {
		errresponse.Render(w, r, store.NewNotFoundError("comments", ""))

		return
	}

	if err := render.Render(w, r, NewCommentListResponse(comments)); err != nil {
		errresponse.Render(w, r, err)
	}
}

// CreateComment posts a comment on the article.
func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	data := &CommentRequest{}
	if err := errresponse.Bind(r, data); err != nil {
		errresponse.Render(w, r, err)

		return
	}

	c, err := h.store.CreateComment(r.Context(), store.NewComment{
		ArticleID: article.IDFromContext(r.Context()),
		Author:    *data.Username,
		Body:      *data.Body,
	})
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	render.Status(r, http.StatusCreated)
	if err := render.Render(w, r, NewCommentResponse(c)); err != nil {
		errresponse.Render(w, r, err)
	}
}

// UpdateCommentVotes applies inc_votes to a comment of the article.
func (h *Handler) UpdateCommentVotes(w http.ResponseWriter, r *http.Request) {
	data := &article.VoteRequest{}
	if err := errresponse.Bind(r, data); err != nil {
		errresponse.Render(w, r, err)

		return
	}

	ctx := r.Context()
	c, err := h.store.IncrementCommentVotes(ctx, article.IDFromContext(ctx), idFromContext(ctx), int64(data.IncVotes))
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	if err := render.Render(w, r, NewCommentResponse(c)); err != nil {
		errresponse.Render(w, r, err)
	}
}

// DeleteComment removes a comment of the article.
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.store.DeleteComment(ctx, article.IDFromContext(ctx), idFromContext(ctx)); err != nil {
		errresponse.Render(w, r, err)

		return
	}

	render.NoContent(w, r)
}
