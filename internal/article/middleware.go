package article

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/SergeyParamoshkin/ncnews/internal/errresponse"
	"github.com/SergeyParamoshkin/ncnews/internal/store"
)

type ctxKey int8

const ctxKeyArticleID ctxKey = iota

// ArticleCtx middleware reads the articleID URL parameter and puts it on
// the request context. Ids are int4 in the database; anything that is not
// an integer in that range cannot name an article, so the request stops
// here with a 404.
func ArticleCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "articleID")

		id, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			errresponse.Render(w, r, store.NewNotFoundError("article", raw))

			return
		}

		next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
	})
}

// IDFromContext returns the id stored by ArticleCtx. It panics when the
// handler is not mounted below ArticleCtx; the recoverer turns that into a
// 500.
func IDFromContext(ctx context.Context) int64 {
	return ctx.Value(ctxKeyArticleID).(int64)
}

// WithID stores id the way ArticleCtx does.
func WithID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, ctxKeyArticleID, id)
}
