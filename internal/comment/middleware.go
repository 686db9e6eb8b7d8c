package comment

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/SergeyParamoshkin/ncnews/internal/errresponse"
	"github.com/SergeyParamoshkin/ncnews/internal/store"
)

type ctxKey int8

const ctxKeyCommentID ctxKey = iota

// CommentCtx reads the commentID URL parameter. Ids outside the int4
// range cannot exist and are 404.
func CommentCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "commentID")

		id, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			errresponse.Render(w, r, store.NewNotFoundError("comment", raw))

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyCommentID, id)))
	})
}

func idFromContext(ctx context.Context) int64 {
	return ctx.Value(ctxKeyCommentID).(int64)
}
