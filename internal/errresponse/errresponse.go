// Package errresponse turns handler errors into JSON error bodies. Every
// failure a handler meets is passed to Render, which classifies it once.
package errresponse

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/ncnews/internal/logger"
	"github.com/SergeyParamoshkin/ncnews/internal/query"
	"github.com/SergeyParamoshkin/ncnews/internal/store"
)

// ErrResponse renderer type for handling all sorts of errors.
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	Message string `json:"message"` // user-level message
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)

	return nil
}

// routedParents are foreign key columns whose parent is named in the URL,
// so a missing parent means the route itself does not exist.
var routedParents = map[string]bool{
	"topic": true,
}

var (
	ErrMethodNotAllowed = &ErrResponse{HTTPStatusCode: http.StatusMethodNotAllowed, Message: "method not allowed"}
	ErrRouteNotFound    = &ErrResponse{HTTPStatusCode: http.StatusNotFound, Message: "route not found"}
)

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		Message:        "invalid request body",
	}
}

func ErrInternal(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		Message:        "internal server error",
	}
}

// Classify maps err onto a status and message. Unknown errors become 500.
func Classify(err error) *ErrResponse {
	var (
		nf *store.NotFoundError
		ce *store.ConstraintError
	)

	switch {
	case errors.As(err, &nf):
		return &ErrResponse{Err: err, HTTPStatusCode: http.StatusNotFound, Message: nf.Resource + " not found"}
	case errors.Is(err, store.ErrNotFound):
		return &ErrResponse{Err: err, HTTPStatusCode: http.StatusNotFound, Message: "not found"}
	case errors.As(err, &ce):
		return classifyConstraint(err, ce)
	case errors.Is(err, query.ErrInvalidQueryType):
		return &ErrResponse{Err: err, HTTPStatusCode: http.StatusBadRequest, Message: query.ErrInvalidQueryType.Error()}
	case errors.Is(err, ErrMalformedInput):
		return ErrInvalidRequest(err).(*ErrResponse)
	case errors.Is(err, store.ErrMalformed):
		return &ErrResponse{Err: err, HTTPStatusCode: http.StatusBadRequest, Message: "bad request"}
	}

	return ErrInternal(err).(*ErrResponse)
}

func classifyConstraint(err error, ce *store.ConstraintError) *ErrResponse {
	if errors.Is(ce.Kind, store.ErrUnique) {
		msg := "unprocessable entity"
		if ce.Column != "" {
			msg = fmt.Sprintf("%s already exists", ce.Column)
		}

		return &ErrResponse{Err: err, HTTPStatusCode: http.StatusUnprocessableEntity, Message: msg}
	}

	if ce.Column == "" {
		return &ErrResponse{Err: err, HTTPStatusCode: http.StatusUnprocessableEntity, Message: "unprocessable entity"}
	}

	status := http.StatusUnprocessableEntity
	if routedParents[ce.Column] {
		status = http.StatusNotFound
	}

	return &ErrResponse{Err: err, HTTPStatusCode: status, Message: ce.Column + " does not exist"}
}

// Render classifies err and writes it. Server errors are logged with the
// request logger; their detail never reaches the client.
func Render(w http.ResponseWriter, r *http.Request, err error) {
	resp := Classify(err)
	log := logger.FromContext(r.Context())

	if resp.HTTPStatusCode >= http.StatusInternalServerError {
		log.Errorw("unhandled error", "error", err)
	} else {
		log.Debugw("request failed", "status", resp.HTTPStatusCode, "error", err)
	}

	if rerr := render.Render(w, r, resp); rerr != nil {
		log.Errorw("failed to render error response", "error", rerr)
	}
}

func init() {
	render.Respond = func(w http.ResponseWriter, r *http.Request, v interface{}) {
		if err, ok := v.(error); ok {
			if _, ok := r.Context().Value(render.StatusCtxKey).(int); !ok {
				w.WriteHeader(http.StatusInternalServerError)
			}

			logger.FromContext(r.Context()).Errorw("error value passed to render", "error", err)

			render.DefaultResponder(w, r, render.M{"message": "internal server error"})

			return
		}

		render.DefaultResponder(w, r, v)
	}
}
