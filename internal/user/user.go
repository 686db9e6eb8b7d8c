// Package user serves the read-only users collection.
package user

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/ncnews/internal/errresponse"
	"github.com/SergeyParamoshkin/ncnews/internal/model"
	"github.com/SergeyParamoshkin/ncnews/internal/store"
	"github.com/SergeyParamoshkin/ncnews/internal/userpayload"
)

type Store interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, username string) (*model.User, error)
}

type Handler struct {
	store Store
}

func NewHandler(s Store) *Handler {
	return &Handler{store: s}
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	if len(users) == 0 {
		errresponse.Render(w, r, store.NewNotFoundError("users", ""))

		return
	}

	if err := render.Render(w, r, userpayload.NewUserListResponse(users)); err != nil {
		errresponse.Render(w, r, err)
	}
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.store.GetUser(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	if err := render.Render(w, r, userpayload.NewUserResponse(u)); err != nil {
		errresponse.Render(w, r, err)
	}
}
