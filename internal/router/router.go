// Package router wires every handler into one chi router.
package router

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/ncnews/internal/article"
	"github.com/SergeyParamoshkin/ncnews/internal/comment"
	"github.com/SergeyParamoshkin/ncnews/internal/database"
	"github.com/SergeyParamoshkin/ncnews/internal/errresponse"
	"github.com/SergeyParamoshkin/ncnews/internal/logger"
	"github.com/SergeyParamoshkin/ncnews/internal/topic"
	"github.com/SergeyParamoshkin/ncnews/internal/user"
)

// Store is everything the API reads and writes.
type Store interface {
	topic.Store
	article.Store
	comment.Store
	user.Store
}

// HealthChecker reports database health for /healthz.
type HealthChecker interface {
	Health(ctx context.Context) database.HealthStatus
}

type Options struct {
	// BasePath prefixes the resource routes, e.g. "/api".
	BasePath string
	Logger   *zap.SugaredLogger
	// Middlewares run after request id, logging and recovery, e.g. metrics.
	Middlewares []func(http.Handler) http.Handler
	Health      HealthChecker
}

// New builds the API router.
func New(s Store, opts Options) chi.Router {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}

	var (
		topics   = topic.NewHandler(s)
		articles = article.NewHandler(s)
		comments = comment.NewHandler(s)
		users    = user.NewHandler(s)
	)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(logger.Middleware(opts.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(opts.Middlewares...)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Render(w, r, errresponse.ErrRouteNotFound) //nolint:errcheck
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		render.Render(w, r, errresponse.ErrMethodNotAllowed) //nolint:errcheck
	})

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("pong")); err != nil {
			logger.FromContext(r.Context()).Errorw(err.Error())
		}
	})
	r.Get("/healthz", healthz(opts.Health))

	r.Route(basePath(opts.BasePath), func(r chi.Router) {
		r.Get("/", endpoints(r))

		r.Route("/topics", func(r chi.Router) {
			r.Get("/", topics.ListTopics)
			r.Post("/", topics.CreateTopic)
			r.Get("/{topic}/articles", topics.ListArticles)
			r.Post("/{topic}/articles", topics.CreateArticle)
		})

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", articles.ListArticles)

			r.Route("/{articleID}", func(r chi.Router) {
				r.Use(article.ArticleCtx)
				r.Get("/", articles.GetArticle)
				r.Patch("/", articles.UpdateArticleVotes)
				r.Delete("/", articles.DeleteArticle)

				r.Route("/comments", func(r chi.Router) {
					r.Get("/", comments.ListComments)
					r.Post("/", comments.CreateComment)

					r.Route("/{commentID}", func(r chi.Router) {
						r.Use(comment.CommentCtx)
						r.Patch("/", comments.UpdateCommentVotes)
						r.Delete("/", comments.DeleteComment)
					})
				})
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", users.ListUsers)
			r.Get("/{username}", users.GetUser)
		})
	})

	return r
}

func basePath(p string) string {
	return "/" + strings.Trim(p, "/")
}

func healthz(hc HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if hc == nil {
			render.JSON(w, r, database.HealthStatus{Status: "unknown"})

			return
		}

		status := hc.Health(r.Context())
		if status.Status != "healthy" {
			render.Status(r, http.StatusServiceUnavailable)
		}
		render.JSON(w, r, status)
	}
}

// Endpoint is one entry of the GET / listing.
type Endpoint struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// endpoints lists every route of api, walked on first use so routes
// registered after this handler are included.
func endpoints(api chi.Routes) http.HandlerFunc {
	var (
		once sync.Once
		list []Endpoint
		err  error
	)

	return func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() {
			prefix := strings.TrimSuffix(chi.RouteContext(r.Context()).RoutePattern(), "/")
			seen := map[Endpoint]bool{}
			err = chi.Walk(api, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
				e := Endpoint{Method: method, Path: prefix + strings.TrimSuffix(route, "/")}
				if !seen[e] {
					seen[e] = true
					list = append(list, e)
				}

				return nil
			})
			sort.Slice(list, func(i, j int) bool {
				if list[i].Path != list[j].Path {
					return list[i].Path < list[j].Path
				}

				return list[i].Method < list[j].Method
			})
		})
		if err != nil {
			errresponse.Render(w, r, err)

			return
		}

		render.JSON(w, r, render.M{"endpoints": list})
	}
}
