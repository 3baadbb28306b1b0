package router

import (
	"context"
	"net/http"

	"github.com/fairytale-lab/backend/config"
	"github.com/fairytale-lab/backend/pkg/logger"
	"gorm.io/gorm"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before a handler. It can annotate the context; a
// non-nil error stops the request.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after a handler with its final error, nil on success.
type CloserFunc func(ctx context.Context, err error)

type Router struct {
	mux *http.ServeMux

	cfg config.Configs
	log logger.Logger
	db  *gorm.DB

	befores []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, log logger.Logger) *Router {
	return &Router{
		mux: http.NewServeMux(),
		cfg: cfg,
		log: log,
		db:  db,
	}
}

// Branch returns a router registering on the same mux but with its own copy
// of middlewares and closers.
func (r *Router) Branch() *Router {
	return &Router{
		mux:     r.mux,
		cfg:     r.cfg,
		log:     r.log,
		db:      r.db,
		befores: append([]MiddlewareFunc{}, r.befores...),
		closers: append([]CloserFunc{}, r.closers...),
	}
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodPost, handler))
}

func (r *Router) Handler() http.Handler {
	return r.mux
}
