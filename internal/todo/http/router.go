package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tidylist/tidylist/internal/todo/service"
	"github.com/tidylist/tidylist/internal/todo/store"
	"github.com/tidylist/tidylist/pkg/httpx"
	"github.com/tidylist/tidylist/pkg/jwtx"
	"github.com/tidylist/tidylist/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService *service.AuthService
	TaskService *service.TaskService

	// StaticDir, when set, mounts a built web client at "/".
	StaticDir string

	// CORSOrigin, when set, enables CORS headers for that origin.
	CORSOrigin string
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerTasks()
	r.registerSystem()
	r.registerStatic()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	mws := r.middlewares
	if r.CORSOrigin != "" {
		mws = append([]httpx.Middleware{httpx.CORSMiddleware(r.CORSOrigin)}, mws...)
	}
	httpx.Chain(r.Mux, mws...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	loginHandler := &LoginHandler{AuthService: r.AuthService}

	r.Mux.Handle("POST /api/auth/register", registerHandler)
	r.Mux.Handle("POST /api/auth/login", loginHandler)
}

func (r *Router) registerTasks() {
	h := &TasksHandler{TaskService: r.TaskService}

	secured := func(next http.Handler) http.Handler {
		return httpx.Chain(next, httpx.AuthnMiddleware(r.verifier))
	}

	r.Mux.Handle("GET /api/tasks", secured(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("POST /api/tasks", secured(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("PUT /api/tasks/{id}", secured(http.HandlerFunc(h.HandleSetCompleted)))
	r.Mux.Handle("PUT /api/tasks/{id}/edit", secured(http.HandlerFunc(h.HandleRename)))
	r.Mux.Handle("DELETE /api/tasks/{id}", secured(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys))
	r.Mux.Handle("GET /.well-known/jwks.json", JWKSHandler(r.keys))
}

func (r *Router) registerStatic() {
	if r.StaticDir == "" {
		return
	}
	r.Mux.Handle("/", StaticHandler(r.StaticDir))
}
