// Package web is the server-rendered front end. It talks to the API only
// through the RPC client and keeps query results in a querycache.Cache.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sbilibin2017/tweet-board/internal/client"
	"github.com/sbilibin2017/tweet-board/internal/logger"
	"github.com/sbilibin2017/tweet-board/internal/middlewares"
	"github.com/sbilibin2017/tweet-board/internal/querycache"
	"github.com/sbilibin2017/tweet-board/internal/validation"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	procTweetsAll = "tweets.all"
	procTweetsOne = "tweets.one"
)

var allTweetsKey = querycache.NewKey(procTweetsAll, nil)

func oneTweetKey(id string) querycache.Key {
	return querycache.NewKey(procTweetsOne, map[string]string{"id": id})
}

// Config holds the web front settings.
type Config struct {
	ResolveTimeout time.Duration // session lookups slower than this render the loading page
	TokenMaxAge    time.Duration
	CookieSecure   bool
}

// Server renders the pages.
type Server struct {
	api      APIFactory
	cache    *querycache.Cache
	inflight *InFlight
	pages    map[string]*template.Template
	cfg      Config
}

var pageFiles = []string{
	"home.html",
	"login.html",
	"register.html",
	"loading.html",
	"tweets.html",
	"tweet.html",
}

// New parses the templates and returns a Server.
func New(api APIFactory, cache *querycache.Cache, cfg Config) (*Server, error) {
	if cfg.ResolveTimeout <= 0 {
		cfg.ResolveTimeout = 2 * time.Second
	}
	if cfg.TokenMaxAge <= 0 {
		cfg.TokenMaxAge = time.Hour
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, name := range pageFiles {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, err
		}
		pages[name] = tmpl
	}

	return &Server{
		api:      api,
		cache:    cache,
		inflight: NewInFlight(),
		pages:    pages,
		cfg:      cfg,
	}, nil
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string { return t.Format("Jan 2, 2006 15:04") },
}

// Routes returns the web router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware)

	r.Get("/", s.home)
	r.Get("/login", s.loginPage)
	r.Post("/login", s.loginSubmit)
	r.Get("/register", s.registerPage)
	r.Post("/register", s.registerSubmit)
	r.Post("/logout", s.logout)

	r.Get("/tweets", s.tweetsList)
	r.Post("/tweets", s.tweetsCreate)
	r.Get("/tweets/{id}", s.tweetDetail)
	r.Post("/tweets/{id}/delete", s.tweetsDelete)

	r.Handle("/metrics", promhttp.Handler())

	return r
}

type page struct {
	Title   string
	Session SessionState
	Flash   *Flash
	Refresh bool
	Data    any
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, p page) {
	tmpl, ok := s.pages[name]
	if !ok {
		s.internalError(w, r, errors.New("unknown page "+name))
		return
	}
	if p.Flash == nil {
		p.Flash = s.popFlash(w, r)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", p); err != nil {
		s.internalError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Log.Errorw("render failed",
		"request_id", middlewares.RequestIDFromContext(r.Context()),
		"error", err,
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// resolveSession looks up the caller's session within the resolve timeout.
// It returns the token the state was resolved from.
func (s *Server) resolveSession(w http.ResponseWriter, r *http.Request) (SessionState, string) {
	token := tokenFromRequest(r)
	if token == "" {
		return SessionState{Status: SessionAnonymous}, ""
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.ResolveTimeout)
	defer cancel()

	session, err := s.api(token).Session(ctx)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return SessionState{Status: SessionPending}, token
	case client.IsUnauthorized(err):
		s.clearToken(w)
		return SessionState{Status: SessionAnonymous}, ""
	case err != nil:
		logger.Log.Warnw("session lookup failed",
			"request_id", middlewares.RequestIDFromContext(r.Context()),
			"error", err,
		)
		if sessionUnavailable(err) {
			return SessionState{Status: SessionPending}, token
		}
		return SessionState{Status: SessionAnonymous}, ""
	case session == nil:
		s.clearToken(w)
		return SessionState{Status: SessionAnonymous}, ""
	}
	user := session.User
	return SessionState{Status: SessionAuthenticated, User: &user}, token
}

// sessionUnavailable reports whether a failed session lookup says nothing about
// the token itself because the API is throttling or unavailable.
func sessionUnavailable(err error) bool {
	rpcErr, ok := client.AsRPCError(err)
	if !ok || rpcErr.Status == 0 {
		return true
	}
	return rpcErr.Status == http.StatusTooManyRequests || rpcErr.Status >= http.StatusInternalServerError
}

// guard applies d and reports whether the handler should continue.
func (s *Server) guard(w http.ResponseWriter, r *http.Request, d GuardDecision, state SessionState) bool {
	switch d.Kind {
	case GuardLoading:
		s.render(w, r, http.StatusOK, "loading.html", page{Title: "Loading", Session: state, Refresh: true})
		return false
	case GuardRedirect:
		http.Redirect(w, r, d.To, http.StatusSeeOther)
		return false
	}
	return true
}

// reauth drops a token the API no longer accepts and sends the user to log in.
func (s *Server) reauth(w http.ResponseWriter, r *http.Request) {
	s.clearToken(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// statusFor maps an API failure to the status of the rendered page.
func statusFor(err error) int {
	if rpcErr, ok := client.AsRPCError(err); ok && rpcErr.Status >= 400 && rpcErr.Status < 500 {
		return rpcErr.Status
	}
	return http.StatusBadGateway
}

func fieldErrors(err error) map[string]string {
	verr, ok := validation.AsValidationError(err)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(verr.Violations))
	for _, v := range verr.Violations {
		if _, seen := out[v.Field]; !seen {
			out[v.Field] = v.Message
		}
	}
	return out
}
