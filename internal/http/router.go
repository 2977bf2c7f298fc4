package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/Vipul160305/placetrack/internal/domain/account"
	"github.com/Vipul160305/placetrack/internal/http/handlers"
	"github.com/Vipul160305/placetrack/internal/http/metrics"
	httpmw "github.com/Vipul160305/placetrack/internal/http/middleware"
)

type RouterDependencies struct {
	AuthHandler        *handlers.AuthHandler
	AccountHandler     *handlers.AccountHandler
	ListingHandler     *handlers.ListingHandler
	ApplicationHandler *handlers.ApplicationHandler
	AnalyticsHandler   *handlers.AnalyticsHandler
	MetricsHandler     *handlers.MetricsHandler
	AuthMiddleware     *httpmw.AuthMiddleware
	Metrics            *metrics.Collector
	UploadDir          string
	RequestTimeout     time.Duration
}

type Router struct {
	deps    RouterDependencies
	uploads http.Handler
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{
		deps:    deps,
		uploads: http.StripPrefix("/uploads/", http.FileServer(http.Dir(deps.UploadDir))),
	}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(), httpmw.RequestID, httpmw.Logging, httpmw.BodyLimit(maxBodyBytes), httpmw.Recover, httpmw.Metrics(r.deps.Metrics), httpmw.Timeout(r.deps.RequestTimeout))
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.Get(w, req)
			return
		case req.Method == http.MethodPost && path == "/api/auth/register":
			r.deps.AuthHandler.Register(w, req)
			return
		case req.Method == http.MethodPost && path == "/api/auth/login":
			r.deps.AuthHandler.Login(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/uploads/"):
			r.uploads.ServeHTTP(w, req)
			return
		}

		if strings.HasPrefix(path, "/api/users") || strings.HasPrefix(path, "/api/listings") || strings.HasPrefix(path, "/api/applications") || strings.HasPrefix(path, "/api/analytics") {
			protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	switch {
	case req.Method == http.MethodGet && path == "/api/users/me":
		r.deps.AccountHandler.Me(w, req)
		return
	case req.Method == http.MethodPut && path == "/api/users/me":
		r.deps.AccountHandler.UpdateMe(w, req)
		return
	case req.Method == http.MethodPost && path == "/api/users/me/resume":
		httpmw.RequireRole(account.RoleStudent)(http.HandlerFunc(r.deps.AccountHandler.UploadResume)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/users":
		httpmw.RequireRole(account.RoleOfficer, account.RoleAdmin)(http.HandlerFunc(r.deps.AccountHandler.List)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/api/users/"):
		httpmw.RequireRole(account.RoleOfficer, account.RoleAdmin)(http.HandlerFunc(r.deps.AccountHandler.Get)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/api/users/"):
		httpmw.RequireRole(account.RoleAdmin)(http.HandlerFunc(r.deps.AccountHandler.Delete)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/api/listings":
		httpmw.RequireRole(account.RoleOfficer, account.RoleAdmin)(http.HandlerFunc(r.deps.ListingHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/listings":
		r.deps.ListingHandler.List(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/api/listings/") && strings.HasSuffix(path, "/eligible-students"):
		httpmw.RequireRole(account.RoleOfficer, account.RoleAdmin)(http.HandlerFunc(r.deps.ListingHandler.EligibleStudents)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/api/listings/"):
		r.deps.ListingHandler.Get(w, req)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/api/listings/"):
		httpmw.RequireRole(account.RoleOfficer, account.RoleAdmin)(http.HandlerFunc(r.deps.ListingHandler.Update)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/api/listings/"):
		httpmw.RequireRole(account.RoleOfficer, account.RoleAdmin)(http.HandlerFunc(r.deps.ListingHandler.Delete)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/api/applications":
		httpmw.RequireRole(account.RoleStudent)(http.HandlerFunc(r.deps.ApplicationHandler.Apply)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/applications/me":
		httpmw.RequireRole(account.RoleStudent)(http.HandlerFunc(r.deps.ApplicationHandler.ListMine)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/applications":
		httpmw.RequireRole(account.RoleOfficer, account.RoleAdmin)(http.HandlerFunc(r.deps.ApplicationHandler.ListAll)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/api/applications/listing/"):
		httpmw.RequireRole(account.RoleOfficer, account.RoleAdmin)(http.HandlerFunc(r.deps.ApplicationHandler.ListByListing)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/api/applications/"):
		httpmw.RequireRole(account.RoleOfficer, account.RoleAdmin)(http.HandlerFunc(r.deps.ApplicationHandler.UpdateStatus)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/analytics":
		httpmw.RequireRole(account.RoleOfficer, account.RoleAdmin)(http.HandlerFunc(r.deps.AnalyticsHandler.Get)).ServeHTTP(w, req)
		return
	}

	http.NotFound(w, req)
}
