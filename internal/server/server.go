package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/dukerupert/techarena/internal/auth"
	"github.com/dukerupert/techarena/internal/config"
	"github.com/dukerupert/techarena/internal/dashboard"
	"github.com/dukerupert/techarena/internal/handler"
	"github.com/dukerupert/techarena/internal/middleware"
	ws "github.com/dukerupert/techarena/internal/websocket"
)

type Server struct {
	cfg         *config.Config
	svc         *dashboard.Service
	hub         *ws.Hub
	authH       *handler.AuthHandler
	taskH       *handler.TaskHandler
	dashboardH  *handler.DashboardHandler
	userH       *handler.UserHandler
	reportH     *handler.ReportHandler
	rateLimiter *middleware.RateLimiter
	logger      *slog.Logger
}

func New(db *sql.DB, cfg *config.Config, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	svc := dashboard.New(db, hub, dashboard.Options{
		DefaultPassword: cfg.Seed.DefaultPassword,
		SessionTTL:      cfg.Session.TTL,
	}, logger.With("component", "dashboard"))

	handlerLogger := logger.With("component", "handler")
	cookie := handler.CookieConfig{
		Name:   cfg.Session.Cookie,
		Secure: cfg.Session.Secure,
		TTL:    cfg.Session.TTL,
	}

	return &Server{
		cfg:         cfg,
		svc:         svc,
		hub:         hub,
		authH:       handler.NewAuthHandler(svc, cookie, handlerLogger),
		taskH:       handler.NewTaskHandler(svc, handlerLogger),
		dashboardH:  handler.NewDashboardHandler(svc, handlerLogger),
		userH:       handler.NewUserHandler(svc, handlerLogger),
		reportH:     handler.NewReportHandler(svc, handlerLogger),
		rateLimiter: middleware.NewRateLimiter(),
		logger:      logger,
	}
}

// Service returns the dashboard service for background jobs.
func (s *Server) Service() *dashboard.Service {
	return s.svc
}

// RateLimiter returns the login rate limiter for periodic cleanup.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	// Public routes
	outerMux.HandleFunc("POST /login", s.rateLimitedHandler(s.authH.Login))
	outerMux.HandleFunc("GET /health", s.healthHandler)

	protectedMux := http.NewServeMux()
	s.registerProtectedRoutes(protectedMux)

	authMiddleware := middleware.RequireAuth(s.svc, s.cfg.Session.Cookie, s.logger.With("component", "auth"))
	outerMux.Handle("/", authMiddleware(protectedMux))

	var h http.Handler = outerMux
	h = middleware.CORS(s.cfg.CORS.AllowedOrigins)(h)
	return middleware.RequestLogger(s.logger.With("component", "http"))(h)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	rl := middleware.RateLimit(s.rateLimiter, middleware.RealIP, s.cfg.Session.LoginMax, time.Minute)
	return rl(h).ServeHTTP
}

func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	admin := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAdmin(h)
	}

	mux.HandleFunc("POST /logout", s.authH.Logout)
	mux.HandleFunc("GET /api/me", s.authH.Me)

	// Dashboard
	mux.HandleFunc("GET /api/dashboard", s.dashboardH.Get)
	mux.HandleFunc("POST /api/extra-shifts", s.dashboardH.ToggleExtraShift)
	mux.HandleFunc("GET /api/catalog", handler.Catalog)

	// Tasks
	mux.HandleFunc("GET /api/tasks", s.taskH.List)
	mux.HandleFunc("POST /api/tasks", s.taskH.Create)
	mux.HandleFunc("GET /api/tasks/{id}", s.taskH.Get)
	mux.HandleFunc("PUT /api/tasks/{id}", s.taskH.Update)
	mux.HandleFunc("DELETE /api/tasks/{id}", s.taskH.Delete)

	// Reports
	mux.Handle("GET /api/ranking", admin(s.reportH.Ranking))
	mux.Handle("GET /api/compliance", admin(s.reportH.Compliance))
	mux.Handle("GET /api/compliance/export.csv", admin(s.reportH.ExportCSV))
	mux.Handle("GET /api/compliance/export.xlsx", admin(s.reportH.ExportXLSX))

	// User management
	mux.Handle("GET /api/users", admin(s.userH.List))
	mux.Handle("POST /api/users", admin(s.userH.Create))
	mux.Handle("PUT /api/users/{id}", admin(s.userH.Update))
	mux.Handle("DELETE /api/users/{id}", admin(s.userH.Deactivate))

	// WebSocket
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub, originHosts(s.cfg.CORS.AllowedOrigins), viewerOf, s.logger.With("component", "websocket")))
}

func viewerOf(r *http.Request) (ws.Viewer, bool) {
	ac, ok := auth.FromContext(r.Context())
	if !ok {
		return ws.Viewer{}, false
	}
	return ws.Viewer{UserID: ac.User.ID, Admin: ac.User.IsAdmin()}, true
}

// originHosts turns configured origins into the host patterns the
// websocket upgrader matches against.
func originHosts(origins []string) []string {
	hosts := make([]string, 0, len(origins))
	for _, o := range origins {
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			hosts = append(hosts, u.Host)
			continue
		}
		hosts = append(hosts, o)
	}
	return hosts
}
