package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/five82/welcome/internal/celebrate"
	"github.com/five82/welcome/internal/manifest"
	"github.com/five82/welcome/internal/page"
	"github.com/five82/welcome/internal/web"
)

const shutdownTimeout = 10 * time.Second

// Options configures a Server.
type Options struct {
	Source manifest.Source
	Logger *zap.Logger
	// Celebrate enables the first-visit confetti cookie gate.
	Celebrate bool
	// Index and Static default to the embedded assets.
	Index  []byte
	Static fs.FS
	Now    func() time.Time
}

// Server renders the welcome page for every request.
type Server struct {
	router    chi.Router
	source    manifest.Source
	logger    *zap.Logger
	celebrate bool
	index     []byte
	now       func() time.Time
}

// New builds the router.
func New(opts Options) *Server {
	s := &Server{
		source:    opts.Source,
		logger:    opts.Logger,
		celebrate: opts.Celebrate,
		index:     opts.Index,
		now:       opts.Now,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.index == nil {
		s.index = web.Index()
	}
	if s.now == nil {
		s.now = time.Now
	}
	static := opts.Static
	if static == nil {
		static = web.Static()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Get("/", s.handlePage)
	r.Get("/index.html", s.handlePage)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	doc, err := page.NewDocument(s.index)
	if err != nil {
		s.logger.Error("parse host page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	ctrl := &page.Controller{Source: s.source, Logger: s.logger.With(zap.String("request_id", middleware.GetReqID(r.Context())))}
	res := ctrl.Load(r.Context(), doc)

	if s.celebrate {
		s.gate(w, r, doc).Run(r.Context())
	}

	body, err := doc.Bytes()
	if err != nil {
		s.logger.Error("render page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Render-State", res.State.String())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// gate plays the celebration by marking the document; the browser applies
// the delay.
func (s *Server) gate(w http.ResponseWriter, r *http.Request, doc *page.Document) *celebrate.Gate {
	var delay time.Duration
	return &celebrate.Gate{
		Store:  celebrate.CookieStore{Request: r, Writer: w, Secure: r.TLS != nil},
		Now:    s.now,
		Logger: s.logger,
		After: func(d time.Duration, f func()) {
			delay = d
			f()
		},
		Effect: func(context.Context, []celebrate.Burst) error {
			doc.EnableCelebration(page.CelebrateNow, delay)
			return nil
		},
	}
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("remote", r.RemoteAddr),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}

// ListenAndServe serves h on addr until ctx is cancelled, then shuts down
// gracefully.
func ListenAndServe(ctx context.Context, addr string, h http.Handler, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
