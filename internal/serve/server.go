// Package serve is the HTTP front of the gallery: server-rendered pages, the
// JSON API, the contributors fragment and the dev reload stream.
package serve

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"promptgallery/internal/app"
	"promptgallery/internal/contributors"
	"promptgallery/internal/domain/build"
	"promptgallery/internal/domain/config"
	"promptgallery/internal/index"
	"promptgallery/internal/ingest"
	"promptgallery/internal/render"
)

type Server struct {
	cfg    config.Config
	logger *zap.Logger

	idx     *index.Store
	loader  *ingest.Loader
	tpl     render.Renderer
	present *render.Presenter
	static  fs.FS
	routes  *app.RouteBuilder

	contrib         *contributors.Cache
	contributorsURL string

	themeHash  string
	configHash string

	mu   sync.RWMutex
	snap snapshot

	sseMu     sync.Mutex
	sseConns  map[chan string]struct{}
	watcher   *fsnotify.Watcher
	watchOnce sync.Once
}

func New(cfg config.Config, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	theme, onDisk, err := render.ThemeFS(cfg.Build.ThemeDir, cfg.Site.Theme)
	if err != nil {
		return nil, fmt.Errorf("serve: failed to resolve theme: %w", err)
	}
	tpl, err := render.NewTemplateRenderer(theme)
	if err != nil {
		return nil, fmt.Errorf("serve: failed to create template renderer: %w", err)
	}
	static, err := render.StaticFS(theme)
	if err != nil {
		return nil, fmt.Errorf("serve: failed to open theme static files: %w", err)
	}
	themeHash, err := build.HashFS(theme)
	if err != nil {
		return nil, fmt.Errorf("serve: failed to hash theme: %w", err)
	}
	configHash, err := build.HashValue(cfg)
	if err != nil {
		return nil, fmt.Errorf("serve: failed to hash config: %w", err)
	}

	st, err := index.Open(index.OpenOptions{Path: cfg.Build.IndexPath})
	if err != nil {
		return nil, fmt.Errorf("serve: failed to open index: %w", err)
	}

	present := render.NewPresenter(cfg)
	present.DevReload = cfg.Server.Watch

	s := &Server{
		cfg:        cfg,
		logger:     logger.Named("serve"),
		idx:        st,
		loader:     ingest.NewLoader(cfg.Build.SourceDir, cfg.Gallery.DefaultLanguage, logger),
		tpl:        tpl,
		present:    present,
		static:     static,
		routes:     &app.RouteBuilder{Index: st},
		themeHash:  themeHash,
		configHash: configHash,
		sseConns:   make(map[chan string]struct{}),
	}
	if cfg.Contributors.Enabled {
		client := contributors.NewClient(contributors.Options{
			APIURL:      cfg.Contributors.APIURL,
			Repo:        cfg.Contributors.Repo,
			Timeout:     cfg.Contributors.Timeout,
			Concurrency: cfg.Contributors.Concurrency,
		}, logger)
		s.contrib = contributors.NewCache(client, cfg.Contributors.TTL)
		s.contributorsURL = "https://github.com/" + strings.Trim(cfg.Contributors.Repo, "/") + "/graphs/contributors"
	}

	themeSource := "embedded"
	if onDisk {
		themeSource = cfg.Build.ThemeDir + "/" + cfg.Site.Theme
	}
	s.logger.Debug("theme loaded", zap.String("source", themeSource))
	s.logger.Debug("index opened", zap.String("path", st.Path()))
	return s, nil
}

func (s *Server) Close() error {
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
	if s.idx != nil {
		return s.idx.Close()
	}
	return nil
}

// Handler builds the router. Call Reload first so there is something to
// serve.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleHome)
	r.Get("/prompts/{slug}", s.handlePrompt)
	r.Get("/tags", s.handleTags)
	r.Get("/categories", s.handleCategories)
	r.Get("/fragments/contributors", s.handleContributors)
	r.Get("/sitemap.xml", s.handleSitemap)

	r.Route("/api", func(r chi.Router) {
		r.Get("/prompts", s.handleAPIList)
		r.Get("/prompts/{slug}", s.handleAPIPrompt)
	})

	if s.cfg.Server.Watch {
		r.Get("/dev/events", s.handleSSE)
	}

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(s.static))))
	r.NotFound(s.handleNotFound)
	return r
}

func (s *Server) ListenAndServe(ctx context.Context) error {
	if err := s.Reload(ctx); err != nil {
		return err
	}

	if s.cfg.Server.Watch {
		if err := s.startWatch(ctx); err != nil {
			s.logger.Warn("file watching disabled", zap.Error(err))
		}
	}

	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       s.cfg.Server.ReadTimeout,
	}
	// The SSE stream stays open, so the write timeout only applies without
	// watching.
	if !s.cfg.Server.Watch {
		srv.WriteTimeout = s.cfg.Server.WriteTimeout
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("listening", zap.String("addr", s.cfg.Server.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
