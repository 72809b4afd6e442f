package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stele-cms/stele/pkg/dom"
	"github.com/stele-cms/stele/pkg/element"
	"github.com/stele-cms/stele/pkg/manifest"
	"github.com/stele-cms/stele/pkg/middleware"
	"github.com/stele-cms/stele/pkg/render"
)

// Config configures the preview server.
type Config struct {
	// ManifestPath is the element manifest to serve.
	ManifestPath string

	// Addr is the listen address (default: ":8574").
	Addr string

	// Logger receives request and reload logs. Defaults to
	// slog.Default().
	Logger *slog.Logger

	// Pretty enables pretty-printed HTML output.
	Pretty bool
}

// Server renders manifest elements for in-place preview and pushes
// live reloads to connected browsers when the manifest changes.
type Server struct {
	config   Config
	logger   *slog.Logger
	hub      *ReloadHub
	elements *element.Renderer
	html     *render.Renderer

	mu       sync.RWMutex
	manifest *manifest.Manifest
}

// NewServer creates a preview server, loading the manifest eagerly so
// configuration errors surface before serving.
func NewServer(config Config) (*Server, error) {
	if config.Addr == "" {
		config.Addr = ":8574"
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m, err := manifest.Load(config.ManifestPath)
	if err != nil {
		return nil, err
	}

	return &Server{
		config: config,
		logger: logger,
		hub:    NewReloadHub(),
		elements: element.NewRenderer(
			element.WithLogger(logger),
			element.WithPreviewAttributer(element.EditorPreview()),
		),
		html:     render.NewRenderer(render.Config{Pretty: config.Pretty}),
		manifest: m,
	}, nil
}

// Router returns the preview HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Metrics())
	r.Use(middleware.Tracing())

	r.Get("/", s.handleIndex)
	r.Get("/elements/{name}", s.handleElement)
	r.Get("/livereload", s.hub.HandleWebSocket)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Start serves until the context is cancelled, watching the manifest
// for changes and broadcasting reloads.
func (s *Server) Start(ctx context.Context) error {
	watcher := NewWatcher(WatcherConfig{Path: s.config.ManifestPath})
	watcher.OnChange(s.reloadManifest)
	go func() {
		if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Error("manifest watcher stopped", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
		s.hub.Close()
	}()

	s.logger.Info("preview server listening", "addr", s.config.Addr, "manifest", s.config.ManifestPath)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// reloadManifest reloads the manifest after a file change and notifies
// connected browsers. Parse failures are pushed to the error overlay
// and the previous manifest stays active.
func (s *Server) reloadManifest(path string) {
	m, err := manifest.Load(path)
	if err != nil {
		s.logger.Error("manifest reload failed", "path", path, "error", err)
		s.hub.NotifyError(err.Error())
		return
	}

	s.mu.Lock()
	s.manifest = m
	s.mu.Unlock()

	s.logger.Info("manifest reloaded", "path", path, "elements", len(m.Elements))
	s.hub.NotifyReload(path)
}

func (s *Server) currentManifest() *manifest.Manifest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.manifest
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	m := s.currentManifest()

	body := dom.Div(dom.Class("element-index"),
		dom.H1("Elements"),
		dom.Ul(dom.Range(m.Names(), func(name string, _ int) *dom.Node {
			return dom.Li(dom.A(dom.Href("/elements/"+name), name))
		})),
	)

	s.writePage(w, "Elements", body)
}

func (s *Server) handleElement(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	def, ok := s.currentManifest().Definition(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	inst, err := def.NewInstance(nil)
	if err != nil {
		middleware.RecordRender(name, "error")
		s.logger.Error("element instantiation failed", "element", name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	opts := []element.RenderOption{
		element.WithID(inst.DomID()),
		element.WithClass(inst.Name()),
	}
	if def.Tag != "" {
		opts = append(opts, element.WithTag(def.Tag))
	}

	node := s.elements.RenderElement(r.Context(), inst, func(sc *element.Scope) *dom.Node {
		return dom.Fragment(dom.Range(inst.Roles(), func(role string, _ int) *dom.Node {
			return sc.Render(role)
		})...)
	}, opts...)

	middleware.RecordRender(name, "ok")
	s.writePage(w, name, node)
}

// writePage wraps body in the preview page chrome and writes it.
func (s *Server) writePage(w http.ResponseWriter, title string, body *dom.Node) {
	html, err := s.html.ToString(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageShell, title, html, reloadClientScript)
}

const pageShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s | stele preview</title>
</head>
<body>
%s
%s
</body>
</html>
`
