package dev

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vango-dev/tooltips/internal/config"
	"github.com/vango-dev/tooltips/internal/errors"
	"github.com/vango-dev/tooltips/internal/report"
)

// Routes served besides the page itself.
const (
	AssetsPrefix    = "/assets/"
	DefinitionsPath = "/api/definitions"
	MetricsPath     = "/metrics"
)

// ServerOptions configures the preview server.
type ServerOptions struct {
	// Config is the project configuration.
	Config *config.Config

	// Logger is the structured logger. If nil, slog.Default() is used.
	Logger *slog.Logger

	// Registry collects the server's metrics and is exposed on /metrics.
	// If nil, a fresh registry is used.
	Registry *prometheus.Registry

	// OnReload is called when browsers are reloaded.
	OnReload func(clients int)
}

// Server serves a page with live reload, the wasm assets and a report of
// the page's tooltip definitions.
type Server struct {
	config       *config.Config
	options      ServerOptions
	logger       *slog.Logger
	watcher      *Watcher
	reloadServer *ReloadServer
	changeCh     chan Change
	httpServer   *http.Server
	registry     *prometheus.Registry

	reloads     *prometheus.CounterVec
	definitions *prometheus.GaugeVec

	mu      sync.Mutex
	running bool
}

// NewServer creates a new preview server.
func NewServer(options ServerOptions) *Server {
	cfg := options.Config
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	reg := options.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	s := &Server{
		config:   cfg,
		options:  options,
		logger:   logger,
		registry: reg,
		watcher: NewWatcher(WatcherConfig{
			Paths:    cfg.WatchPaths(),
			Debounce: 100 * time.Millisecond,
			Logger:   logger,
		}),
		reloads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tooltips",
			Subsystem: "dev",
			Name:      "reload_messages_total",
			Help:      "Messages broadcast to connected browsers, by type",
		}, []string{"type"}),
		definitions: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "tooltips",
			Subsystem: "dev",
			Name:      "definitions",
			Help:      "Definition blocks on the served page, by status",
		}, []string{"status"}),
	}
	if cfg.Dev.HotReload {
		s.reloadServer = NewReloadServer()
		s.reloadServer.onBroadcast = func(t ReloadMessageType) {
			s.reloads.WithLabelValues(string(t)).Inc()
		}
	}
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.pageHandler)
	r.Get(DefinitionsPath, s.definitionsHandler)
	r.Handle(MetricsPath, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Handle(AssetsPrefix+"*", http.StripPrefix(AssetsPrefix, http.FileServer(http.Dir(s.config.AssetsPath()))))
	if s.reloadEnabled() {
		r.Get(ReloadPath, s.reloadServer.HandleWebSocket)
	}
	return r
}

// Start serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	if r, err := s.buildReport(); err != nil {
		s.logger.Error("cannot read page", "page", s.config.PagePath(), "error", err)
	} else {
		s.logReport(r)
	}

	s.changeCh = make(chan Change, 64)
	s.watcher.OnChange(func(change Change) {
		select {
		case s.changeCh <- change:
		default:
		}
	})
	go func() {
		if err := s.watcher.Start(ctx); err != nil && err != context.Canceled {
			s.logger.Error("file watcher stopped", "error", err)
		}
	}()
	go s.processChanges(ctx)

	s.httpServer = &http.Server{
		Addr:              s.config.DevAddress(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("preview server running", "url", s.config.DevURL(), "page", s.config.PagePath())

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		return err
	}
}

// Stop stops the preview server.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	s.watcher.Stop()
	if s.reloadServer != nil {
		s.reloadServer.Close()
	}
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

func (s *Server) pageHandler(w http.ResponseWriter, r *http.Request) {
	body, err := os.ReadFile(s.config.PagePath())
	if err != nil {
		s.logger.Error("cannot read page", "page", s.config.PagePath(), "error", err)
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}
	if s.reloadEnabled() {
		body = injectScript(body, ClientScript())
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(body)
}

func (s *Server) definitionsHandler(w http.ResponseWriter, r *http.Request) {
	rep, err := s.buildReport()
	if err != nil {
		status := http.StatusInternalServerError
		if stderrors.Is(err, fs.ErrNotExist) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(rep)
}

// buildReport reads the page and records its definition counts.
func (s *Server) buildReport() (*report.Report, error) {
	data, err := os.ReadFile(s.config.PagePath())
	if err != nil {
		return nil, errors.New("T040").WithSubject(s.config.PagePath()).Wrap(err)
	}
	rep, err := report.Build(bytes.NewReader(data), s.config.TooltipsConfig())
	if err != nil {
		return nil, err
	}

	s.recordDefinitions(rep)
	return rep, nil
}

// recordDefinitions publishes the per-status counts of r. Every status is
// set, so a scrape never sees a partly updated set.
func (s *Server) recordDefinitions(r *report.Report) {
	counts := map[report.Status]int{
		report.StatusOK:         0,
		report.StatusMalformed:  0,
		report.StatusUnresolved: 0,
		report.StatusDuplicate:  0,
	}
	for _, e := range r.Entries {
		counts[e.Status]++
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for status, n := range counts {
		s.definitions.WithLabelValues(string(status)).Set(float64(n))
	}
}

func (s *Server) logReport(r *report.Report) {
	if err := r.Err(); err != nil {
		s.logger.Warn("page has tooltip problems", "code", errors.CodeOf(err), "registered", r.Registered, "blocks", len(r.Entries))
		return
	}
	s.logger.Info("page definitions ok", "registered", r.Registered)
}

// processChanges serializes file change handling and coalesces bursts.
func (s *Server) processChanges(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case change := <-s.changeCh:
			changes := []Change{change}
			draining := true
			for draining {
				select {
				case next := <-s.changeCh:
					changes = append(changes, next)
				default:
					draining = false
				}
			}
			s.handleChanges(changes)
		}
	}
}

// handleChanges re-checks the page when it changed and tells browsers to
// reload. A stylesheet-only batch refreshes stylesheets in place.
func (s *Server) handleChanges(changes []Change) {
	if len(changes) == 0 {
		return
	}

	var hasPage, hasCSS, hasAsset bool
	for _, change := range changes {
		s.logger.Debug("file changed", "path", change.Path, "type", change.Type)
		switch change.Type {
		case ChangePage:
			hasPage = true
		case ChangeCSS:
			hasCSS = true
		case ChangeAsset:
			hasAsset = true
		}
	}

	if hasPage {
		rep, err := s.buildReport()
		switch {
		case err != nil:
			s.logger.Error("cannot read page", "error", err)
			s.notifyError(err.Error())
			return
		case rep.Err() != nil:
			s.logReport(rep)
			s.notifyError(summarize(rep))
		default:
			s.logReport(rep)
			s.clearReloadError()
		}
	}

	if hasPage || hasAsset {
		s.notifyReload()
		return
	}
	if hasCSS && s.reloadEnabled() {
		s.reloadServer.NotifyCSS(changes[0].Path)
	}
}

func (s *Server) reloadEnabled() bool {
	return s.config.Dev.HotReload && s.reloadServer != nil
}

func (s *Server) notifyReload() {
	if !s.reloadEnabled() {
		return
	}
	s.reloadServer.NotifyReload()
	if s.options.OnReload != nil {
		s.options.OnReload(s.reloadServer.ClientCount())
	}
	s.logger.Info("reloaded browsers", "clients", s.reloadServer.ClientCount())
}

func (s *Server) notifyError(msg string) {
	if !s.reloadEnabled() {
		return
	}
	s.reloadServer.NotifyError(msg)
}

func (s *Server) clearReloadError() {
	if !s.reloadEnabled() {
		return
	}
	s.reloadServer.ClearError()
}

// summarize renders a failing report for the browser overlay.
func summarize(r *report.Report) string {
	var b strings.Builder
	if !r.RootFound {
		fmt.Fprintf(&b, "root container #%s is missing\n", r.RootID)
	}
	for _, e := range r.Failed() {
		fmt.Fprintf(&b, "definition %d (%s): %s\n", e.Index, e.ID, e.Error)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// injectScript inserts script before </body>, else before </html>, else
// at the end.
func injectScript(page []byte, script string) []byte {
	s := string(page)
	if idx := strings.LastIndex(s, "</body>"); idx != -1 {
		return []byte(s[:idx] + script + s[idx:])
	}
	if idx := strings.LastIndex(s, "</html>"); idx != -1 {
		return []byte(s[:idx] + script + s[idx:])
	}
	return []byte(s + script)
}
