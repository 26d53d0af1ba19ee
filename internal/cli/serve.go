package cli

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/plotkit/plotkit/pkg/griddiag"
	"github.com/plotkit/plotkit/pkg/griddiag/sink"
)

const diagramExt = ".grid"

// serveCommand creates the serve command for previewing rendered diagrams.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve <dir>",
		Short: "Serve rendered grid diagrams over HTTP",
		Long: `Serve rendered grid diagrams over HTTP.

The serve command watches a directory of diagram files (*.grid) and
renders them to SVG on demand: the index page lists every diagram, and
/{name}.svg renders the current file contents, so edits show up on
reload without restarting.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, args[0], addr, configPath)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "listen address")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML draw config file")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, dir, addr, configPath string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	cfg := griddiag.DefaultDrawConfig()
	if configPath != "" {
		if cfg, err = griddiag.LoadDrawConfig(configPath); err != nil {
			return err
		}
	}

	logger := loggerFromContext(cmd.Context())
	srv := &previewServer{
		dir:    dir,
		cfg:    cfg,
		parser: griddiag.NewParser(logger),
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)
	router.Get("/", srv.index)
	router.Get("/{name}.svg", srv.render)

	logger.Infof("Serving diagrams from %s on %s", dir, addr)
	printNextStep("Open", "http://localhost"+addr+"/")

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-cmd.Context().Done()
		_ = server.Close()
	}()

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// requestLogger logs each request with method, path and duration.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debugf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start).Round(time.Microsecond))
		})
	}
}

// previewServer renders diagram files from one directory on demand.
type previewServer struct {
	dir    string
	cfg    griddiag.DrawConfig
	parser *griddiag.Parser
}

// index lists every diagram file as a link to its rendered SVG.
func (s *previewServer) index(w http.ResponseWriter, r *http.Request) {
	names, err := s.diagramNames()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, "<!DOCTYPE html><html><head><title>plotkit diagrams</title></head><body><h1>Diagrams</h1><ul>")
	for _, name := range names {
		fmt.Fprintf(w, `<li><a href="/%s.svg">%s</a></li>`, name, name)
	}
	fmt.Fprint(w, "</ul></body></html>")
}

// render parses and renders one diagram file as SVG.
func (s *previewServer) render(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name != filepath.Base(name) {
		http.NotFound(w, r)
		return
	}

	grid, err := s.parser.ParseFile(filepath.Join(s.dir, name+diagramExt))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if err := (&sink.SVGExporter{}).Export(grid, s.cfg, w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// diagramNames lists the diagram files in the directory, without
// extension, sorted.
func (s *previewServer) diagramNames() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), diagramExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), diagramExt))
	}
	sort.Strings(names)
	return names, nil
}
