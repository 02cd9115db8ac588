// Package framework is the dev server's framework integration plugin: it
// serves the built client from a directory with single-page-app fallback and
// proxies /api to the forum API server.
package framework

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/threadboard/internal/adapter"
	"github.com/MKhiriev/threadboard/internal/devconfig"
	"github.com/MKhiriev/threadboard/internal/logger"
	"github.com/MKhiriev/threadboard/internal/utils"
	"github.com/go-chi/chi/v5"
)

// Name is the plugin's registered name.
const Name = "framework-integration"

const probeTimeout = 2 * time.Second

var (
	ErrClientDir = errors.New("framework: client dir is not a directory")
	ErrAPITarget = errors.New("framework: API target must be an absolute http(s) URL")
)

// Options configure the framework integration plugin.
type Options struct {
	// ClientDir holds the built client; index.html is the SPA entry point.
	ClientDir string
	// APITarget is the base URL of the API server, e.g. http://127.0.0.1:8080.
	APITarget string
}

// Plugin serves the client and proxies the API. It implements
// devserver.RouteRegistrar and devserver.Starter.
type Plugin struct {
	clientDir string
	target    *url.URL
	proxy     *httputil.ReverseProxy
	api       adapter.ServerAdapter
	logger    *logger.Logger
}

// Factory validates opts when the configuration is built.
func Factory(opts Options, log *logger.Logger) devconfig.PluginFactory {
	return func() (devconfig.Plugin, error) {
		return New(opts, log)
	}
}

// New checks that opts.ClientDir is a directory and opts.APITarget an
// absolute http(s) URL, then prepares the proxy and the API client.
func New(opts Options, log *logger.Logger) (*Plugin, error) {
	info, err := os.Stat(opts.ClientDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrClientDir, opts.ClientDir)
	}

	target, err := url.Parse(opts.APITarget)
	if err != nil || target.Host == "" || (target.Scheme != "http" && target.Scheme != "https") {
		return nil, fmt.Errorf("%w: %q", ErrAPITarget, opts.APITarget)
	}

	api, err := adapter.NewHTTPServerAdapter(target.String(), probeTimeout, log)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAPITarget, err)
	}

	p := &Plugin{
		clientDir: opts.ClientDir,
		target:    target,
		api:       api,
		logger:    log.Named(Name),
	}
	p.proxy = &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
		},
		ErrorHandler: p.proxyError,
	}

	return p, nil
}

func (p *Plugin) Name() string { return Name }

func (p *Plugin) RegisterRoutes(r chi.Router) error {
	r.Handle("/api", p.proxy)
	r.Handle("/api/*", p.proxy)
	r.Get("/*", p.serveClient)
	r.Head("/*", p.serveClient)
	return nil
}

// Start checks once that the API server answers. An unreachable backend is
// only logged: the client can still be developed against it later.
func (p *Plugin) Start(ctx context.Context) error {
	version, err := p.api.Version(ctx)
	if err != nil {
		p.logger.Warn().Err(err).Str("target", p.target.String()).Msg("API server is not reachable")
		return nil
	}

	p.logger.Info().Str("target", p.target.String()).Str("version", version).Msg("API server is up")
	return nil
}

// serveClient serves files from the client dir. Unknown paths without a file
// extension are client-side routes and get index.html.
func (p *Plugin) serveClient(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)
	file := filepath.Join(p.clientDir, filepath.FromSlash(name))

	if info, err := os.Stat(file); err == nil && !info.IsDir() {
		http.ServeFile(w, r, file)
		return
	}

	if path.Ext(name) != "" && !strings.HasSuffix(name, ".html") {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, filepath.Join(p.clientDir, "index.html"))
}

func (p *Plugin) proxyError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Str("target", p.target.String()).Msg("API proxy failed")
	utils.WriteFailed(w, "API server is unavailable", http.StatusBadGateway)
}
