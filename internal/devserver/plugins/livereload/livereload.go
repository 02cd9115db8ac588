// Package livereload is the dev server's live reload plugin. It watches a
// directory tree with fsnotify and tells every connected browser to reload
// over a websocket at /__livereload. HTML pages passing through the dev
// server get a script tag that opens that websocket.
package livereload

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/threadboard/internal/devconfig"
	"github.com/MKhiriev/threadboard/internal/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

const (
	// Name is the plugin's registered name.
	Name = "live-reload"

	SocketPath = "/__livereload"
	ScriptPath = "/__livereload.js"

	DefaultDebounce = 100 * time.Millisecond
)

var ErrWatchDir = errors.New("livereload: watch dir is not a directory")

// Message is sent to browsers after a batch of file changes settles.
type Message struct {
	Type string `json:"type"`
	Path string `json:"path"`
}

// Options configure the live reload plugin.
type Options struct {
	WatchDir string
	// Debounce is how long changes must be quiet before a reload is sent.
	Debounce time.Duration
}

// Plugin watches files and pushes reloads to browsers. It implements
// devserver.Middleware, devserver.RouteRegistrar and devserver.Starter.
type Plugin struct {
	dir      string
	debounce time.Duration

	hub      *hub
	upgrader websocket.Upgrader
	ready    chan struct{}

	logger *logger.Logger
}

// Factory validates opts when the configuration is built.
func Factory(opts Options, log *logger.Logger) devconfig.PluginFactory {
	return func() (devconfig.Plugin, error) {
		return New(opts, log)
	}
}

// New fails with ErrWatchDir unless opts.WatchDir is a directory.
func New(opts Options, log *logger.Logger) (*Plugin, error) {
	info, err := os.Stat(opts.WatchDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrWatchDir, opts.WatchDir)
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Plugin{
		dir:      opts.WatchDir,
		debounce: debounce,
		hub:      newHub(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		ready:  make(chan struct{}),
		logger: log.Named(Name),
	}, nil
}

func (p *Plugin) Name() string { return Name }

func (p *Plugin) RegisterRoutes(r chi.Router) error {
	r.Get(SocketPath, p.serveSocket)
	r.Get(ScriptPath, serveScript)
	return nil
}

// Start watches the directory tree until ctx is done. Directories created
// later are watched too.
func (p *Plugin) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("livereload: create watcher: %w", err)
	}
	defer watcher.Close()
	defer p.hub.closeAll()

	if err = addTree(watcher, p.dir); err != nil {
		return fmt.Errorf("livereload: watch %q: %w", p.dir, err)
	}
	close(p.ready)
	p.logger.Info().Str("dir", p.dir).Msg("watching for changes")

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		changed string
	)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op == fsnotify.Chmod || ignored(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addTree(watcher, event.Name); err != nil {
						p.logger.Warn().Err(err).Str("dir", event.Name).Msg("failed to watch new directory")
					}
				}
			}

			changed = event.Name
			if timer == nil {
				timer = time.NewTimer(p.debounce)
			} else {
				timer.Reset(p.debounce)
			}
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			p.logger.Warn().Err(err).Msg("watcher error")

		case <-fire:
			fire = nil
			p.reload(changed)
		}
	}
}

func (p *Plugin) reload(changed string) {
	rel, err := filepath.Rel(p.dir, changed)
	if err != nil {
		rel = changed
	}

	msg, _ := json.Marshal(Message{Type: "reload", Path: filepath.ToSlash(rel)})
	n := p.hub.broadcast(msg)
	p.logger.Info().Str("path", rel).Int("clients", n).Msg("reload sent")
}

func (p *Plugin) serveSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := p.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("websocket upgrade failed")
		return
	}

	c := p.hub.add(conn)
	c.readPump()
	p.hub.remove(c)
}

func addTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && ignored(path) {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}

// ignored filters editor swap files and hidden entries.
func ignored(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") || strings.HasSuffix(base, ".swp")
}
