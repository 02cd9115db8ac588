package livereload

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"
)

const scriptTag = `<script src="` + ScriptPath + `"></script>`

// Wrap injects the live reload script into full HTML pages served by the
// plugins behind it. Only plain 200 text/html answers to GET are rewritten.
func (p *Plugin) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.Header.Get("Upgrade") != "" {
			next.ServeHTTP(w, r)
			return
		}

		iw := &injectWriter{ResponseWriter: w}
		next.ServeHTTP(iw, r)
		if err := iw.finish(); err != nil {
			p.logger.Debug().Err(err).Str("uri", r.RequestURI).Msg("writing page with reload script")
		}
	})
}

// injectWriter buffers HTML bodies until the handler returns. Everything else
// goes straight to the underlying writer.
type injectWriter struct {
	http.ResponseWriter

	status    int
	decided   bool
	buffering bool
	buf       bytes.Buffer
}

func (w *injectWriter) WriteHeader(status int) {
	if w.decided {
		return
	}
	w.decided = true
	w.status = status

	h := w.Header()
	w.buffering = status == http.StatusOK &&
		strings.HasPrefix(h.Get("Content-Type"), "text/html") &&
		h.Get("Content-Encoding") == ""
	if !w.buffering {
		w.ResponseWriter.WriteHeader(status)
	}
}

func (w *injectWriter) Write(b []byte) (int, error) {
	if !w.decided {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", http.DetectContentType(b))
		}
		w.WriteHeader(http.StatusOK)
	}
	if w.buffering {
		return w.buf.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func (w *injectWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *injectWriter) finish() error {
	if !w.buffering {
		return nil
	}

	body := injectScript(w.buf.Bytes())
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.ResponseWriter.WriteHeader(w.status)
	_, err := w.ResponseWriter.Write(body)
	return err
}

// injectScript puts the script tag before the last </body>, or at the end of
// pages without one. Pages that already load the script are left alone.
func injectScript(page []byte) []byte {
	if bytes.Contains(page, []byte(ScriptPath)) {
		return page
	}

	i := bytes.LastIndex(bytes.ToLower(page), []byte("</body>"))
	if i < 0 {
		i = len(page)
	}

	out := make([]byte, 0, len(page)+len(scriptTag))
	out = append(out, page[:i]...)
	out = append(out, scriptTag...)
	return append(out, page[i:]...)
}
