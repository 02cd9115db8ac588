package devserver

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/MKhiriev/threadboard/internal/devconfig"
	"github.com/MKhiriev/threadboard/internal/devserver/plugins/framework"
	"github.com/MKhiriev/threadboard/internal/devserver/plugins/livereload"
	"github.com/MKhiriev/threadboard/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_FrameworkPagesLoadLiveReloadScript(t *testing.T) {
	clientDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(clientDir, "index.html"), []byte("<html><body>app</body></html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(clientDir, "app.js"), []byte("console.log(1)"), 0o644))

	cfg, err := devconfig.Default(
		framework.Factory(framework.Options{ClientDir: clientDir, APITarget: "http://127.0.0.1:1"}, logger.Nop()),
		livereload.Factory(livereload.Options{WatchDir: clientDir}, logger.Nop()),
	)
	require.NoError(t, err)

	handler, _, err := New(cfg, logger.Nop()).assemble()
	require.NoError(t, err)

	for _, target := range []string{"/", "/thread/42"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.Contains(t, rec.Body.String(), `<script src="`+livereload.ScriptPath+`"></script></body>`, target)
		assert.Equal(t, strconv.Itoa(rec.Body.Len()), rec.Header().Get("Content-Length"), target)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app.js", nil))
	assert.Equal(t, "console.log(1)", rec.Body.String())

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, livereload.ScriptPath, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), livereload.SocketPath)
}
