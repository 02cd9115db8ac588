package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	r, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer r.Close()
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestGZip_TableTest(t *testing.T) {
	payload := strings.Repeat(`{"title":"hello"}`, 20)

	tests := []struct {
		name           string
		method         string
		acceptEncoding string
		status         int
		wantGzip       bool
	}{
		{name: "client accepts gzip", method: http.MethodGet, acceptEncoding: "gzip, deflate", status: http.StatusOK, wantGzip: true},
		{name: "client does not accept gzip", method: http.MethodGet, status: http.StatusOK},
		{name: "HEAD is left alone", method: http.MethodHead, acceptEncoding: "gzip", status: http.StatusOK},
		{name: "204 is left alone", method: http.MethodGet, acceptEncoding: "gzip", status: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.status != http.StatusNoContent {
					w.Write([]byte(payload))
				}
			})

			req := httptest.NewRequest(tt.method, "/", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()

			withGZip(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.wantGzip {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, payload, gunzip(t, rec.Body.Bytes()))
				assert.Less(t, rec.Body.Len(), len(payload))
			} else {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
			}
		})
	}
}

func TestGZip_DecompressesRequestBody(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(`{"username":"alice"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, r.Body.Close())
		got = string(b)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/account/new", &buf)
	req.Header.Set("Content-Encoding", "gzip")

	withGZip(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, `{"username":"alice"}`, got)
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.NotFoundHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGZip_EmptyResponseWritesNoGzipStream(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	assert.Equal(t, 0, rec.Body.Len())
}

func TestWrappedReadCloser_Close(t *testing.T) {
	called := false
	wrapped := &wrappedReadCloser{Reader: strings.NewReader(""), OnClose: func() { called = true }}

	require.NoError(t, wrapped.Close())
	assert.True(t, called)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("")}).Close())
}
