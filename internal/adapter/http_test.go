// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/threadboard/internal/logger"
	"github.com/MKhiriev/threadboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) ServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(serverURL, time.Second, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeFailed(w http.ResponseWriter, status int, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.Failed(reason))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{in: "127.0.0.1:8080", want: "http://127.0.0.1:8080"},
		{in: " https://forum.example.com/ ", want: "https://forum.example.com"},
		{in: "", wantErr: errEmptyAddress},
		{in: "http://", wantErr: errNoHost},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		io.WriteString(w, "1.4.0\n")
	}))
	defer srv.Close()

	v, err := newTestAdapter(t, srv.URL).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", v)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.NewAccountRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)
		writeFailed(w, http.StatusConflict, "The username alice is taken.")
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Register(context.Background(),
		models.NewAccountRequest{Username: "alice", Password: "pw", Email: "a@example.com"})

	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "The username alice is taken.")
}

func TestLogin_CookieIsReusedForAuthenticatedCalls(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/account/login", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("password") != "pw" {
			writeFailed(w, http.StatusUnauthorized, "wrong password")
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "sid", Value: "signed", Path: "/"})
		json.NewEncoder(w).Encode(models.Success())
	})
	mux.HandleFunc("POST /api/thread/new", func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("sid")
		if err != nil || c.Value != "signed" {
			writeFailed(w, http.StatusUnauthorized, "session not found")
			return
		}
		require.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Thread{ID: 9, Title: r.PostForm.Get("title"), Body: r.PostForm.Get("body")})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	_, err := a.CreateThread(ctx, "t", "b")
	require.ErrorIs(t, err, ErrUnauthorized)

	require.ErrorIs(t, a.Login(ctx, "a@example.com", "nope"), ErrUnauthorized)
	require.NoError(t, a.Login(ctx, "a@example.com", "pw"))

	thread, err := a.CreateThread(ctx, "t", "b")
	require.NoError(t, err)
	assert.Equal(t, models.Thread{ID: 9, Title: "t", Body: "b"}, thread)
}

func TestListThreads_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "10", r.URL.Query().Get("offset"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.ThreadList{Threads: []models.Thread{{ID: 1}}, Limit: 5, Offset: 10})
	}))
	defer srv.Close()

	list, err := newTestAdapter(t, srv.URL).ListThreads(context.Background(), 5, 10)
	require.NoError(t, err)
	assert.Len(t, list.Threads, 1)
	assert.Equal(t, uint64(5), list.Limit)
}

func TestGetThread_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/thread/42", r.URL.Path)
		writeFailed(w, http.StatusNotFound, "thread not found")
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetThread(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLogout_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "boom")
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Logout(context.Background())
	require.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "boom")
}

func TestMapHTTPError_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Version(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}
