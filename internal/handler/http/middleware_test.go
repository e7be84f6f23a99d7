package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/utils"
)

func bufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		tenant   string
		wantLogs []string
	}{
		{
			name:     "ok with tenant",
			status:   http.StatusOK,
			body:     `[]`,
			tenant:   testTenant,
			wantLogs: []string{`"level":"info"`, `"status":200`, `"size":2`, `"tenant":"tenant-7"`, `"method":"GET"`},
		},
		{
			name:     "server error",
			status:   http.StatusInternalServerError,
			body:     `{"error":"boom"}`,
			wantLogs: []string{`"level":"error"`, `"status":500`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := bufferedHandler(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/tenants/x/houses", nil)
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
			if tt.tenant != "" {
				req = req.WithContext(utils.WithTenant(req.Context(), tt.tenant))
			}

			h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			for _, want := range tt.wantLogs {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	n, err := w.Write([]byte("abc"))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, 3, w.size)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := bufferedHandler(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	t.Run("propagates client id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, "trace-123")
		rec := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rec, req)

		assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
		assert.Contains(t, buf.String(), `"trace_id":"trace-123"`)
	})

	t.Run("generates id", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		traceID := rec.Header().Get(traceIDHeader)
		assert.Len(t, traceID, 36)
		assert.Contains(t, buf.String(), traceID)
	})
}

func TestWithGZip_CompressesBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"id":1}]`))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(plain))
}

func TestWithGZip_NoContentStaysEmpty(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestWithGZip_PlainClient(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("plain"))
	})

	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rec.Body.String())
}

func TestWithGZip_InflatesRequest(t *testing.T) {
	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	_, _ = zw.Write([]byte(`{"ops":[]}`))
	require.NoError(t, zw.Close())

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		got = string(raw)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	})

	req := httptest.NewRequest(http.MethodPost, "/", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	withGZip(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, `{"ops":[]}`, got)
}

func TestWithGZip_RejectsCorruptRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.NotFoundHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/ping", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method string
		want   int
	}{
		{http.MethodGet, http.StatusNoContent},
		{http.MethodPost, http.StatusNotFound},
		{http.MethodDelete, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, "/api/ping", nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestCheckHTTPMethod_ParameterisedRoute(t *testing.T) {
	router := chi.NewRouter()
	router.Route("/api/tenants/{tenant}", func(r chi.Router) {
		r.Get("/{kind}/{id}", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tenants/t-1/houses/3", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tenants/t-1/houses/3", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
