package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/service"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/utils"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "lowercase scheme", header: "bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "missing token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "three parts", header: "Bearer a b", wantErr: ErrInvalidAuthorizationHeader},
		{name: "blank token", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(th testHandler)
		wantStatus int
		wantTenant string
	}{
		{
			name:       "no header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			header:     "Token abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(th testHandler) {
				th.authSvc.EXPECT().ParseToken(gomock.Any(), "expired").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			header:     "Bearer " + testToken,
			setup:      func(th testHandler) { th.expectToken() },
			wantStatus: http.StatusOK,
			wantTenant: testTenant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			if tt.setup != nil {
				tt.setup(th)
			}

			var gotTenant string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotTenant, _ = utils.GetTenantFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/test", nil))
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			th.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantTenant, gotTenant)
			if tt.wantStatus == http.StatusUnauthorized {
				var body utils.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.NotEmpty(t, body.Error)
			}
		})
	}
}

func TestTenantScope(t *testing.T) {
	tests := []struct {
		name       string
		ctxTenant  string
		pathTenant string
		wantStatus int
	}{
		{name: "own tenant", ctxTenant: testTenant, pathTenant: testTenant, wantStatus: http.StatusOK},
		{name: "foreign tenant", ctxTenant: testTenant, pathTenant: "tenant-8", wantStatus: http.StatusForbidden},
		{name: "no tenant in context", pathTenant: testTenant, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)

			router := chi.NewRouter()
			router.With(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					ctx := r.Context()
					if tt.ctxTenant != "" {
						ctx = utils.WithTenant(ctx, tt.ctxTenant)
					}
					next.ServeHTTP(w, injectNopLogger(r.WithContext(ctx)))
				})
			}, th.tenantScope).Get("/api/tenants/{tenant}/houses", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tenants/"+tt.pathTenant+"/houses", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
