package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/mock"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/service"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

const (
	testTenant = "tenant-7"
	testToken  = "signed-token"
)

type testHandler struct {
	*Handler
	documents *mock.MockDocumentService
	authSvc   *mock.MockAuthService
}

func newTestHandler(t *testing.T) testHandler {
	t.Helper()
	ctrl := gomock.NewController(t)
	documents := mock.NewMockDocumentService(ctrl)
	auth := mock.NewMockAuthService(ctrl)

	h := NewHandler(&service.Services{
		AuthService:     auth,
		DocumentService: documents,
	}, models.NewAppBuildInfo("1.4.0", "2026-10-01", "abc123"), logger.Nop())

	return testHandler{Handler: h, documents: documents, authSvc: auth}
}

// expectToken makes the auth service accept testToken for testTenant.
func (th testHandler) expectToken() {
	th.authSvc.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{TenantID: testTenant}, nil).AnyTimes()
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

func serve(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+testToken)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	h := NewHandler(svc, models.AppBuildInfo{}, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
}

func TestGetServerVersion(t *testing.T) {
	th := newTestHandler(t)

	rec := httptest.NewRecorder()
	th.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"version":"1.4.0","date":"2026-10-01","commit":"abc123"}`, rec.Body.String())
}

func TestPing_NoAuthRequired(t *testing.T) {
	th := newTestHandler(t)

	rec := httptest.NewRecorder()
	th.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrValidationNoOps, http.StatusBadRequest},
		{service.ErrValidationTooManyOps, http.StatusRequestEntityTooLarge},
		{models.ErrIdentityMismatch, http.StatusUnprocessableEntity},
		{service.ErrUnknownKind, http.StatusBadRequest},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
