package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-rest-kit/internal/config"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/mock"
	"github.com/MKhiriev/go-rest-kit/internal/service"
	"github.com/MKhiriev/go-rest-kit/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testServices bundles the service mocks behind a Handler.
type testServices struct {
	auth     *mock.MockAuthService
	articles *mock.MockArticleService
	appInfo  *mock.MockAppInfoService
}

// newTestHandler builds a Handler over mocked services and the default
// configuration. mutate may adjust the configuration first.
func newTestHandler(t *testing.T, mutate ...func(*config.StructuredConfig)) (*Handler, *testServices) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := &testServices{
		auth:     mock.NewMockAuthService(ctrl),
		articles: mock.NewMockArticleService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	cfg := config.Defaults()
	for _, fn := range mutate {
		fn(cfg)
	}

	services := &service.Services{
		AuthService:    mocks.auth,
		ArticleService: mocks.articles,
		AppInfoService: mocks.appInfo,
	}
	return NewHandler(services, cfg, nil, logger.Nop()), mocks
}

// doRequest sends a request through handler and returns the recorder.
func doRequest(t *testing.T, handler http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// envelope is the decoded JSON response.
type envelope struct {
	Status int             `json:"status"`
	Error  string          `json:"error"`
	Data   json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v), "data: %s", string(env.Data))
	return v
}

func ptr[T any](v T) *T {
	return &v
}

var (
	anyCtx = gomock.Any()
	anyArg = gomock.Any()
)

var (
	alice = models.Identity{UserID: 1, Login: "alice"}
	bob   = models.Identity{UserID: 2, Login: "bob"}
)
