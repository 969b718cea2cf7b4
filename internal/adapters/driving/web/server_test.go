package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/benefits-portal/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/benefits-portal/internal/core/domain"
	"github.com/custodia-labs/benefits-portal/internal/core/services"
)

type testEnv struct {
	server   *Server
	sessions *memory.SessionStore
	receipts *memory.ReceiptStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWith(t, Config{})
}

func newTestEnvWith(t *testing.T, cfg Config) *testEnv {
	t.Helper()

	catalog := services.NewCatalogService(nil)
	sessions := memory.NewSessionStore(30 * time.Minute)
	receipts := memory.NewReceiptStore()

	server, err := NewServer(&Ports{
		Catalog:      catalog,
		Applications: services.NewApplicationService(catalog, sessions, receipts),
	}, cfg)
	require.NoError(t, err)

	return &testEnv{server: server, sessions: sessions, receipts: receipts}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return e.do(req)
}

func (e *testEnv) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return e.do(req)
}

// start opens a Universal Credit session and returns its cookie.
func (e *testEnv) start(t *testing.T) *http.Cookie {
	t.Helper()

	rec := e.postForm("/services/universal-credit/start", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/apply", rec.Header().Get("Location"))

	c := responseCookie(rec)
	require.NotNil(t, c)
	require.NotEmpty(t, c.Value)
	return c
}

func responseCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			return c
		}
	}
	return nil
}

func document(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func TestNewServer_Validation(t *testing.T) {
	catalog := services.NewCatalogService(nil)

	_, err := NewServer(&Ports{}, Config{})
	assert.ErrorIs(t, err, ErrMissingCatalogService)

	_, err = NewServer(&Ports{Catalog: catalog}, Config{})
	assert.ErrorIs(t, err, ErrMissingApplicationService)
}

func TestNewServer_BadTemplatesDir(t *testing.T) {
	catalog := services.NewCatalogService(nil)
	ports := &Ports{
		Catalog:      catalog,
		Applications: services.NewApplicationService(catalog, memory.NewSessionStore(time.Minute), nil),
	}

	_, err := NewServer(ports, Config{TemplatesDir: t.TempDir()})
	assert.Error(t, err)
}

func TestServer_Health(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get("/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_Metrics(t *testing.T) {
	env := newTestEnv(t)
	env.get("/")

	rec := env.get("/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "portal_http_request_duration_seconds")
	assert.Contains(t, rec.Body.String(), "portal_catalog_searches_total")
}

func TestServer_UnknownRoute(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get("/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_RateLimit(t *testing.T) {
	env := newTestEnvWith(t, Config{RateLimit: 1, RateBurst: 2})

	assert.Equal(t, http.StatusOK, env.get("/api/categories").Code)
	assert.Equal(t, http.StatusOK, env.get("/api/categories").Code)

	rec := env.get("/api/categories")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, env.get("/healthz").Code)
}

func TestServer_MountsMCP(t *testing.T) {
	catalog := services.NewCatalogService(nil)
	mcpHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "mcp")
	})
	server, err := NewServer(&Ports{
		Catalog:      catalog,
		Applications: services.NewApplicationService(catalog, memory.NewSessionStore(time.Minute), nil),
		MCP:          mcpHandler,
	}, Config{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mcp", nil))

	assert.Equal(t, "mcp", rec.Body.String())
}

func TestServer_MCPStreamOutlivesWriteTimeout(t *testing.T) {
	catalog := services.NewCatalogService(nil)
	stream := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "event: open\n")
		http.NewResponseController(w).Flush()
		time.Sleep(300 * time.Millisecond)
		_, _ = io.WriteString(w, "event: done\n")
	})
	server, err := NewServer(&Ports{
		Catalog:      catalog,
		Applications: services.NewApplicationService(catalog, memory.NewSessionStore(time.Minute), nil),
		MCP:          stream,
	}, Config{Address: "127.0.0.1:0", WriteTimeout: 100 * time.Millisecond})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = server.Run(ctx) }()
	require.Eventually(t, func() bool { return server.Addr() != "" }, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + server.Addr() + "/mcp")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "event: open\nevent: done\n", string(body))
}

func TestServer_RunAndStop(t *testing.T) {
	env := newTestEnvWith(t, Config{Address: "127.0.0.1:0"})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- env.server.Run(ctx) }()

	require.Eventually(t, func() bool { return env.server.Addr() != "" }, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + env.server.Addr() + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_StopBeforeStart(t *testing.T) {
	env := newTestEnv(t)
	assert.NoError(t, env.server.Stop(context.Background()))
	assert.Empty(t, env.server.Addr())
}

func TestServer_SessionSurvivesAcrossRequests(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.start(t)

	session, err := env.sessions.Get(context.Background(), cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, domain.UniversalCreditID, session.ServiceID)
	assert.Equal(t, domain.StepPersonalDetails, session.Step)
}
