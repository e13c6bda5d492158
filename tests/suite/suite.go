package suite

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oatmeal/internal/app"
	"oatmeal/internal/config"
)

// ValidEditorToken is the backend token the stub CMS accepts.
const ValidEditorToken = "editor-token"

type Suite struct {
	*testing.T
	Cfg *config.Config
	App *app.App
	CMS *StubCMS
}

// New wires the full application against a stub CMS backend. Requests
// go through the real router, renderer and services; only the GraphQL
// endpoint is substituted.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	cms := NewStubCMS(ValidEditorToken)
	t.Cleanup(cms.Close)

	cfg := &config.Config{
		Env:  "local",
		HTTP: config.HTTPConfig{Host: "localhost", Port: "0"},
		WordPress: config.WordPressConfig{
			URL:         cms.Server.URL,
			GraphQLPath: "",
		},
		Site: config.SiteConfig{
			URL:    "http://localhost:3000",
			Name:   "Oatmeal",
			Secret: "test-secret",
		},
		Preview: config.PreviewConfig{
			TokenTTL:   time.Hour,
			OptionsTTL: time.Minute,
		},
	}

	ctx, cancelCtx := context.WithTimeout(context.Background(), time.Minute)
	t.Cleanup(cancelCtx)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return ctx, &Suite{
		T:   t,
		Cfg: cfg,
		App: app.New(log, cfg),
		CMS: cms,
	}
}

// Do runs a request through the wired router without a listener.
func (s *Suite) Do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.App.HTTPServer.Echo().ServeHTTP(rec, req)
	return rec
}
