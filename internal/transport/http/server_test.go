package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oatmeal/internal/config"
	"oatmeal/internal/domain/models"
	"oatmeal/internal/render"
	previewsvc "oatmeal/internal/services/preview_service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockContentService struct {
	mock.Mock
}

func (m *mockContentService) GetPosts(ctx context.Context, first int, after string) (*models.PostList, error) {
	args := m.Called(ctx, first, after)
	list, _ := args.Get(0).(*models.PostList)
	return list, args.Error(1)
}

func (m *mockContentService) GetPostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	args := m.Called(ctx, slug)
	post, _ := args.Get(0).(*models.Post)
	return post, args.Error(1)
}

func (m *mockContentService) GetPageBySlug(ctx context.Context, slug string) (*models.Page, error) {
	args := m.Called(ctx, slug)
	page, _ := args.Get(0).(*models.Page)
	return page, args.Error(1)
}

func (m *mockContentService) GetPreviewPost(ctx context.Context, id, token string) (*models.Post, error) {
	args := m.Called(ctx, id, token)
	post, _ := args.Get(0).(*models.Post)
	return post, args.Error(1)
}

func (m *mockContentService) GetHomepageContent(ctx context.Context) (models.PageContent[models.HomepageFields], error) {
	args := m.Called(ctx)
	return args.Get(0).(models.PageContent[models.HomepageFields]), args.Error(1)
}

func (m *mockContentService) GetPricingPageContent(ctx context.Context) (models.PageContent[models.PricingFields], error) {
	args := m.Called(ctx)
	return args.Get(0).(models.PageContent[models.PricingFields]), args.Error(1)
}

func (m *mockContentService) GetAboutPageContent(ctx context.Context) (models.PageContent[models.AboutFields], error) {
	args := m.Called(ctx)
	return args.Get(0).(models.PageContent[models.AboutFields]), args.Error(1)
}

func (m *mockContentService) GetContactPageContent(ctx context.Context) (models.PageContent[models.ContactFields], error) {
	args := m.Called(ctx)
	return args.Get(0).(models.PageContent[models.ContactFields]), args.Error(1)
}

type mockPreviewService struct {
	mock.Mock
}

func (m *mockPreviewService) Begin(ctx context.Context, contentID, token string) (models.PreviewSession, string, error) {
	args := m.Called(ctx, contentID, token)
	return args.Get(0).(models.PreviewSession), args.String(1), args.Error(2)
}

func (m *mockPreviewService) Resume(signed string) (models.PreviewSession, error) {
	args := m.Called(signed)
	return args.Get(0).(models.PreviewSession), args.Error(1)
}

func (m *mockPreviewService) TTL() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

// stubSiteService returns fixed options without any backend.
type stubSiteService struct {
	opts *models.SiteOptions
}

func (s *stubSiteService) Options(context.Context) *models.SiteOptions {
	return s.opts
}

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func newTestServer(t *testing.T, content ContentService, site SiteService, preview PreviewService) *echo.Echo {
	t.Helper()

	renderer, err := render.NewRenderer()
	require.NoError(t, err)

	cfg := &config.Config{
		Env: "local",
		Site: config.SiteConfig{
			URL:    "http://localhost:3000",
			Name:   "Oatmeal",
			Secret: "test-secret",
		},
	}

	routers := NewRouter(slog.Default(), cfg, content, site, preview)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = &testValidator{validate: validator.New()}

	api := e.Group("/api")
	api.GET("/preview", routers.Preview)
	api.POST("/preview", routers.DisablePreview)
	api.GET("/exit-preview", routers.ExitPreview)

	e.GET("/health", routers.Health)
	e.GET("/robots.txt", routers.Robots)
	e.GET("/sitemap.xml", routers.Sitemap)

	e.GET("/", routers.Home)
	e.GET("/blog", routers.Blog)
	e.GET("/blog/preview/:id", routers.PreviewPost)
	e.GET("/blog/:slug", routers.BlogPost)
	e.GET("/pricing", routers.Pricing)
	e.GET("/about", routers.About)
	e.GET("/contact", routers.Contact)
	e.GET("/:slug", routers.Page)

	return e
}

func doRequest(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %s not set", name)
	return nil
}

func TestPreview_MissingParamsRejectedBeforeValidation(t *testing.T) {
	preview := &mockPreviewService{}
	e := newTestServer(t, &mockContentService{}, &stubSiteService{}, preview)

	rec := doRequest(e, httptest.NewRequest(http.MethodGet, "/api/preview", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required parameters: id and token")
	preview.AssertNotCalled(t, "Begin", mock.Anything, mock.Anything, mock.Anything)
}

func TestPreview_ValidTokenSetsCookiesAndRedirects(t *testing.T) {
	session := models.PreviewSession{
		ContentID:    "42",
		BackendToken: "wp-token",
		ExpiresAt:    time.Now().Add(time.Hour),
	}

	preview := &mockPreviewService{}
	preview.On("Begin", mock.Anything, "42", "wp-token").Return(session, "signed-token", nil)
	preview.On("TTL").Return(time.Hour)

	e := newTestServer(t, &mockContentService{}, &stubSiteService{}, preview)

	rec := doRequest(e, httptest.NewRequest(http.MethodGet, "/api/preview?id=42&token=wp-token", nil))

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/blog/preview/42?id=42&preview=true", rec.Header().Get("Location"))

	tokenCookie := findCookie(t, rec, models.PreviewTokenCookie)
	assert.Equal(t, "signed-token", tokenCookie.Value)
	assert.Equal(t, 3600, tokenCookie.MaxAge)
	assert.Equal(t, "/", tokenCookie.Path)
	assert.True(t, tokenCookie.HttpOnly)
	assert.False(t, tokenCookie.Secure, "secure only outside local env")
	assert.Equal(t, http.SameSiteLaxMode, tokenCookie.SameSite)

	idCookie := findCookie(t, rec, models.PreviewIDCookie)
	assert.Equal(t, "42", idCookie.Value)
	assert.Equal(t, 3600, idCookie.MaxAge)

	preview.AssertExpectations(t)
}

func TestPreview_RedirectTargets(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		target string
	}{
		{
			name:   "post with slug",
			query:  "id=42&token=wp-token&slug=hello-world",
			target: "/blog/hello-world",
		},
		{
			name:   "page with slug",
			query:  "id=42&token=wp-token&slug=pricing&postType=page",
			target: "/pricing",
		},
		{
			name:   "page without slug",
			query:  "id=42&token=wp-token&postType=page",
			target: "/",
		},
		{
			name:   "post without slug",
			query:  "id=42&token=wp-token",
			target: "/blog/preview/42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preview := &mockPreviewService{}
			preview.On("Begin", mock.Anything, "42", "wp-token").
				Return(models.PreviewSession{ContentID: "42"}, "signed", nil)
			preview.On("TTL").Return(time.Hour)

			e := newTestServer(t, &mockContentService{}, &stubSiteService{}, preview)

			rec := doRequest(e, httptest.NewRequest(http.MethodGet, "/api/preview?"+tt.query, nil))

			assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
			assert.Equal(t, tt.target+"?id=42&preview=true", rec.Header().Get("Location"))
		})
	}
}

func TestPreview_InvalidToken(t *testing.T) {
	preview := &mockPreviewService{}
	preview.On("Begin", mock.Anything, "42", "bad-token").
		Return(models.PreviewSession{}, "", previewsvc.ErrInvalidToken)

	e := newTestServer(t, &mockContentService{}, &stubSiteService{}, preview)

	rec := doRequest(e, httptest.NewRequest(http.MethodGet, "/api/preview?id=42&token=bad-token", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
	assert.Empty(t, rec.Result().Cookies(), "no preview cookies on rejection")
}

func TestPreview_BackendUnreachableIsServerError(t *testing.T) {
	preview := &mockPreviewService{}
	preview.On("Begin", mock.Anything, "42", "wp-token").
		Return(models.PreviewSession{}, "", errors.New("preview_service.Begin: query failed: connection refused"))

	e := newTestServer(t, &mockContentService{}, &stubSiteService{}, preview)

	rec := doRequest(e, httptest.NewRequest(http.MethodGet, "/api/preview?id=42&token=wp-token", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to enable preview mode")
	assert.Empty(t, rec.Result().Cookies())
}

func TestExitPreview_ClearsCookiesUnconditionally(t *testing.T) {
	e := newTestServer(t, &mockContentService{}, &stubSiteService{}, &mockPreviewService{})

	// no existing cookies needed, exit always clears
	rec := doRequest(e, httptest.NewRequest(http.MethodGet, "/api/exit-preview?redirect=/pricing", nil))

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/pricing", rec.Header().Get("Location"))

	for _, name := range []string{models.PreviewTokenCookie, models.PreviewIDCookie} {
		cookie := findCookie(t, rec, name)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	}
}

func TestExitPreview_RedirectSanitized(t *testing.T) {
	tests := []struct {
		name     string
		redirect string
		want     string
	}{
		{name: "empty defaults to root", redirect: "", want: "/"},
		{name: "protocol relative rejected", redirect: "//evil.example", want: "/"},
		{name: "absolute url rejected", redirect: "http://evil.example", want: "/"},
		{name: "on-site path passes", redirect: "/blog", want: "/blog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(t, &mockContentService{}, &stubSiteService{}, &mockPreviewService{})

			req := httptest.NewRequest(http.MethodGet, "/api/exit-preview", nil)
			q := req.URL.Query()
			q.Set("redirect", tt.redirect)
			req.URL.RawQuery = q.Encode()

			rec := doRequest(e, req)

			assert.Equal(t, tt.want, rec.Header().Get("Location"))
		})
	}
}

func TestDisablePreview_POST(t *testing.T) {
	e := newTestServer(t, &mockContentService{}, &stubSiteService{}, &mockPreviewService{})

	rec := doRequest(e, httptest.NewRequest(http.MethodPost, "/api/preview", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"success"`)
	assert.Contains(t, rec.Body.String(), "Preview mode disabled")

	for _, name := range []string{models.PreviewTokenCookie, models.PreviewIDCookie} {
		cookie := findCookie(t, rec, name)
		assert.Negative(t, cookie.MaxAge)
	}
}

func TestHome_RendersSampleContentWhenBackendDown(t *testing.T) {
	content := &mockContentService{}
	content.On("GetHomepageContent", mock.Anything).
		Return(models.PageContent[models.HomepageFields]{}, errors.New("connection refused"))

	e := newTestServer(t, content, &stubSiteService{}, &mockPreviewService{})

	rec := doRequest(e, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code, "backend failures never surface as errors on pages")
	assert.Contains(t, rec.Body.String(), "Build beautiful marketing sites with Oatmeal")
}

func TestHome_PreviewCookieShowsBanner(t *testing.T) {
	session := models.PreviewSession{
		ContentID:    "42",
		BackendToken: "wp-token",
		ExpiresAt:    time.Now().Add(time.Hour),
	}

	preview := &mockPreviewService{}
	preview.On("Resume", "signed-token").Return(session, nil)

	content := &mockContentService{}
	content.On("GetHomepageContent", mock.Anything).
		Return(models.PageContent[models.HomepageFields]{}, nil)

	e := newTestServer(t, content, &stubSiteService{}, preview)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: models.PreviewTokenCookie, Value: "signed-token"})

	rec := doRequest(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Preview mode")
	assert.Contains(t, rec.Body.String(), "id 42")
}

func TestHome_TamperedCookieFallsBackToPublished(t *testing.T) {
	preview := &mockPreviewService{}
	preview.On("Resume", "tampered").Return(models.PreviewSession{}, previewsvc.ErrInvalidToken)

	content := &mockContentService{}
	content.On("GetHomepageContent", mock.Anything).
		Return(models.PageContent[models.HomepageFields]{}, nil)

	e := newTestServer(t, content, &stubSiteService{}, preview)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: models.PreviewTokenCookie, Value: "tampered"})

	rec := doRequest(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Preview mode")
}

func TestBlogPost_Found(t *testing.T) {
	content := &mockContentService{}
	content.On("GetPostBySlug", mock.Anything, "hello-world").Return(&models.Post{
		Title:   "Hello World",
		Slug:    "hello-world",
		Content: "<p>First post.</p>",
		Date:    "2026-02-10",
	}, nil)

	e := newTestServer(t, content, &stubSiteService{}, &mockPreviewService{})

	rec := doRequest(e, httptest.NewRequest(http.MethodGet, "/blog/hello-world", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hello World")
	assert.Contains(t, rec.Body.String(), "<p>First post.</p>")
}

func TestBlogPost_NotFound(t *testing.T) {
	content := &mockContentService{}
	content.On("GetPostBySlug", mock.Anything, "missing").Return(nil, nil)

	e := newTestServer(t, content, &stubSiteService{}, &mockPreviewService{})

	rec := doRequest(e, httptest.NewRequest(http.MethodGet, "/blog/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "could not be found")
}

func TestBlogPost_BackendError(t *testing.T) {
	content := &mockContentService{}
	content.On("GetPostBySlug", mock.Anything, "hello-world").
		Return(nil, errors.New("connection refused"))

	e := newTestServer(t, content, &stubSiteService{}, &mockPreviewService{})

	rec := doRequest(e, httptest.NewRequest(http.MethodGet, "/blog/hello-world", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPreviewPost_RequiresSession(t *testing.T) {
	content := &mockContentService{}

	e := newTestServer(t, content, &stubSiteService{}, &mockPreviewService{})

	rec := doRequest(e, httptest.NewRequest(http.MethodGet, "/blog/preview/42", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	content.AssertNotCalled(t, "GetPreviewPost", mock.Anything, mock.Anything, mock.Anything)
}

func TestPreviewPost_RendersDraft(t *testing.T) {
	session := models.PreviewSession{
		ContentID:    "42",
		BackendToken: "wp-token",
		ExpiresAt:    time.Now().Add(time.Hour),
	}

	preview := &mockPreviewService{}
	preview.On("Resume", "signed-token").Return(session, nil)

	content := &mockContentService{}
	content.On("GetPreviewPost", mock.Anything, "42", "wp-token").Return(&models.Post{
		Title:   "Unpublished draft",
		Content: "<p>Draft body.</p>",
		Status:  "draft",
	}, nil)

	e := newTestServer(t, content, &stubSiteService{}, preview)

	req := httptest.NewRequest(http.MethodGet, "/blog/preview/42", nil)
	req.AddCookie(&http.Cookie{Name: models.PreviewTokenCookie, Value: "signed-token"})

	rec := doRequest(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unpublished draft")
	content.AssertExpectations(t)
}

func TestPage_Found(t *testing.T) {
	content := &mockContentService{}
	content.On("GetPageBySlug", mock.Anything, "privacy").Return(&models.Page{
		Title:   "Privacy Policy",
		Content: "<p>We respect your privacy.</p>",
	}, nil)

	e := newTestServer(t, content, &stubSiteService{}, &mockPreviewService{})

	rec := doRequest(e, httptest.NewRequest(http.MethodGet, "/privacy", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Privacy Policy")
}

func TestRobots(t *testing.T) {
	e := newTestServer(t, &mockContentService{}, &stubSiteService{}, &mockPreviewService{})

	rec := doRequest(e, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Disallow: /api/")
	assert.Contains(t, rec.Body.String(), "Disallow: /preview")
	assert.Contains(t, rec.Body.String(), "Sitemap: http://localhost:3000/sitemap.xml")
}

func TestSitemap_IncludesPosts(t *testing.T) {
	content := &mockContentService{}
	content.On("GetPosts", mock.Anything, sitemapPostLimit, "").Return(&models.PostList{
		Posts: []models.Post{
			{Slug: "hello-world", Modified: "2026-02-10T10:00:00Z"},
		},
	}, nil)

	e := newTestServer(t, content, &stubSiteService{}, &mockPreviewService{})

	rec := doRequest(e, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<loc>http://localhost:3000/blog/hello-world</loc>")
	assert.Contains(t, rec.Body.String(), "<lastmod>2026-02-10</lastmod>")
}

func TestSitemap_StaticOnlyWhenBackendDown(t *testing.T) {
	content := &mockContentService{}
	content.On("GetPosts", mock.Anything, sitemapPostLimit, "").
		Return(nil, errors.New("connection refused"))

	e := newTestServer(t, content, &stubSiteService{}, &mockPreviewService{})

	rec := doRequest(e, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))

	assert.Equal(t, http.StatusOK, rec.Code, "crawlers always get a valid document")
	for _, loc := range []string{
		"http://localhost:3000/",
		"http://localhost:3000/pricing",
		"http://localhost:3000/about",
		"http://localhost:3000/blog",
		"http://localhost:3000/contact",
	} {
		assert.Contains(t, rec.Body.String(), "<loc>"+loc+"</loc>")
	}
}

func TestHealth(t *testing.T) {
	e := newTestServer(t, &mockContentService{}, &stubSiteService{}, &mockPreviewService{})

	rec := doRequest(e, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
