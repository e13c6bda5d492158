package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"oatmeal/internal/config"
	"oatmeal/internal/domain/models"
	"oatmeal/internal/lib/logger/sl"
	"oatmeal/internal/render"
	contentsvc "oatmeal/internal/services/content_service"

	"github.com/labstack/echo/v4"
)

type ContentService interface {
	GetPosts(ctx context.Context, first int, after string) (*models.PostList, error)
	GetPostBySlug(ctx context.Context, slug string) (*models.Post, error)
	GetPageBySlug(ctx context.Context, slug string) (*models.Page, error)
	GetPreviewPost(ctx context.Context, id, token string) (*models.Post, error)
	GetHomepageContent(ctx context.Context) (models.PageContent[models.HomepageFields], error)
	GetPricingPageContent(ctx context.Context) (models.PageContent[models.PricingFields], error)
	GetAboutPageContent(ctx context.Context) (models.PageContent[models.AboutFields], error)
	GetContactPageContent(ctx context.Context) (models.PageContent[models.ContactFields], error)
}

type SiteService interface {
	Options(ctx context.Context) *models.SiteOptions
}

type PreviewService interface {
	Begin(ctx context.Context, contentID, token string) (models.PreviewSession, string, error)
	Resume(signed string) (models.PreviewSession, error)
	TTL() time.Duration
}

type Routers struct {
	log            *slog.Logger
	site           config.SiteConfig
	env            string
	ContentService ContentService
	SiteService    SiteService
	PreviewService PreviewService
}

func NewRouter(log *slog.Logger, cfg *config.Config, contentService ContentService, siteService SiteService, previewService PreviewService) *Routers {
	return &Routers{
		log:            log,
		site:           cfg.Site,
		env:            cfg.Env,
		ContentService: contentService,
		SiteService:    siteService,
		PreviewService: previewService,
	}
}

// session resolves the preview session from the request cookie. Absent,
// tampered or expired cookies mean published-only mode; the request
// context then carries no preview token.
func (r *Routers) session(c echo.Context) (*models.PreviewSession, context.Context) {
	ctx := c.Request().Context()

	cookie, err := c.Cookie(models.PreviewTokenCookie)
	if err != nil || cookie.Value == "" {
		return nil, ctx
	}

	session, err := r.PreviewService.Resume(cookie.Value)
	if err != nil {
		return nil, ctx
	}

	return &session, contentsvc.WithPreviewToken(ctx, session.BackendToken)
}

func (r *Routers) layout(c echo.Context, ctx context.Context, session *models.PreviewSession, title, description string) render.Layout {
	return render.MergeLayout(
		r.site.Name,
		r.site.URL,
		c.Request().URL.Path,
		title,
		description,
		r.SiteService.Options(ctx),
		session,
	)
}

func (r *Routers) Home(c echo.Context) error {
	const op = "http.routers.Home"

	session, ctx := r.session(c)

	content, err := r.ContentService.GetHomepageContent(ctx)
	if err != nil {
		// disconnected state: render the sample content
		r.log.Warn("homepage content unavailable", slog.String("op", op), sl.Err(err))
	}

	layout := r.layout(c, ctx, session, "", "")
	return c.Render(http.StatusOK, "home", render.MergeHome(layout, content.Fields))
}

func (r *Routers) Pricing(c echo.Context) error {
	const op = "http.routers.Pricing"

	session, ctx := r.session(c)

	content, err := r.ContentService.GetPricingPageContent(ctx)
	if err != nil {
		r.log.Warn("pricing content unavailable", slog.String("op", op), sl.Err(err))
	}

	layout := r.layout(c, ctx, session, "Pricing", "Choose the perfect plan for your needs.")
	return c.Render(http.StatusOK, "pricing", render.MergePricing(layout, content.Fields))
}

func (r *Routers) About(c echo.Context) error {
	const op = "http.routers.About"

	session, ctx := r.session(c)

	content, err := r.ContentService.GetAboutPageContent(ctx)
	if err != nil {
		r.log.Warn("about content unavailable", slog.String("op", op), sl.Err(err))
	}

	layout := r.layout(c, ctx, session, "About", "")
	return c.Render(http.StatusOK, "about", render.MergeAbout(layout, content.Fields))
}

func (r *Routers) Contact(c echo.Context) error {
	const op = "http.routers.Contact"

	session, ctx := r.session(c)

	content, err := r.ContentService.GetContactPageContent(ctx)
	if err != nil {
		r.log.Warn("contact content unavailable", slog.String("op", op), sl.Err(err))
	}

	layout := r.layout(c, ctx, session, "Contact", "")
	return c.Render(http.StatusOK, "contact", render.MergeContact(layout, content.Fields))
}

func (r *Routers) Blog(c echo.Context) error {
	const op = "http.routers.Blog"

	session, ctx := r.session(c)

	list, err := r.ContentService.GetPosts(ctx, contentsvc.DefaultPageSize, c.QueryParam("after"))
	if err != nil {
		r.log.Warn("posts unavailable", slog.String("op", op), sl.Err(err))
	}

	layout := r.layout(c, ctx, session, "Blog", "Latest news, tutorials, and insights.")
	return c.Render(http.StatusOK, "blog", render.MergeBlog(layout, list))
}

func (r *Routers) BlogPost(c echo.Context) error {
	const op = "http.routers.BlogPost"

	session, ctx := r.session(c)
	slug := c.Param("slug")

	post, err := r.ContentService.GetPostBySlug(ctx, slug)
	if err != nil {
		r.log.Error("post fetch failed", slog.String("op", op), slog.String("slug", slug), sl.Err(err))
		return r.renderError(c, session, http.StatusInternalServerError, "Something went wrong loading this post.")
	}
	if post == nil {
		return r.renderError(c, session, http.StatusNotFound, "This post could not be found.")
	}

	title := post.Title
	description := ""
	if post.SEO != nil {
		if post.SEO.Title != "" {
			title = post.SEO.Title
		}
		description = post.SEO.MetaDesc
	}

	layout := r.layout(c, ctx, session, title, description)
	return c.Render(http.StatusOK, "post", render.MergePost(layout, post))
}

// PreviewPost renders a draft post by database id. It requires an
// active preview session; without one there is nothing to show.
func (r *Routers) PreviewPost(c echo.Context) error {
	const op = "http.routers.PreviewPost"

	session, ctx := r.session(c)
	if session == nil {
		return r.renderError(c, nil, http.StatusNotFound, "This post could not be found.")
	}

	id := c.Param("id")

	post, err := r.ContentService.GetPreviewPost(ctx, id, session.BackendToken)
	if err != nil {
		r.log.Error("preview post fetch failed", slog.String("op", op), slog.String("id", id), sl.Err(err))
		return r.renderError(c, session, http.StatusInternalServerError, "Something went wrong loading this draft.")
	}
	if post == nil {
		return r.renderError(c, session, http.StatusNotFound, "This post could not be found.")
	}

	layout := r.layout(c, ctx, session, post.Title, "")
	return c.Render(http.StatusOK, "post", render.MergePost(layout, post))
}

// Page renders a generic CMS page addressed by its URI slug.
func (r *Routers) Page(c echo.Context) error {
	const op = "http.routers.Page"

	session, ctx := r.session(c)
	slug := c.Param("slug")

	page, err := r.ContentService.GetPageBySlug(ctx, slug)
	if err != nil {
		r.log.Error("page fetch failed", slog.String("op", op), slog.String("slug", slug), sl.Err(err))
		return r.renderError(c, session, http.StatusInternalServerError, "Something went wrong loading this page.")
	}
	if page == nil {
		return r.renderError(c, session, http.StatusNotFound, "This page could not be found.")
	}

	title := page.Title
	description := ""
	if page.SEO != nil {
		if page.SEO.Title != "" {
			title = page.SEO.Title
		}
		description = page.SEO.MetaDesc
	}

	layout := r.layout(c, ctx, session, title, description)
	return c.Render(http.StatusOK, "page", render.MergePage(layout, page))
}

func (r *Routers) NotFound(c echo.Context) error {
	session, _ := r.session(c)
	return r.renderError(c, session, http.StatusNotFound, "This page could not be found.")
}

func (r *Routers) renderError(c echo.Context, session *models.PreviewSession, status int, message string) error {
	ctx := c.Request().Context()
	layout := r.layout(c, ctx, session, "Error", "")
	return c.Render(status, "error", render.ErrorView{
		Layout:  layout,
		Status:  status,
		Message: message,
	})
}
