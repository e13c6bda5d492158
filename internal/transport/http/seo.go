package http

import (
	"log/slog"
	"net/http"
	"time"

	"oatmeal/internal/lib/logger/sl"
	"oatmeal/internal/seo"
	contentsvc "oatmeal/internal/services/content_service"

	"github.com/labstack/echo/v4"
)

// sitemapPostLimit bounds how many posts the sitemap fetches in one query.
const sitemapPostLimit = 100

func (r *Routers) Robots(c echo.Context) error {
	return c.String(http.StatusOK, seo.Robots(r.site.URL))
}

// Sitemap lists the static pages and the published posts. When the
// backend is unreachable the static entries still go out, so crawlers
// always get a valid document.
func (r *Routers) Sitemap(c echo.Context) error {
	const op = "http.routers.Sitemap"

	entries := seo.StaticEntries(r.site.URL, time.Now())

	list, err := r.ContentService.GetPosts(c.Request().Context(), sitemapPostLimit, "")
	if err != nil {
		r.log.Warn("sitemap posts unavailable, serving static entries only",
			slog.String("op", op), sl.Err(err))
	} else if list != nil {
		for _, post := range list.Posts {
			lastMod, _ := time.Parse(time.RFC3339, post.Modified)
			entries = append(entries, seo.Entry(
				seo.Canonical(r.site.URL, "/blog/"+post.Slug),
				lastMod,
				"weekly",
				0.6,
			))
		}
	}

	body, err := seo.Sitemap(entries)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "sitemap generation failed")
	}

	return c.Blob(http.StatusOK, "application/xml", body)
}

func (r *Routers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// compile-time check that the content service satisfies the transport contract
var _ ContentService = (*contentsvc.ContentService)(nil)
