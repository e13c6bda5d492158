package http

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"oatmeal/internal/domain/models"
	"oatmeal/internal/lib/logger/sl"
	previewsvc "oatmeal/internal/services/preview_service"
	"oatmeal/internal/transport/http/dto/request"
	"oatmeal/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// Preview handles the entry URL the CMS sends editors to. Required
// params are checked before any network call; the token is then
// validated with one identity round trip, and on success two cookies
// gate draft visibility for the next hour.
func (r *Routers) Preview(c echo.Context) error {
	const op = "http.routers.Preview"

	log := r.log.With(slog.String("op", op))

	var req request.PreviewRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrMissingPreviewParams)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("preview request missing parameters", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrMissingPreviewParams)
	}

	session, signed, err := r.PreviewService.Begin(c.Request().Context(), req.ID, req.Token)
	if err != nil {
		if errors.Is(err, previewsvc.ErrInvalidToken) {
			log.Warn("preview token rejected", slog.String("content_id", req.ID))
			return c.JSON(http.StatusUnauthorized, response.ErrInvalidPreviewToken)
		}

		log.Error("preview validation failed", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrPreviewFailed)
	}

	maxAge := int(r.PreviewService.TTL().Seconds())
	r.setPreviewCookie(c, models.PreviewTokenCookie, signed, maxAge)
	r.setPreviewCookie(c, models.PreviewIDCookie, session.ContentID, maxAge)

	target := previewRedirect(req)
	q := url.Values{}
	q.Set("preview", "true")
	q.Set("id", req.ID)

	log.Info("preview session issued", slog.String("content_id", req.ID), slog.String("redirect", target))

	return c.Redirect(http.StatusTemporaryRedirect, target+"?"+q.Encode())
}

// ExitPreview deletes both cookies unconditionally and redirects. No
// token validation happens here since it only removes state.
func (r *Routers) ExitPreview(c echo.Context) error {
	r.clearPreviewCookies(c)

	redirect := sanitizeRedirect(c.QueryParam("redirect"))

	return c.Redirect(http.StatusTemporaryRedirect, redirect)
}

// DisablePreview is the POST variant: clears both cookies and returns a
// JSON confirmation instead of redirecting.
func (r *Routers) DisablePreview(c echo.Context) error {
	r.clearPreviewCookies(c)

	return c.JSON(http.StatusOK, response.SuccessResponse("Preview mode disabled"))
}

func (r *Routers) setPreviewCookie(c echo.Context, name, value string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   r.env == "prod",
		SameSite: http.SameSiteLaxMode,
	})
}

func (r *Routers) clearPreviewCookies(c echo.Context) {
	for _, name := range []string{models.PreviewTokenCookie, models.PreviewIDCookie} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   r.env == "prod",
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func previewRedirect(req request.PreviewRequest) string {
	if req.PostType == "page" {
		if req.Slug != "" {
			return "/" + req.Slug
		}
		return "/"
	}

	if req.Slug != "" {
		return "/blog/" + req.Slug
	}
	return "/blog/preview/" + req.ID
}

// sanitizeRedirect keeps exit-preview on-site: only absolute paths
// without a second slash (protocol-relative URLs) pass through.
func sanitizeRedirect(redirect string) string {
	if redirect == "" || !strings.HasPrefix(redirect, "/") || strings.HasPrefix(redirect, "//") {
		return "/"
	}
	return redirect
}
