package seo

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		siteName string
		want     string
	}{
		{
			name:     "page title with site name",
			title:    "Pricing",
			siteName: "Oatmeal",
			want:     "Pricing | Oatmeal",
		},
		{
			name:     "empty title falls back to site name",
			title:    "",
			siteName: "Oatmeal",
			want:     "Oatmeal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Title(tt.title, tt.siteName))
		})
	}
}

func TestDescription_ShortPassesThrough(t *testing.T) {
	s := "A short description."
	assert.Equal(t, s, Description(s))
}

func TestDescription_LongIsTruncated(t *testing.T) {
	long := strings.Repeat("word ", 100)

	got := Description(long)

	assert.LessOrEqual(t, utf8.RuneCountInString(got), maxDescriptionLength)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestDescription_MultibyteSafe(t *testing.T) {
	long := strings.Repeat("ж", 300)

	got := Description(long)

	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, utf8.RuneCountInString(got), maxDescriptionLength)
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		name    string
		siteURL string
		path    string
		want    string
	}{
		{
			name:    "plain path",
			siteURL: "http://localhost:3000",
			path:    "/pricing",
			want:    "http://localhost:3000/pricing",
		},
		{
			name:    "trailing slash on site url",
			siteURL: "http://localhost:3000/",
			path:    "/pricing",
			want:    "http://localhost:3000/pricing",
		},
		{
			name:    "empty path is root",
			siteURL: "http://localhost:3000",
			path:    "",
			want:    "http://localhost:3000/",
		},
		{
			name:    "missing leading slash",
			siteURL: "http://localhost:3000",
			path:    "blog",
			want:    "http://localhost:3000/blog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Canonical(tt.siteURL, tt.path))
		})
	}
}

func TestEntry(t *testing.T) {
	mod := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	e := Entry("http://localhost:3000/blog", mod, "daily", 0.9)

	assert.Equal(t, "http://localhost:3000/blog", e.Loc)
	assert.Equal(t, "2026-02-10", e.LastMod)
	assert.Equal(t, "daily", e.ChangeFreq)
	assert.Equal(t, "0.9", e.Priority)
}

func TestEntry_ZeroTimeOmitsLastMod(t *testing.T) {
	e := Entry("http://localhost:3000/", time.Time{}, "daily", 1.0)

	assert.Empty(t, e.LastMod)
	assert.Equal(t, "1", e.Priority)
}

func TestStaticEntries_CoverAllPages(t *testing.T) {
	entries := StaticEntries("http://localhost:3000", time.Now())

	locs := make([]string, 0, len(entries))
	for _, e := range entries {
		locs = append(locs, e.Loc)
	}

	assert.Equal(t, []string{
		"http://localhost:3000/",
		"http://localhost:3000/pricing",
		"http://localhost:3000/about",
		"http://localhost:3000/blog",
		"http://localhost:3000/contact",
	}, locs)
}

func TestSitemap(t *testing.T) {
	now := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	body, err := Sitemap(StaticEntries("http://localhost:3000", now))
	require.NoError(t, err)

	xml := string(body)
	assert.True(t, strings.HasPrefix(xml, "<?xml"))
	assert.Contains(t, xml, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, xml, "<loc>http://localhost:3000/blog</loc>")
	assert.Contains(t, xml, "<lastmod>2026-02-10</lastmod>")
	assert.Contains(t, xml, "<changefreq>daily</changefreq>")
}

func TestRobots(t *testing.T) {
	body := Robots("http://localhost:3000")

	assert.Contains(t, body, "User-agent: *")
	assert.Contains(t, body, "Allow: /")
	assert.Contains(t, body, "Disallow: /api/")
	assert.Contains(t, body, "Disallow: /preview")
	assert.Contains(t, body, "Disallow: /private/")
	assert.Contains(t, body, "Sitemap: http://localhost:3000/sitemap.xml")
}
