package seo

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

// URLEntry is one <url> element of a sitemap.
type URLEntry struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod,omitempty"`
	ChangeFreq string   `xml:"changefreq,omitempty"`
	Priority   string   `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []URLEntry `xml:"url"`
}

// Entry builds one sitemap URL entry. lastMod zero time omits lastmod.
func Entry(loc string, lastMod time.Time, changeFreq string, priority float64) URLEntry {
	e := URLEntry{
		Loc:        loc,
		ChangeFreq: changeFreq,
		Priority:   strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.1f", priority), "0"), "."),
	}
	if !lastMod.IsZero() {
		e.LastMod = lastMod.Format("2006-01-02")
	}
	return e
}

// StaticEntries are the always-present crawlable paths.
func StaticEntries(siteURL string, now time.Time) []URLEntry {
	return []URLEntry{
		Entry(Canonical(siteURL, "/"), now, "daily", 1.0),
		Entry(Canonical(siteURL, "/pricing"), now, "weekly", 0.8),
		Entry(Canonical(siteURL, "/about"), now, "monthly", 0.8),
		Entry(Canonical(siteURL, "/blog"), now, "daily", 0.9),
		Entry(Canonical(siteURL, "/contact"), now, "monthly", 0.7),
	}
}

// Sitemap serializes entries into a sitemap.xml document.
func Sitemap(entries []URLEntry) ([]byte, error) {
	body, err := xml.MarshalIndent(urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  entries,
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// Robots renders robots.txt: everything crawlable except API, preview
// and private paths, with a pointer at the sitemap.
func Robots(siteURL string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	for _, path := range []string{"/api/", "/preview", "/private/"} {
		b.WriteString("Disallow: " + path + "\n")
	}
	b.WriteString("\n")
	b.WriteString("Sitemap: " + Canonical(siteURL, "/sitemap.xml") + "\n")
	b.WriteString("Host: " + siteURL + "\n")
	return b.String()
}
