package models

// SiteOptions is the global singleton: navigation, footer and SEO
// defaults fetched once and shared read-only across pages.
type SiteOptions struct {
	Header HeaderOptions `json:"header"`
	Footer FooterOptions `json:"footer"`
	SEO    SEODefaults   `json:"seo"`
}

type NavItem struct {
	Label    string    `json:"label"`
	URL      string    `json:"url"`
	Children []NavItem `json:"children,omitempty"`
}

type HeaderOptions struct {
	Logo       *MediaNode `json:"logo,omitempty"`
	Navigation []NavItem  `json:"navigation,omitempty"`
}

type FooterColumn struct {
	Title string    `json:"title"`
	Links []NavItem `json:"links,omitempty"`
}

type FooterOptions struct {
	Copyright     string         `json:"copyright,omitempty"`
	SocialLinks   []SocialLink   `json:"socialLinks,omitempty"`
	FooterColumns []FooterColumn `json:"footerColumns,omitempty"`
}

type SEODefaults struct {
	DefaultTitle       string     `json:"defaultTitle,omitempty"`
	DefaultDescription string     `json:"defaultDescription,omitempty"`
	SocialImage        *MediaNode `json:"socialImage,omitempty"`
}
