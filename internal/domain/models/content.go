package models

// Content models mirror the WPGraphQL response shapes. Everything here is
// owned by the CMS; this application only reads it. Optional leaves are
// pointers or nilable slices so absent fields survive decoding untouched.

type MediaDetails struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type MediaItem struct {
	ID           string        `json:"id"`
	DatabaseID   int           `json:"databaseId"`
	AltText      string        `json:"altText,omitempty"`
	Caption      string        `json:"caption,omitempty"`
	SourceURL    string        `json:"sourceUrl"`
	MediaDetails *MediaDetails `json:"mediaDetails,omitempty"`
}

// MediaNode is the single-node connection wrapper WPGraphQL uses for
// weak media references.
type MediaNode struct {
	Node MediaItem `json:"node"`
}

type Avatar struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Author struct {
	ID          string  `json:"id"`
	DatabaseID  int     `json:"databaseId"`
	Name        string  `json:"name"`
	FirstName   string  `json:"firstName,omitempty"`
	LastName    string  `json:"lastName,omitempty"`
	Description string  `json:"description,omitempty"`
	Avatar      *Avatar `json:"avatar,omitempty"`
}

type AuthorNode struct {
	Node Author `json:"node"`
}

type Category struct {
	ID          string `json:"id"`
	DatabaseID  int    `json:"databaseId"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type SEO struct {
	Title     string `json:"title,omitempty"`
	MetaDesc  string `json:"metaDesc,omitempty"`
	Canonical string `json:"canonical,omitempty"`
}

type CategoryConnection struct {
	Nodes []Category `json:"nodes"`
}

type TagConnection struct {
	Nodes []Tag `json:"nodes"`
}

// Post is a blog post. Slug is the only externally addressable identifier
// for routing and is unique among posts.
type Post struct {
	ID            string              `json:"id"`
	DatabaseID    int                 `json:"databaseId"`
	Title         string              `json:"title"`
	Slug          string              `json:"slug"`
	URI           string              `json:"uri"`
	Content       string              `json:"content,omitempty"`
	Excerpt       string              `json:"excerpt,omitempty"`
	Date          string              `json:"date"`
	Modified      string              `json:"modified"`
	Status        string              `json:"status"`
	Author        *AuthorNode         `json:"author,omitempty"`
	FeaturedImage *MediaNode          `json:"featuredImage,omitempty"`
	Categories    *CategoryConnection `json:"categories,omitempty"`
	Tags          *TagConnection      `json:"tags,omitempty"`
	SEO           *SEO                `json:"seo,omitempty"`
}

// Page is a CMS page, addressable by URI rather than slug.
type Page struct {
	ID            string     `json:"id"`
	DatabaseID    int        `json:"databaseId"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	URI           string     `json:"uri"`
	Content       string     `json:"content,omitempty"`
	Status        string     `json:"status"`
	Modified      string     `json:"modified"`
	FeaturedImage *MediaNode `json:"featuredImage,omitempty"`
	SEO           *SEO       `json:"seo,omitempty"`
}

type MenuItem struct {
	ID         string   `json:"id"`
	DatabaseID int      `json:"databaseId"`
	Label      string   `json:"label"`
	URL        string   `json:"url"`
	Path       string   `json:"path"`
	ParentID   string   `json:"parentId,omitempty"`
	CSSClasses []string `json:"cssClasses,omitempty"`
}

type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor,omitempty"`
}

type GeneralSettings struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// PostList is the result of a paginated posts query.
type PostList struct {
	Posts    []Post
	PageInfo PageInfo
}
