package request

// PreviewRequest carries the query parameters the CMS appends when an
// editor opens a draft preview.
type PreviewRequest struct {
	ID       string `query:"id" validate:"required"`
	Token    string `query:"token" validate:"required"`
	Slug     string `query:"slug"`
	PostType string `query:"postType"`
}
