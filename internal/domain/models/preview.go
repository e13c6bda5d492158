package models

import "time"

// PreviewSession is the short-lived credential that gates draft-content
// visibility. It lives only in cookies; nothing is persisted server-side.
type PreviewSession struct {
	// ContentID is the CMS database id of the previewed node.
	ContentID string
	// BackendToken is the bearer token re-presented to the CMS for
	// draft-visible queries.
	BackendToken string
	ExpiresAt    time.Time
}

// Active reports whether the session is still inside its validity window.
func (p PreviewSession) Active(now time.Time) bool {
	return now.Before(p.ExpiresAt)
}

const (
	// PreviewTokenCookie holds the signed preview session token.
	PreviewTokenCookie = "wp-preview-token"
	// PreviewIDCookie holds the previewed content id.
	PreviewIDCookie = "wp-preview-id"
)
