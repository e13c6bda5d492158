package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"oatmeal/internal/config"
	"oatmeal/internal/domain/models"
	"oatmeal/internal/graphql"
	libjwt "oatmeal/internal/lib/jwt"
	"oatmeal/internal/lib/logger/sl"
)

var (
	// ErrInvalidToken means the backend rejected the presented bearer token.
	ErrInvalidToken = errors.New("invalid preview token")
)

// Verifier issues the identity-check query with an explicit bearer token.
type Verifier interface {
	Run(ctx context.Context, doc string, vars map[string]interface{}, out interface{}) error
}

// VerifierFactory builds a verifier bound to the presented token.
type VerifierFactory func(token string) Verifier

// PreviewService turns a (contentID, token) pair presented via query
// parameters into a short-lived signed session credential. The backend
// token is validated with one identity round trip; on success it is
// wrapped into an HMAC-signed session token so later requests can
// verify it server-side instead of trusting the cookie verbatim.
type PreviewService struct {
	log       *slog.Logger
	secret    string
	ttl       time.Duration
	verifiers VerifierFactory
}

func NewPreviewService(log *slog.Logger, cfg *config.Config) *PreviewService {
	return &PreviewService{
		log:    log,
		secret: cfg.Site.Secret,
		ttl:    cfg.Preview.TokenTTL,
		verifiers: func(token string) Verifier {
			return graphql.NewRequestClient(log, cfg.WordPress, token)
		},
	}
}

func NewPreviewServiceWithVerifier(log *slog.Logger, secret string, ttl time.Duration, verifiers VerifierFactory) *PreviewService {
	return &PreviewService{log: log, secret: secret, ttl: ttl, verifiers: verifiers}
}

// Begin validates the presented token against the backend and, on
// success, returns the session plus its signed cookie value. Exactly
// one validation round trip; any failure is terminal for the request.
// A backend that rejects the token yields ErrInvalidToken; a backend
// that cannot be reached at all propagates as a server error.
func (s *PreviewService) Begin(ctx context.Context, contentID, token string) (models.PreviewSession, string, error) {
	const op = "preview_service.Begin"

	log := s.log.With(slog.String("op", op), slog.String("content_id", contentID))

	var resp struct {
		Viewer *struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"viewer"`
	}
	if err := s.verifiers(token).Run(ctx, graphql.QueryVerifyToken, nil, &resp); err != nil {
		if graphql.IsTransportError(err) {
			log.Error("token verification unreachable", sl.Err(err))
			return models.PreviewSession{}, "", fmt.Errorf("%s: %w", op, err)
		}
		log.Warn("token verification rejected", sl.Err(err))
		return models.PreviewSession{}, "", ErrInvalidToken
	}
	if resp.Viewer == nil {
		log.Warn("token verification returned no viewer")
		return models.PreviewSession{}, "", ErrInvalidToken
	}

	session := models.PreviewSession{
		ContentID:    contentID,
		BackendToken: token,
		ExpiresAt:    time.Now().Add(s.ttl),
	}

	signed, err := libjwt.NewPreviewToken(session, s.secret)
	if err != nil {
		return models.PreviewSession{}, "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("preview session started", slog.String("viewer", resp.Viewer.Name))

	return session, signed, nil
}

// Resume verifies a signed cookie value and returns the embedded
// session. Tampered or expired cookies are reported as invalid; the
// caller falls back to published-only mode.
func (s *PreviewService) Resume(signed string) (models.PreviewSession, error) {
	session, err := libjwt.ParsePreviewToken(signed, s.secret)
	if err != nil {
		return models.PreviewSession{}, ErrInvalidToken
	}

	if !session.Active(time.Now()) {
		return models.PreviewSession{}, ErrInvalidToken
	}

	return session, nil
}

// TTL is the session validity window, exposed for cookie max-age.
func (s *PreviewService) TTL() time.Duration {
	return s.ttl
}
