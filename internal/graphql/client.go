package graphql

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"oatmeal/internal/config"
	"oatmeal/internal/metrics"

	gql "github.com/machinebox/graphql"
	gocache "github.com/patrickmn/go-cache"
)

// Client executes catalog queries against the WordPress GraphQL
// endpoint. Two variants exist: a request-scoped client that never
// caches (server-side rendering must see current backend state), and a
// long-lived client with an in-memory cache-first policy keyed by
// query+variables.
type Client struct {
	gql   *gql.Client
	log   *slog.Logger
	token string
	cache *gocache.Cache
}

// NewRequestClient returns a request-scoped client with caching
// disabled. previewToken, when non-empty, takes precedence over the
// statically configured service token; when both are empty no
// Authorization header is sent. Single-attempt semantics: a transport
// or GraphQL failure propagates to the caller, no retry.
func NewRequestClient(log *slog.Logger, cfg config.WordPressConfig, previewToken string) *Client {
	token := cfg.AuthToken
	if previewToken != "" {
		token = previewToken
	}

	return &Client{
		gql:   gql.NewClient(cfg.Endpoint()),
		log:   log,
		token: token,
	}
}

// NewCachedClient returns a long-lived client whose responses are
// cached in-process for ttl. The cache is advisory (cache-first);
// callers tolerate staleness inside ttl. Preview tokens never
// flow through this client, so cached entries are always
// published-only content.
func NewCachedClient(log *slog.Logger, cfg config.WordPressConfig, ttl time.Duration) *Client {
	return &Client{
		gql:   gql.NewClient(cfg.Endpoint()),
		log:   log,
		token: cfg.AuthToken,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Run executes one query document and decodes the response envelope
// into out. Exactly one network call per invocation on the
// request-scoped client; the cached client may serve from memory.
func (c *Client) Run(ctx context.Context, doc string, vars map[string]interface{}, out interface{}) error {
	const op = "graphql.Client.Run"

	if c.cache != nil {
		key := cacheKey(doc, vars)
		if raw, ok := c.cache.Get(key); ok {
			c.log.Debug("cache hit", slog.String("op", op), slog.String("key", key[:12]))
			metrics.CMSQueriesTotal.WithLabelValues("cache_hit").Inc()
			return json.Unmarshal(raw.([]byte), out)
		}

		var data json.RawMessage
		if err := c.run(ctx, doc, vars, &data); err != nil {
			metrics.CMSQueriesTotal.WithLabelValues("error").Inc()
			return fmt.Errorf("%s: query failed: %w", op, err)
		}

		metrics.CMSQueriesTotal.WithLabelValues("ok").Inc()
		c.cache.SetDefault(key, []byte(data))
		return json.Unmarshal(data, out)
	}

	if err := c.run(ctx, doc, vars, out); err != nil {
		metrics.CMSQueriesTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("%s: query failed: %w", op, err)
	}

	metrics.CMSQueriesTotal.WithLabelValues("ok").Inc()
	return nil
}

func (c *Client) run(ctx context.Context, doc string, vars map[string]interface{}, out interface{}) error {
	req := gql.NewRequest(doc)
	for k, v := range vars {
		req.Var(k, v)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return c.gql.Run(ctx, req, out)
}

// IsTransportError reports whether err is a network-level failure
// (backend unreachable, timeout). A reachable backend answering with
// GraphQL errors or a non-200 status is not a transport error.
func IsTransportError(err error) bool {
	var uerr *url.Error
	return errors.As(err, &uerr)
}

func cacheKey(doc string, vars map[string]interface{}) string {
	h := sha256.New()
	h.Write([]byte(doc))
	if len(vars) > 0 {
		// map order does not matter: json.Marshal sorts keys
		b, _ := json.Marshal(vars)
		h.Write(b)
	}
	return hex.EncodeToString(h.Sum(nil))
}
