package services

import (
	"context"
	"log/slog"

	"oatmeal/internal/config"
	"oatmeal/internal/domain/models"
	"oatmeal/internal/graphql"
)

// DefaultPageSize is the fixed default for paginated accessors.
const DefaultPageSize = 10

// Querier is the slice of the GraphQL client the content service needs.
type Querier interface {
	Run(ctx context.Context, doc string, vars map[string]interface{}, out interface{}) error
}

// ClientFactory builds a request-scoped querier carrying the given
// preview token ("" for published-only access).
type ClientFactory func(previewToken string) Querier

// ContentService exposes one accessor per content type. Each accessor
// performs exactly one round trip, unwraps the response envelope and
// returns nil when the backend has no matching node. Transport failures
// are not caught here; the caller decides between a fallback render and
// an error state.
type ContentService struct {
	log     *slog.Logger
	clients ClientFactory
}

func NewContentService(log *slog.Logger, cfg config.WordPressConfig) *ContentService {
	return &ContentService{
		log: log,
		clients: func(previewToken string) Querier {
			return graphql.NewRequestClient(log, cfg, previewToken)
		},
	}
}

// NewContentServiceWithFactory is used by tests and by callers that
// need a non-default transport (e.g. the cached client).
func NewContentServiceWithFactory(log *slog.Logger, clients ClientFactory) *ContentService {
	return &ContentService{log: log, clients: clients}
}

func (s *ContentService) client(ctx context.Context) Querier {
	return s.clients(PreviewTokenFromContext(ctx))
}

func (s *ContentService) GetGeneralSettings(ctx context.Context) (*models.GeneralSettings, error) {
	var resp struct {
		GeneralSettings *models.GeneralSettings `json:"generalSettings"`
	}
	if err := s.client(ctx).Run(ctx, graphql.QueryGeneralSettings, nil, &resp); err != nil {
		return nil, err
	}
	return resp.GeneralSettings, nil
}

// GetPosts returns up to first posts after the given cursor. after ""
// starts from the beginning.
func (s *ContentService) GetPosts(ctx context.Context, first int, after string) (*models.PostList, error) {
	if first <= 0 {
		first = DefaultPageSize
	}

	vars := map[string]interface{}{"first": first}
	if after != "" {
		vars["after"] = after
	}

	var resp struct {
		Posts *struct {
			PageInfo models.PageInfo `json:"pageInfo"`
			Nodes    []models.Post   `json:"nodes"`
		} `json:"posts"`
	}
	if err := s.client(ctx).Run(ctx, graphql.QueryPosts, vars, &resp); err != nil {
		return nil, err
	}
	if resp.Posts == nil {
		return nil, nil
	}

	return &models.PostList{Posts: resp.Posts.Nodes, PageInfo: resp.Posts.PageInfo}, nil
}

func (s *ContentService) GetPostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var resp struct {
		Post *models.Post `json:"post"`
	}
	err := s.client(ctx).Run(ctx, graphql.QueryPostBySlug, map[string]interface{}{"slug": slug}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Post, nil
}

func (s *ContentService) GetPages(ctx context.Context) ([]models.Page, error) {
	var resp struct {
		Pages *struct {
			Nodes []models.Page `json:"nodes"`
		} `json:"pages"`
	}
	if err := s.client(ctx).Run(ctx, graphql.QueryPages, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Pages == nil {
		return nil, nil
	}
	return resp.Pages.Nodes, nil
}

func (s *ContentService) GetPageBySlug(ctx context.Context, slug string) (*models.Page, error) {
	var resp struct {
		Page *models.Page `json:"page"`
	}
	err := s.client(ctx).Run(ctx, graphql.QueryPageBySlug, map[string]interface{}{"slug": slug}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Page, nil
}

func (s *ContentService) GetMenuItems(ctx context.Context, location string) ([]models.MenuItem, error) {
	var resp struct {
		MenuItems *struct {
			Nodes []models.MenuItem `json:"nodes"`
		} `json:"menuItems"`
	}
	err := s.client(ctx).Run(ctx, graphql.QueryMenuItems, map[string]interface{}{"location": location}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.MenuItems == nil {
		return nil, nil
	}
	return resp.MenuItems.Nodes, nil
}

func (s *ContentService) SearchPosts(ctx context.Context, search string, first int) ([]models.Post, error) {
	if first <= 0 {
		first = DefaultPageSize
	}

	var resp struct {
		Posts *struct {
			Nodes []models.Post `json:"nodes"`
		} `json:"posts"`
	}
	err := s.client(ctx).Run(ctx, graphql.QuerySearchPosts, map[string]interface{}{
		"search": search,
		"first":  first,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Posts == nil {
		return nil, nil
	}
	return resp.Posts.Nodes, nil
}

func (s *ContentService) GetCategories(ctx context.Context) ([]models.Category, error) {
	var resp struct {
		Categories *struct {
			Nodes []models.Category `json:"nodes"`
		} `json:"categories"`
	}
	if err := s.client(ctx).Run(ctx, graphql.QueryCategories, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Categories == nil {
		return nil, nil
	}
	return resp.Categories.Nodes, nil
}

func (s *ContentService) GetPostsByCategory(ctx context.Context, category string, first int) ([]models.Post, error) {
	if first <= 0 {
		first = DefaultPageSize
	}

	var resp struct {
		Posts *struct {
			Nodes []models.Post `json:"nodes"`
		} `json:"posts"`
	}
	err := s.client(ctx).Run(ctx, graphql.QueryPostsByCategory, map[string]interface{}{
		"category": category,
		"first":    first,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Posts == nil {
		return nil, nil
	}
	return resp.Posts.Nodes, nil
}

// GetPreviewPost fetches a draft-visible post by database id using the
// presented bearer token directly, bypassing cookie resolution.
func (s *ContentService) GetPreviewPost(ctx context.Context, id, token string) (*models.Post, error) {
	var resp struct {
		Post *models.Post `json:"post"`
	}
	err := s.clients(token).Run(ctx, graphql.QueryPreviewPost, map[string]interface{}{"id": id}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Post, nil
}

func (s *ContentService) GetHomepageContent(ctx context.Context) (models.PageContent[models.HomepageFields], error) {
	var resp struct {
		Page *struct {
			models.Page
			HomepageFields *models.HomepageFields `json:"homepageFields"`
		} `json:"page"`
	}
	if err := s.client(ctx).Run(ctx, graphql.QueryHomepageContent, nil, &resp); err != nil {
		return models.PageContent[models.HomepageFields]{}, err
	}
	if resp.Page == nil {
		return models.PageContent[models.HomepageFields]{}, nil
	}
	return models.PageContent[models.HomepageFields]{Page: &resp.Page.Page, Fields: resp.Page.HomepageFields}, nil
}

func (s *ContentService) GetPricingPageContent(ctx context.Context) (models.PageContent[models.PricingFields], error) {
	var resp struct {
		Page *struct {
			models.Page
			PricingFields *models.PricingFields `json:"pricingFields"`
		} `json:"page"`
	}
	if err := s.client(ctx).Run(ctx, graphql.QueryPricingPageContent, nil, &resp); err != nil {
		return models.PageContent[models.PricingFields]{}, err
	}
	if resp.Page == nil {
		return models.PageContent[models.PricingFields]{}, nil
	}
	return models.PageContent[models.PricingFields]{Page: &resp.Page.Page, Fields: resp.Page.PricingFields}, nil
}

func (s *ContentService) GetAboutPageContent(ctx context.Context) (models.PageContent[models.AboutFields], error) {
	var resp struct {
		Page *struct {
			models.Page
			AboutFields *models.AboutFields `json:"aboutFields"`
		} `json:"page"`
	}
	if err := s.client(ctx).Run(ctx, graphql.QueryAboutPageContent, nil, &resp); err != nil {
		return models.PageContent[models.AboutFields]{}, err
	}
	if resp.Page == nil {
		return models.PageContent[models.AboutFields]{}, nil
	}
	return models.PageContent[models.AboutFields]{Page: &resp.Page.Page, Fields: resp.Page.AboutFields}, nil
}

func (s *ContentService) GetContactPageContent(ctx context.Context) (models.PageContent[models.ContactFields], error) {
	var resp struct {
		Page *struct {
			models.Page
			ContactFields *models.ContactFields `json:"contactFields"`
		} `json:"page"`
	}
	if err := s.client(ctx).Run(ctx, graphql.QueryContactPageContent, nil, &resp); err != nil {
		return models.PageContent[models.ContactFields]{}, err
	}
	if resp.Page == nil {
		return models.PageContent[models.ContactFields]{}, nil
	}
	return models.PageContent[models.ContactFields]{Page: &resp.Page.Page, Fields: resp.Page.ContactFields}, nil
}

func (s *ContentService) GetSiteOptions(ctx context.Context) (*models.SiteOptions, error) {
	var resp struct {
		SiteOptions *models.SiteOptions `json:"siteOptions"`
	}
	if err := s.client(ctx).Run(ctx, graphql.QuerySiteOptions, nil, &resp); err != nil {
		return nil, err
	}
	return resp.SiteOptions, nil
}
