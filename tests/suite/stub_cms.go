package suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// StubCMS stands in for the WordPress GraphQL endpoint. It answers the
// catalog queries with fixed fixtures and records which operations were
// asked, so tests can assert on round-trip counts.
type StubCMS struct {
	Server     *httptest.Server
	validToken string

	mu         sync.Mutex
	operations []string
}

func NewStubCMS(validToken string) *StubCMS {
	cms := &StubCMS{validToken: validToken}
	cms.Server = httptest.NewServer(http.HandlerFunc(cms.handle))
	return cms
}

func (s *StubCMS) Close() {
	s.Server.Close()
}

// Operations returns how many times the named operation was queried.
func (s *StubCMS) Operations(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, op := range s.operations {
		if op == name {
			n++
		}
	}
	return n
}

func (s *StubCMS) authorized(r *http.Request) bool {
	return r.Header.Get("Authorization") == "Bearer "+s.validToken
}

func (s *StubCMS) handle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query     string                 `json:"query"`
		Variables map[string]interface{} `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	op := operationName(req.Query)

	s.mu.Lock()
	s.operations = append(s.operations, op)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	switch op {
	case "VerifyToken":
		if !s.authorized(r) {
			writeJSON(w, `{"errors":[{"message":"unauthorized"}]}`)
			return
		}
		writeJSON(w, `{"data":{"viewer":{"id":"dXNlcjox","name":"editor"}}}`)

	case "GetGeneralSettings":
		writeJSON(w, `{"data":{"generalSettings":{"title":"Oatmeal","description":"Marketing sites from WordPress","url":"http://localhost:3000"}}}`)

	case "GetSiteOptions":
		writeJSON(w, `{"data":{"siteOptions":{
			"header":{"navigation":[
				{"label":"Home","url":"/"},
				{"label":"Blog","url":"/blog"},
				{"label":"Pricing","url":"/pricing"}
			]},
			"footer":{"copyright":"© CMS Footer"},
			"seo":{}
		}}}`)

	case "GetHomepageContent":
		writeJSON(w, `{"data":{"page":{
			"id":"cGFnZTox","databaseId":2,"title":"Home","slug":"home","uri":"/",
			"homepageFields":{"heroHeadline":"Welcome from the CMS"}
		}}}`)

	case "GetPosts":
		writeJSON(w, `{"data":{"posts":{
			"pageInfo":{"hasNextPage":false},
			"nodes":[{
				"id":"cG9zdDox","databaseId":1,
				"title":"Connecting the site to WordPress",
				"slug":"connecting-the-site-to-wordpress",
				"excerpt":"<p>A walkthrough of the GraphQL wiring.</p>",
				"date":"2026-02-10T09:00:00Z","modified":"2026-02-10T09:00:00Z",
				"status":"publish",
				"author":{"node":{"id":"dXNlcjox","name":"editor"}}
			}]
		}}}`)

	case "GetPostBySlug":
		slug, _ := req.Variables["slug"].(string)
		if slug != "connecting-the-site-to-wordpress" {
			writeJSON(w, `{"data":{"post":null}}`)
			return
		}
		writeJSON(w, `{"data":{"post":{
			"id":"cG9zdDox","databaseId":1,
			"title":"Connecting the site to WordPress",
			"slug":"connecting-the-site-to-wordpress",
			"content":"<p>A walkthrough of the GraphQL wiring.</p>",
			"date":"2026-02-10T09:00:00Z","modified":"2026-02-10T09:00:00Z",
			"status":"publish",
			"author":{"node":{"id":"dXNlcjox","name":"editor"}}
		}}}`)

	case "GetPreviewPost":
		if !s.authorized(r) {
			writeJSON(w, `{"errors":[{"message":"unauthorized"}]}`)
			return
		}
		writeJSON(w, `{"data":{"post":{
			"id":"cG9zdDo0Mg==","databaseId":42,
			"title":"Redesigning our pricing page",
			"slug":"redesigning-our-pricing-page",
			"content":"<p>Still a draft.</p>",
			"date":"2026-02-12T09:00:00Z","modified":"2026-02-12T09:00:00Z",
			"status":"draft"
		}}}`)

	default:
		// pages, pricing, about, contact and the rest: nothing configured
		writeJSON(w, `{"data":{}}`)
	}
}

func operationName(query string) string {
	rest, ok := strings.CutPrefix(strings.TrimSpace(query), "query ")
	if !ok {
		return ""
	}
	for i, r := range rest {
		if r == '(' || r == ' ' || r == '{' || r == '\n' {
			return rest[:i]
		}
	}
	return rest
}

func writeJSON(w http.ResponseWriter, body string) {
	_, _ = w.Write([]byte(body))
}
