package ratelimit

import (
	"net/http"
	"strings"
	"time"
)

// Rule limits one class of requests. A Path ending in "/" matches every path
// below it; all requests matching a rule share the client's bucket for that
// rule, so rendering ten different drafts costs ten tokens of one bucket.
type Rule struct {
	Name   string
	Method string
	Path   string
	// Limit requests are allowed per Window.
	Limit  int
	Window time.Duration
	// Burst is the bucket capacity; Limit when zero.
	Burst int
}

func (r Rule) matches(method, path string) bool {
	if r.Method != method {
		return false
	}
	if strings.HasSuffix(r.Path, "/") {
		return strings.HasPrefix(path, r.Path)
	}
	return r.Path == path
}

func (r Rule) capacity() int {
	if r.Burst > 0 {
		return r.Burst
	}
	return r.Limit
}

// Rule names used by DefaultRules and the RATE_LIMIT_<NAME>_* variables.
const (
	RuleGeneration = "generation"
	RuleRender     = "render"
	RuleEdit       = "edit"
)

// DefaultRules returns the built-in rules. Model calls are the most
// expensive, then PDF rendering, then writes. Reads fall through to the
// default limit.
func DefaultRules() []Rule {
	return []Rule{
		{Name: RuleGeneration, Method: http.MethodPost, Path: "/drafts", Limit: 10, Window: time.Hour, Burst: 2},
		{Name: RuleRender, Method: http.MethodPost, Path: "/render", Limit: 60, Window: time.Minute, Burst: 10},
		{Name: RuleRender, Method: http.MethodPost, Path: "/drafts/", Limit: 60, Window: time.Minute, Burst: 10},
		{Name: RuleEdit, Method: http.MethodPut, Path: "/drafts/", Limit: 100, Window: time.Minute, Burst: 20},
		{Name: RuleEdit, Method: http.MethodPut, Path: "/profiles/", Limit: 100, Window: time.Minute, Burst: 20},
	}
}

// match returns the first rule for the request. Exact paths are tried before
// prefixes so POST /drafts never falls into the POST /drafts/ rule.
func match(rules []Rule, method, path string) (Rule, bool) {
	for _, r := range rules {
		if !strings.HasSuffix(r.Path, "/") && r.matches(method, path) {
			return r, true
		}
	}
	for _, r := range rules {
		if strings.HasSuffix(r.Path, "/") && r.matches(method, path) {
			return r, true
		}
	}
	return Rule{}, false
}
