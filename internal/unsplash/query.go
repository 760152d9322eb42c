// Package unsplash talks to the Unsplash photo API.
package unsplash

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultBaseURL is the public Unsplash API root.
	DefaultBaseURL = "https://api.unsplash.com"
	// DefaultPage is the only page ever requested.
	DefaultPage = 1
	// DefaultPerPage is the fixed page size.
	DefaultPerPage = 40
)

// BuildURL returns the listing endpoint for an empty term and the search
// endpoint otherwise. The parameter order matches the API documentation.
func BuildURL(base, accessKey, term string) string {
	base = strings.TrimRight(base, "/")
	page := strconv.Itoa(DefaultPage)
	perPage := strconv.Itoa(DefaultPerPage)
	key := url.QueryEscape(accessKey)

	if term == "" {
		return base + "/photos/?page=" + page + "&per_page=" + perPage + "&client_id=" + key
	}
	return base + "/search/photos?page=" + page +
		"&query=" + url.QueryEscape(term) +
		"&per_page=" + perPage +
		"&client_id=" + key
}

// IsSearchURL reports whether u targets the search endpoint.
func IsSearchURL(u string) bool {
	parsed, err := url.Parse(u)
	if err != nil {
		return false
	}
	return strings.HasSuffix(strings.TrimRight(parsed.Path, "/"), "/search/photos")
}

// redactURL hides the access key so URLs can be logged.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	q := u.Query()
	if q.Get("client_id") == "" {
		return u.String()
	}
	q.Set("client_id", "REDACTED")
	clone := *u
	clone.RawQuery = q.Encode()
	return clone.String()
}
