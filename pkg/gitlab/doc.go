// Package gitlab fetches issues from a GitLab project through the v4
// REST API.
//
// The [Client] wraps an HTTP client with response caching and retry
// with backoff, authenticating with a private token passed either
// literally or as a path to a file holding it (see [Token]). Fetched
// issues come back as raw JSON objects so exporters can pick arbitrary
// fields from them.
package gitlab
