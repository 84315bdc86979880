// Package fetcher provides Fetcher implementations that mint replacement
// tokens from OAuth2 issuers, existing token sources and interactive auth
// flows.
package fetcher
