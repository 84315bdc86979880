// Package tokencache caches short-lived authentication credentials and
// proactively replaces them before they expire, so request paths never have
// to block on a round trip to the issuing service.
//
// Reads are served lock-free from a mirror of the authoritative state; all
// mutation funnels through a single serialized owner. Every Add arms a
// per-key refresh unit that asks the configured Fetcher for a replacement
// shortly before the current token expires and feeds the result back through
// Add, perpetuating the chain for as long as fetches succeed.
package tokencache
