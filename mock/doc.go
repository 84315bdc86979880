// Package mock provides an in-memory OAuth2 issuer that facilitates unit
// testing of fetchers and refresh behavior without real network round-trips.
package mock
