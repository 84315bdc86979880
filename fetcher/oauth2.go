package fetcher

import (
	"context"

	"github.com/viant/tokencache"
	"golang.org/x/oauth2/clientcredentials"
)

// ClientCredentials mints tokens with the OAuth2 client-credentials grant.
// The key scope overrides the configured scopes, so one fetcher serves every
// key of an issuer.
type ClientCredentials struct {
	Config *clientcredentials.Config
}

func (f *ClientCredentials) Fetch(ctx context.Context, key tokencache.Key) (*tokencache.Token, error) {
	config := *f.Config
	if key.Scope != "" {
		config.Scopes = []string{key.Scope}
	}
	token, err := config.Token(ctx)
	if err != nil {
		return nil, err
	}
	ret := tokencache.FromOAuth2(token, key.Scope)
	ret.Subject = key.Subject
	return ret, nil
}

// NewClientCredentials creates a client-credentials fetcher.
func NewClientCredentials(config *clientcredentials.Config) *ClientCredentials {
	return &ClientCredentials{Config: config}
}
