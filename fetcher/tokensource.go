package fetcher

import (
	"context"

	"github.com/viant/tokencache"
	"golang.org/x/oauth2"
)

// TokenSource adapts an oauth2.TokenSource as a Fetcher. Every key shares
// the one source; use it when the cache holds a single identity.
type TokenSource struct {
	Source oauth2.TokenSource
}

func (f *TokenSource) Fetch(ctx context.Context, key tokencache.Key) (*tokencache.Token, error) {
	token, err := f.Source.Token()
	if err != nil {
		return nil, err
	}
	ret := tokencache.FromOAuth2(token, key.Scope)
	ret.Subject = key.Subject
	return ret, nil
}

// NewTokenSource creates a token-source backed fetcher.
func NewTokenSource(source oauth2.TokenSource) *TokenSource {
	return &TokenSource{Source: source}
}
