package fetcher

import (
	"context"

	"github.com/viant/scy/auth/flow"
	"github.com/viant/tokencache"
	"golang.org/x/oauth2"
)

// Flow adapts a scy auth flow (browser, out of band) as a Fetcher; each
// fetch runs the flow against the configured client with the key scope.
type Flow struct {
	Config  *oauth2.Config
	Flow    flow.AuthFlow
	Options []flow.Option
}

func (f *Flow) Fetch(ctx context.Context, key tokencache.Key) (*tokencache.Token, error) {
	config := *f.Config
	if key.Scope != "" {
		config.Scopes = []string{key.Scope}
	}
	token, err := f.Flow.Token(ctx, &config, f.Options...)
	if err != nil {
		return nil, err
	}
	ret := tokencache.FromOAuth2(token, key.Scope)
	ret.Subject = key.Subject
	return ret, nil
}

// NewFlow creates an auth-flow backed fetcher.
func NewFlow(config *oauth2.Config, authFlow flow.AuthFlow, options ...flow.Option) *Flow {
	return &Flow{Config: config, Flow: authFlow, Options: options}
}
