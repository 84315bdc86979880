package fetcher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/tokencache"
	"github.com/viant/tokencache/mock"
	"golang.org/x/oauth2/clientcredentials"
)

func TestClientCredentials_Fetch(t *testing.T) {
	issuer, err := mock.NewIssuer()
	require.NoError(t, err)
	defer issuer.Close()

	mint := NewClientCredentials(&clientcredentials.Config{
		ClientID:     issuer.ClientID,
		ClientSecret: issuer.ClientSecret,
		TokenURL:     issuer.TokenURL(),
	})

	key := tokencache.Key{Namespace: tokencache.DefaultNamespace, Scope: "reports", Subject: "alice"}
	token, err := mint.Fetch(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.Scheme)
	assert.NotEmpty(t, token.Secret)
	assert.Equal(t, "reports", token.Scope)
	assert.Equal(t, "alice", token.Subject)
	assert.True(t, token.IsValid(time.Now()))
	assert.Equal(t, int64(1), issuer.Requests())

	// the issued secret is a JWT whose exp matches the token expiry
	parsed, err := tokencache.TokenFromJWT(token.Secret, key.Scope)
	require.NoError(t, err)
	assert.WithinDuration(t, token.ExpiresAt, parsed.ExpiresAt, 5*time.Second)
}

func TestClientCredentials_FetchInvalidClient(t *testing.T) {
	issuer, err := mock.NewIssuer()
	require.NoError(t, err)
	defer issuer.Close()

	mint := NewClientCredentials(&clientcredentials.Config{
		ClientID:     issuer.ClientID,
		ClientSecret: "wrong_secret",
		TokenURL:     issuer.TokenURL(),
	})
	_, err = mint.Fetch(context.Background(), tokencache.NewKey("reports"))
	assert.Error(t, err)
}

func TestClientCredentials_RefreshesCache(t *testing.T) {
	issuer, err := mock.NewIssuer()
	require.NoError(t, err)
	defer issuer.Close()

	mint := NewClientCredentials(&clientcredentials.Config{
		ClientID:     issuer.ClientID,
		ClientSecret: issuer.ClientSecret,
		TokenURL:     issuer.TokenURL(),
	})
	cache := tokencache.New(tokencache.WithFetcher(mint))
	defer cache.Close()

	// a token already within the margin triggers an immediate issuer fetch
	key := tokencache.NewKey("reports")
	stale := &tokencache.Token{Scheme: "Bearer", Secret: "stale", Scope: "reports", ExpiresAt: time.Now().Add(time.Second)}
	_, err = cache.Add(key, stale)
	require.NoError(t, err)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if token, ok := cache.Lookup(key); ok && token.Secret != "stale" {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("cache was not refreshed from the issuer")
}
