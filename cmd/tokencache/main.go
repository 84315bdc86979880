package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/viant/tokencache"
	"github.com/viant/tokencache/fetcher"
	"golang.org/x/oauth2/clientcredentials"
)

type options struct {
	TokenURL     string        `short:"u" long:"tokenURL" description:"issuer token endpoint" required:"true"`
	ClientID     string        `short:"c" long:"clientID" description:"oauth2 client id" required:"true"`
	ClientSecret string        `short:"s" long:"clientSecret" description:"oauth2 client secret"`
	Scope        string        `long:"scope" description:"scope to request" required:"true"`
	Subject      string        `long:"subject" description:"impersonation subject"`
	Watch        time.Duration `short:"w" long:"watch" description:"keep running, printing the cached token at this interval"`
}

func main() {
	opts := &options{}
	if _, err := flags.Parse(opts); err != nil {
		log.Fatal(err)
	}
	mint := fetcher.NewClientCredentials(&clientcredentials.Config{
		ClientID:     opts.ClientID,
		ClientSecret: opts.ClientSecret,
		TokenURL:     opts.TokenURL,
	})
	cache := tokencache.New(tokencache.WithFetcher(mint))
	defer cache.Close()

	key := tokencache.Key{Namespace: tokencache.DefaultNamespace, Scope: opts.Scope, Subject: opts.Subject}
	token, err := mint.Fetch(context.Background(), key)
	if err != nil {
		log.Fatal(err)
	}
	if _, err = cache.Add(key, token); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s %s (expires %s)\n", token.Scheme, token.Secret, token.ExpiresAt.Format(time.RFC3339))
	if opts.Watch <= 0 {
		return
	}
	for range time.Tick(opts.Watch) {
		cached, ok := cache.Lookup(key)
		if !ok {
			log.Printf("no live token for %v", key)
			continue
		}
		fmt.Printf("%s %s (expires %s)\n", cached.Scheme, cached.Secret, cached.ExpiresAt.Format(time.RFC3339))
	}
}
