package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/tokencache"
)

type entry struct {
	Namespace string    `json:"namespace,omitempty"`
	Scope     string    `json:"scope"`
	Subject   string    `json:"subject,omitempty"`
	Scheme    string    `json:"scheme"`
	Secret    string    `json:"secret"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Service saves and restores cache contents through the afs abstraction.
type Service struct {
	fs afs.Service
}

// New creates a snapshot service.
func New() *Service {
	return &Service{fs: afs.New()}
}

// Save uploads a point-in-time copy of the cache contents to URL.
func (s *Service) Save(ctx context.Context, URL string, cache *tokencache.Cache) error {
	var entries []entry
	cache.Range(func(key tokencache.Key, token *tokencache.Token) bool {
		entries = append(entries, entry{
			Namespace: key.Namespace,
			Scope:     key.Scope,
			Subject:   key.Subject,
			Scheme:    token.Scheme,
			Secret:    token.Secret,
			ExpiresAt: token.ExpiresAt,
		})
		return true
	})
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data))
}

// Load replays persisted entries through cache.Add so refreshes re-arm;
// entries already within the refresh margin trigger an immediate fetch.
func (s *Service) Load(ctx context.Context, URL string, cache *tokencache.Cache) error {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return err
	}
	var entries []entry
	if err = json.Unmarshal(data, &entries); err != nil {
		return err
	}
	for _, e := range entries {
		key := tokencache.Key{Namespace: e.Namespace, Scope: e.Scope, Subject: e.Subject}
		token := &tokencache.Token{
			Scheme:    e.Scheme,
			Secret:    e.Secret,
			Scope:     e.Scope,
			Subject:   e.Subject,
			ExpiresAt: e.ExpiresAt,
		}
		if _, err = cache.Add(key, token); err != nil {
			return err
		}
	}
	return nil
}
