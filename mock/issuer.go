package mock

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"
)

// Issuer is a mock authorization server that signs RS256 access tokens for
// the client-credentials grant.
type Issuer struct {
	URL          string
	ClientID     string
	ClientSecret string
	TokenTTL     time.Duration

	// TokenHandler overrides the default /token endpoint when set.
	TokenHandler http.HandlerFunc

	privateKey *rsa.PrivateKey
	server     *httptest.Server
	requests   atomic.Int64
}

// NewIssuer starts a mock issuer backed by an httptest server.
func NewIssuer() (*Issuer, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, err
	}
	ret := &Issuer{
		ClientID:     "test_client_id",
		ClientSecret: "test_client_secret",
		TokenTTL:     time.Hour,
		privateKey:   key,
	}
	ret.server = httptest.NewServer(http.HandlerFunc(ret.route))
	ret.URL = ret.server.URL
	return ret, nil
}

// TokenURL returns the token endpoint address.
func (m *Issuer) TokenURL() string {
	return m.URL + "/token"
}

// Requests reports how many token requests the issuer has served.
func (m *Issuer) Requests() int64 {
	return m.requests.Load()
}

// Close shuts the underlying server down.
func (m *Issuer) Close() {
	m.server.Close()
}

func (m *Issuer) route(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/token":
		if m.TokenHandler != nil {
			m.TokenHandler(w, r)
			return
		}
		m.defaultTokenHandler(w, r)
	default:
		http.NotFound(w, r)
	}
}

// defaultTokenHandler handles /token requests
func (m *Issuer) defaultTokenHandler(w http.ResponseWriter, r *http.Request) {
	m.requests.Add(1)
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	if grantType := r.FormValue("grant_type"); grantType != "client_credentials" {
		http.Error(w, "Unsupported grant type", http.StatusBadRequest)
		return
	}
	clientID, clientSecret, ok := r.BasicAuth()
	if !ok {
		clientID = r.FormValue("client_id")
		clientSecret = r.FormValue("client_secret")
	}
	if clientID != m.ClientID || clientSecret != m.ClientSecret {
		http.Error(w, "Invalid client credentials", http.StatusUnauthorized)
		return
	}
	scope := r.FormValue("scope")
	accessToken, err := m.createJWT(clientID, scope, m.TokenTTL)
	if err != nil {
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	response := map[string]interface{}{
		"access_token": accessToken,
		"token_type":   "Bearer",
		"expires_in":   int(m.TokenTTL.Seconds()),
		"scope":        scope,
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}
