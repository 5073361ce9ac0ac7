package driver

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/sailfin-io/tap-xero/constants"
	"github.com/sailfin-io/tap-xero/utils/logger"
)

type AuthMode int

const (
	AuthModeDirect AuthMode = iota
	AuthModeProxy
)

func (m AuthMode) String() string {
	if m == AuthModeProxy {
		return "proxy"
	}
	return "direct"
}

// Authenticator owns the token lifecycle for one credential set. A single
// instance is shared by every stream worker in a run; the provider rotates
// refresh tokens on use, so a duplicate concurrent refresh would invalidate
// the token the other caller is about to send. The mutex is held across the
// refresh round-trip, which both memoizes the token and guarantees at most
// one refresh in flight.
type Authenticator struct {
	mode   AuthMode
	client *http.Client

	// direct mode
	clientID      string
	clientSecret  string
	tokenEndpoint string

	// proxy mode
	proxyURL  string
	proxyAuth string

	mu           sync.Mutex
	refreshToken string
	accessToken  string
	obtainedAt   time.Time
	ttl          time.Duration
}

// NewAuthenticator selects the auth mode once, from which credential fields
// are populated. Misconfiguration fails here, before any network call.
func NewAuthenticator(creds *Credentials, client *http.Client) (*Authenticator, error) {
	if creds.RefreshToken == "" {
		return nil, &ConfigError{Reason: "oauth_credentials.refresh_token is required"}
	}

	a := &Authenticator{
		client:        client,
		refreshToken:  creds.RefreshToken,
		tokenEndpoint: constants.TokenEndpoint,
	}

	switch {
	case creds.directMode() && creds.proxyMode():
		return nil, &ConfigError{Reason: "oauth_credentials configured for both direct and proxy mode"}
	case creds.directMode():
		a.mode = AuthModeDirect
		a.clientID = creds.ClientID
		a.clientSecret = creds.ClientSecret
	case creds.proxyMode():
		a.mode = AuthModeProxy
		a.proxyURL = creds.RefreshProxyURL
		a.proxyAuth = creds.RefreshProxyAuth
	default:
		return nil, &ConfigError{Reason: "oauth_credentials has neither client_id/client_secret nor refresh_proxy_url"}
	}

	return a, nil
}

func (a *Authenticator) Mode() AuthMode {
	return a.mode
}

// Token returns a valid bearer token, refreshing when the cached one is
// stale. Concurrent callers during a refresh block and reuse its result.
func (a *Authenticator) Token(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.accessToken != "" && time.Now().Before(a.obtainedAt.Add(a.ttl-constants.TokenRefreshSlack)) {
		return a.accessToken, nil
	}

	if err := a.refresh(ctx); err != nil {
		return "", err
	}
	return a.accessToken, nil
}

// Invalidate drops the cached token so the next Token call refreshes. Used
// after a 401 when the upstream rejected a token we still considered fresh.
func (a *Authenticator) Invalidate() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.accessToken = ""
}

// refresh must be called with the mutex held.
func (a *Authenticator) refresh(ctx context.Context) error {
	if a.mode == AuthModeProxy {
		return a.refreshProxy(ctx)
	}
	return a.refreshDirect(ctx)
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

func (a *Authenticator) refreshDirect(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", a.refreshToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.tokenEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build token request: %s", err)
	}
	req.SetBasicAuth(a.clientID, a.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	token, err := a.exchange(req)
	if err != nil {
		return err
	}

	a.accessToken = token.AccessToken
	a.obtainedAt = time.Now()
	a.ttl = constants.DefaultTokenTTL
	if token.ExpiresIn > 0 {
		a.ttl = time.Duration(token.ExpiresIn) * time.Second
	}

	// the provider invalidates the old refresh token on use; the rotated
	// one must be carried for any further refresh in this process
	if token.RefreshToken != "" {
		a.refreshToken = token.RefreshToken
		logger.Debugf("refresh token rotated by provider")
	}

	logger.Infof("OAuth token refresh successful")
	return nil
}

func (a *Authenticator) refreshProxy(ctx context.Context) error {
	body, err := json.Marshal(map[string]string{
		"refresh_token": a.refreshToken,
		"grant_type":    "refresh_token",
	})
	if err != nil {
		return fmt.Errorf("failed to marshal proxy token request: %s", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.proxyURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build proxy token request: %s", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if a.proxyAuth != "" {
		req.Header.Set("Authorization", a.proxyAuth)
	}

	token, err := a.exchange(req)
	if err != nil {
		return err
	}

	// rotation, if any, is owned by the proxy
	a.accessToken = token.AccessToken
	a.obtainedAt = time.Now()
	a.ttl = constants.DefaultTokenTTL
	if token.ExpiresIn > 0 {
		a.ttl = time.Duration(token.ExpiresIn) * time.Second
	}

	logger.Infof("OAuth token refresh successful via proxy")
	return nil
}

func (a *Authenticator) exchange(req *http.Request) (*tokenResponse, error) {
	res, err := a.client.Do(req)
	if err != nil {
		return nil, &AuthError{Body: err.Error()}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, &AuthError{Status: res.StatusCode, Body: err.Error()}
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &AuthError{Status: res.StatusCode, Body: string(raw)}
	}

	token := &tokenResponse{}
	if err := json.Unmarshal(raw, token); err != nil {
		return nil, &AuthError{Status: res.StatusCode, Body: fmt.Sprintf("undecodable token response: %s", err)}
	}
	if token.AccessToken == "" {
		return nil, &AuthError{Status: res.StatusCode, Body: "token response missing access_token"}
	}

	return token, nil
}
