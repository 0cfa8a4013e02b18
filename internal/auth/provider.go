package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// TokenURL is Strava's OAuth2 token endpoint.
const TokenURL = "https://www.strava.com/oauth/token"

// expiryBuffer refreshes tokens slightly before they actually expire so
// in-flight requests never race the expiry.
const expiryBuffer = 60 * time.Second

// Config holds the application's OAuth2 credentials.
type Config struct {
	ClientID     string
	ClientSecret string
}

// Provider yields valid access tokens, refreshing them as needed. It is an
// explicitly constructed, injected dependency: every component that needs
// authenticated calls receives one rather than reaching for process state.
// It implements oauth2.TokenSource.
type Provider struct {
	config    *oauth2.Config
	token     *oauth2.Token
	onRefresh func(*oauth2.Token) error
	mu        sync.Mutex
}

// NewProvider creates a Provider seeded with an existing token. onRefresh,
// if non-nil, is called with every newly obtained token so the caller can
// persist it; a persistence failure fails the refresh.
func NewProvider(cfg Config, token *oauth2.Token, onRefresh func(*oauth2.Token) error) (*Provider, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errors.New("client id and secret are required")
	}
	if token == nil || token.RefreshToken == "" {
		return nil, errors.New("a refresh token is required")
	}
	return &Provider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     oauth2.Endpoint{TokenURL: TokenURL},
		},
		token:     token,
		onRefresh: onRefresh,
	}, nil
}

// NewProviderFromRefreshToken creates a Provider that holds only a refresh
// token; the first Token call performs the initial exchange.
func NewProviderFromRefreshToken(cfg Config, refreshToken string, onRefresh func(*oauth2.Token) error) (*Provider, error) {
	// Expiry in the past forces a refresh on first use.
	return NewProvider(cfg, &oauth2.Token{
		RefreshToken: refreshToken,
		Expiry:       time.Now().Add(-time.Hour),
	}, onRefresh)
}

// Token returns a valid token, refreshing through the OAuth2 endpoint when
// the current one is within the expiry buffer.
func (p *Provider) Token() (*oauth2.Token, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Until(p.token.Expiry) > expiryBuffer {
		return p.token, nil
	}

	src := p.config.TokenSource(context.Background(), p.token)
	newToken, err := src.Token()
	if err != nil {
		return nil, err
	}

	if p.onRefresh != nil {
		if err := p.onRefresh(newToken); err != nil {
			return nil, err
		}
	}

	p.token = newToken
	return newToken, nil
}

// CurrentToken returns the held token without refreshing.
func (p *Provider) CurrentToken() *oauth2.Token {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token
}
