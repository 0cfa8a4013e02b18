package auth

import (
	"testing"
	"time"

	"golang.org/x/oauth2"
)

var testConfig = Config{ClientID: "id", ClientSecret: "secret"}

func TestNewProviderValidation(t *testing.T) {
	token := &oauth2.Token{RefreshToken: "refresh"}

	if _, err := NewProvider(Config{}, token, nil); err == nil {
		t.Error("missing credentials should be rejected")
	}
	if _, err := NewProvider(testConfig, nil, nil); err == nil {
		t.Error("nil token should be rejected")
	}
	if _, err := NewProvider(testConfig, &oauth2.Token{}, nil); err == nil {
		t.Error("missing refresh token should be rejected")
	}
	if _, err := NewProvider(testConfig, token, nil); err != nil {
		t.Errorf("valid inputs rejected: %v", err)
	}
}

func TestTokenReturnsFreshTokenWithoutRefresh(t *testing.T) {
	token := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		Expiry:       time.Now().Add(time.Hour),
	}
	refreshed := false
	p, err := NewProvider(testConfig, token, func(*oauth2.Token) error {
		refreshed = true
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := p.Token()
	if err != nil {
		t.Fatal(err)
	}
	if got.AccessToken != "access" {
		t.Errorf("access token = %q", got.AccessToken)
	}
	if refreshed {
		t.Error("a token outside the expiry buffer should not refresh")
	}
}

func TestNewProviderFromRefreshTokenExpiresImmediately(t *testing.T) {
	p, err := NewProviderFromRefreshToken(testConfig, "refresh", nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.CurrentToken().Expiry.After(time.Now()) {
		t.Error("seed token should already be expired so the first use refreshes")
	}
}
