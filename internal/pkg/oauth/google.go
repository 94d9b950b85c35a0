package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type GoogleService interface {
	// GenerateState generates a random state string for OAuth2 flows.
	GenerateState(userAgent string) string
	// RedirectURL generates the OAuth2 consent URL carrying the state.
	RedirectURL(state string) string
	// ExchangeCode exchanges the callback code for an OAuth2 token.
	ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error)
	// FetchUser fetches the verified Google user information.
	FetchUser(ctx context.Context, token *oauth2.Token) (GoogleUser, error)
}

// GoogleUser is the subset of the userinfo payload logins need.
type GoogleUser struct {
	GoogleID      string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
}

type googleService struct {
	config *oauth2.Config
}

func NewGoogleService(clientID, clientSecret, redirectURL string, scopes []string) GoogleService {
	return &googleService{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
			Endpoint:     google.Endpoint,
		},
	}
}

func (g *googleService) GenerateState(userAgent string) string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	state := fmt.Sprintf("%s.%s", base64.URLEncoding.EncodeToString(b), userAgent)
	return base64.URLEncoding.EncodeToString([]byte(state))
}

func (g *googleService) RedirectURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (g *googleService) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}
	return token, nil
}

func (g *googleService) FetchUser(ctx context.Context, token *oauth2.Token) (GoogleUser, error) {
	client := g.config.Client(ctx, token)

	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return GoogleUser{}, err
	}
	defer resp.Body.Close()

	var user GoogleUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return GoogleUser{}, err
	}
	return user, nil
}
