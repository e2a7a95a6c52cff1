package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

// ProviderGitHub is the provider ID stored on linked accounts.
const ProviderGitHub = "github"

const defaultGitHubAPI = "https://api.github.com"

// ErrNoVerifiedEmail is returned when GitHub exposes no usable e-mail address.
var ErrNoVerifiedEmail = errors.New("github account has no verified email")

// GitHubProfile is the identity returned by a completed GitHub login.
type GitHubProfile struct {
	ID          string
	Login       string
	Name        string
	Email       string
	AvatarURL   string
	AccessToken string
	Scope       string
}

// GitHubProvider performs the OAuth2 authorization code flow against GitHub.
type GitHubProvider struct {
	config  *oauth2.Config
	apiBase string
}

// NewGitHubProvider creates a provider for the given OAuth app.
func NewGitHubProvider(clientID, clientSecret, redirectURL string) *GitHubProvider {
	return &GitHubProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     github.Endpoint,
		},
		apiBase: defaultGitHubAPI,
	}
}

// WithEndpoints points the provider at alternative OAuth and API hosts.
func (p *GitHubProvider) WithEndpoints(endpoint oauth2.Endpoint, apiBase string) *GitHubProvider {
	p.config.Endpoint = endpoint
	p.apiBase = strings.TrimRight(apiBase, "/")
	return p
}

// Configured reports whether client credentials are present.
func (p *GitHubProvider) Configured() bool {
	return p.config.ClientID != "" && p.config.ClientSecret != ""
}

// AuthCodeURL returns the GitHub consent URL for state.
func (p *GitHubProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// Exchange trades an authorization code for the user's GitHub profile.
func (p *GitHubProvider) Exchange(ctx context.Context, code string) (*GitHubProfile, error) {
	tok, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}
	client := p.config.Client(ctx, tok)

	var user struct {
		ID        int64  `json:"id"`
		Login     string `json:"login"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := p.getJSON(ctx, client, "/user", &user); err != nil {
		return nil, err
	}

	email := user.Email
	if email == "" {
		email, err = p.primaryEmail(ctx, client)
		if err != nil {
			return nil, err
		}
	}

	name := user.Name
	if name == "" {
		name = user.Login
	}

	scope, _ := tok.Extra("scope").(string)

	return &GitHubProfile{
		ID:          strconv.FormatInt(user.ID, 10),
		Login:       user.Login,
		Name:        name,
		Email:       strings.ToLower(email),
		AvatarURL:   user.AvatarURL,
		AccessToken: tok.AccessToken,
		Scope:       scope,
	}, nil
}

func (p *GitHubProvider) primaryEmail(ctx context.Context, client *http.Client) (string, error) {
	var emails []struct {
		Email    string `json:"email"`
		Primary  bool   `json:"primary"`
		Verified bool   `json:"verified"`
	}
	if err := p.getJSON(ctx, client, "/user/emails", &emails); err != nil {
		return "", err
	}

	fallback := ""
	for _, e := range emails {
		if !e.Verified {
			continue
		}
		if e.Primary {
			return e.Email, nil
		}
		if fallback == "" {
			fallback = e.Email
		}
	}
	if fallback == "" {
		return "", ErrNoVerifiedEmail
	}
	return fallback, nil
}

func (p *GitHubProvider) getJSON(ctx context.Context, client *http.Client, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.apiBase+path, nil)
	if err != nil {
		return fmt.Errorf("build github request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("github %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode github %s: %w", path, err)
	}
	return nil
}
