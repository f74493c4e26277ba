// Package auth resolves the GitHub token used to import issues. Tokens come
// from, in order, the projbook configuration, the GitHub CLI and the
// GITHUB_TOKEN environment variable.
package auth

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// TokenProvider defines the interface for obtaining a GitHub authentication token.
type TokenProvider interface {
	Name() string
	GetToken() (string, error)
}

// StaticProvider returns a token that was configured explicitly.
type StaticProvider struct {
	Token string
}

func (s StaticProvider) Name() string { return "config" }

// GetToken returns the configured token or an error when none was set.
func (s StaticProvider) GetToken() (string, error) {
	if strings.TrimSpace(s.Token) == "" {
		return "", errors.New("no token configured")
	}
	return strings.TrimSpace(s.Token), nil
}

// GhCliProvider obtains tokens by shelling out to the GitHub CLI (`gh auth token`).
type GhCliProvider struct{}

func (GhCliProvider) Name() string { return "gh CLI" }

// GetToken shells out to `gh auth token` to retrieve the current token.
func (GhCliProvider) GetToken() (string, error) {
	cmd := exec.Command("gh", "auth", "token", "--hostname", "github.com")
	output, err := cmd.Output()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) && execErr.Err == exec.ErrNotFound {
			return "", errors.New("gh CLI not found in PATH")
		}
		return "", fmt.Errorf("gh auth token failed: %w", err)
	}

	token := strings.TrimSpace(string(output))
	if token == "" {
		return "", errors.New("gh auth token returned empty token")
	}
	return token, nil
}

// EnvProvider obtains tokens from the GITHUB_TOKEN environment variable.
type EnvProvider struct{}

func (EnvProvider) Name() string { return "GITHUB_TOKEN" }

// GetToken reads the GITHUB_TOKEN environment variable.
func (EnvProvider) GetToken() (string, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return "", errors.New("GITHUB_TOKEN environment variable not set or empty")
	}
	return token, nil
}

// DefaultProviders is the lookup order used by GetToken.
func DefaultProviders(configToken string) []TokenProvider {
	return []TokenProvider{StaticProvider{Token: configToken}, GhCliProvider{}, EnvProvider{}}
}

// GetToken returns the first token any provider yields. When every provider
// fails the error lists each failure and how to fix it.
func GetToken(providers ...TokenProvider) (string, error) {
	var failures []string
	for _, p := range providers {
		token, err := p.GetToken()
		if err == nil {
			return token, nil
		}
		failures = append(failures, fmt.Sprintf("%s: %v", p.Name(), err))
	}

	return "", fmt.Errorf(
		"failed to obtain GitHub token (%s).\n"+
			"Please either:\n"+
			"  1. Set github.token in the projbook config file, or\n"+
			"  2. Run 'gh auth login' to authenticate with GitHub CLI, or\n"+
			"  3. Set the GITHUB_TOKEN environment variable with a personal access token",
		strings.Join(failures, "; "),
	)
}
