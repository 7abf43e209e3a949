package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

// DefaultUserAgent is sent with every API request
const DefaultUserAgent = "labelconductor"

// ClientConfig holds everything needed to construct a Client
type ClientConfig struct {
	// Token is a GitHub personal access token or app token
	Token string

	// BaseURL overrides the REST API root, e.g. for GitHub Enterprise
	BaseURL string

	UserAgent string
}

// Client implements the LabelClient interface using the GitHub REST API
type Client struct {
	client *github.Client
}

// NewClient creates a new GitHub API client from the provided configuration
func NewClient(cfg ClientConfig) (*Client, error) {
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, &AuthError{Message: "GitHub token cannot be empty"}
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)

	client := github.NewClient(tc)

	// Enterprise hosts get the /api/v3/ and /api/uploads/ suffixes appended
	if cfg.BaseURL != "" {
		enterprise, err := client.WithEnterpriseURLs(cfg.BaseURL, cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", cfg.BaseURL, err)
		}
		client = enterprise
	}

	client.UserAgent = DefaultUserAgent
	if cfg.UserAgent != "" {
		client.UserAgent = cfg.UserAgent
	}

	return &Client{client: client}, nil
}

// CreateLabel creates a new label on the repository
func (c *Client) CreateLabel(ctx context.Context, owner, repo string, label Label) error {
	_, _, err := c.client.Issues.CreateLabel(ctx, owner, repo, &github.Label{
		Name:        github.String(label.Name),
		Color:       github.String(label.Color),
		Description: github.String(label.Description),
	})
	if err != nil {
		return WrapGitHubError(err, labelResource(owner, repo, label.Name))
	}
	return nil
}

// UpdateLabel edits an existing label, looked up by currentName
func (c *Client) UpdateLabel(ctx context.Context, owner, repo, currentName string, label Label) error {
	_, _, err := c.client.Issues.EditLabel(ctx, owner, repo, currentName, &github.Label{
		Name:        github.String(label.Name),
		Color:       github.String(label.Color),
		Description: github.String(label.Description),
	})
	if err != nil {
		return WrapGitHubError(err, labelResource(owner, repo, currentName))
	}
	return nil
}

func labelResource(owner, repo, name string) string {
	return fmt.Sprintf("label %s on %s/%s", name, owner, repo)
}
