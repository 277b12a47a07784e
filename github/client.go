package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/github"
	"golang.org/x/oauth2"
)

// Client creates deployments on a github instance
type Client struct {
	gh *github.Client
}

// NewClient creates a new github client for the apiURL,
// authenticated with the supplied token
func NewClient(ctx context.Context, apiURL, token string) (client *Client, err error) {
	root, err := APIRoot(apiURL)
	if err != nil {
		return
	}

	tokenService := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tokenClient := oauth2.NewClient(ctx, tokenService)

	gh, err := github.NewEnterpriseClient(root, root, tokenClient)
	if err != nil {
		err = fmt.Errorf("cannot create github client: %v", err)
		return
	}

	client = &Client{gh: gh}
	return
}
