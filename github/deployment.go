package github

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/redbadger/create-deployment/model"
)

// deploymentResponse is the subset of the deployment record we read back.
// Message is only set when no deployment was created (e.g. 202 after an auto-merge).
type deploymentResponse struct {
	ID      int64  `json:"id"`
	URL     string `json:"url"`
	Message string `json:"message"`
}

// CreateDeployment requests a deployment of req.Ref in req.Owner/req.Repo
func (c *Client) CreateDeployment(ctx context.Context, req *model.DeploymentRequest) (deployment *model.Deployment, err error) {
	u := fmt.Sprintf("repos/%v/%v/deployments", req.Owner, req.Repo)
	log.WithFields(log.Fields{
		"repository":  req.Owner + "/" + req.Repo,
		"ref":         req.Ref,
		"environment": req.Environment,
	}).Debug("creating deployment")

	httpReq, err := c.gh.NewRequest("POST", u, req)
	if err != nil {
		return nil, fmt.Errorf("cannot build deployment request: %v", err)
	}

	var created deploymentResponse
	resp, err := c.gh.Do(ctx, httpReq, &created)
	if err != nil {
		return nil, err
	}

	if created.ID == 0 {
		msg := created.Message
		if msg == "" {
			msg = fmt.Sprintf("unexpected response status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("deployment not created: %s", msg)
	}

	log.WithField("url", created.URL).Debug("deployment created")
	deployment = &model.Deployment{ID: created.ID, URL: created.URL}
	return
}
