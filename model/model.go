package model

import (
	"errors"
	"fmt"
	"strings"
)

// Repo identifies a repository on the github instance
type Repo struct {
	Owner string
	Repo  string
}

func (r Repo) String() string {
	return r.Owner + "/" + r.Repo
}

// ParseRepo splits an "owner/name" string on the first slash
func ParseRepo(s string) (repo Repo, err error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		err = fmt.Errorf("repository must be in the form owner/name: %s", s)
		return
	}
	repo = Repo{Owner: parts[0], Repo: parts[1]}
	return
}

// The Context type carries what the CI host knows about the triggering commit
type Context struct {
	// Ref is the git ref (or SHA) the deployment is requested for
	Ref string
	// Repo is the repository running the workflow, empty when unknown
	Repo Repo
}

// ErrNoRepository is returned by DefaultRepo when the host did not supply a repository
var ErrNoRepository = errors.New("context.repo requires a GITHUB_REPOSITORY environment variable like 'owner/repo'")

// DefaultRepo returns the repository running the workflow
func (c *Context) DefaultRepo() (Repo, error) {
	if c.Repo.Owner == "" || c.Repo.Repo == "" {
		return Repo{}, ErrNoRepository
	}
	return c.Repo, nil
}

// The DeploymentRequest type carries all the information needed to request a deployment.
// Owner and Repo address the API call, the remaining fields form the request body.
type DeploymentRequest struct {
	// The repo owner
	Owner string `json:"-"`
	// the repo name
	Repo string `json:"-"`

	Ref                   string      `json:"ref"`
	Task                  string      `json:"task,omitempty"`
	AutoMerge             *bool       `json:"auto_merge,omitempty"`
	RequiredContexts      []string    `json:"required_contexts"`
	Payload               interface{} `json:"payload,omitempty"`
	Environment           string      `json:"environment"`
	Description           string      `json:"description"`
	TransientEnvironment  *bool       `json:"transient_environment,omitempty"`
	ProductionEnvironment *bool       `json:"production_environment,omitempty"`
}

// Deployment is the record created by the github instance
type Deployment struct {
	ID  int64
	URL string
}
