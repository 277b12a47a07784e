package deployment

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/redbadger/create-deployment/constants"
	"github.com/redbadger/create-deployment/model"
)

// Inputs reads the step's configuration
type Inputs interface {
	GetInput(name string, required bool) (string, error)
}

// Reporter reports the outcome of the step to the CI host
type Reporter interface {
	Info(msg string)
	SetOutput(name, value string)
	SetFailed(msg string)
}

// Core is the CI host as seen by Run
type Core interface {
	Inputs
	Reporter
}

// Deployer creates deployments on the repository host
type Deployer interface {
	CreateDeployment(ctx context.Context, req *model.DeploymentRequest) (*model.Deployment, error)
}

// ClientFactory creates a Deployer authenticated with token
type ClientFactory func(token string) (Deployer, error)

// Run requests one deployment for invocation.Ref and reports the created
// deployment's id as the deployment_id output. Failures are reported
// through core.SetFailed and never returned.
func Run(ctx context.Context, invocation *model.Context, newClient ClientFactory, core Core) {
	id, err := create(ctx, invocation, newClient, core)
	if err != nil {
		core.SetFailed(err.Error())
		return
	}

	core.Info(fmt.Sprintf("Deployment created: %d", id))
	core.SetOutput(constants.OutputDeploymentID, strconv.FormatInt(id, 10))
}

func create(ctx context.Context, invocation *model.Context, newClient ClientFactory, inputs Inputs) (id int64, err error) {
	token, err := inputs.GetInput(constants.InputToken, true)
	if err != nil {
		return
	}
	req, err := BuildRequest(invocation, inputs)
	if err != nil {
		return
	}

	client, err := newClient(token)
	if err != nil {
		return
	}
	log.WithFields(log.Fields{
		"repository":  req.Owner + "/" + req.Repo,
		"environment": req.Environment,
	}).Debug("requesting deployment")
	deployment, err := client.CreateDeployment(ctx, req)
	if err != nil {
		return
	}
	id = deployment.ID
	return
}

// BuildRequest resolves the deployment request from the step inputs
func BuildRequest(invocation *model.Context, inputs Inputs) (req *model.DeploymentRequest, err error) {
	environment, err := inputs.GetInput(constants.InputEnvironment, true)
	if err != nil {
		return
	}
	rawContexts, err := inputs.GetInput(constants.InputRequiredContexts, false)
	if err != nil {
		return
	}
	description, err := inputs.GetInput(constants.InputDescription, false)
	if err != nil {
		return
	}
	if description == "" {
		description = constants.DefaultDescription
	}

	repo, err := resolveRepo(invocation, inputs)
	if err != nil {
		return
	}

	req = &model.DeploymentRequest{
		Owner:            repo.Owner,
		Repo:             repo.Repo,
		Ref:              invocation.Ref,
		Environment:      environment,
		RequiredContexts: ParseRequiredContexts(rawContexts),
		Description:      description,
	}

	rawPayload, err := inputs.GetInput(constants.InputPayload, false)
	if err != nil {
		return nil, err
	}
	if rawPayload != "" {
		if err = json.Unmarshal([]byte(rawPayload), &req.Payload); err != nil {
			return nil, fmt.Errorf("payload is not valid JSON: %v", err)
		}
	}

	if req.Task, err = inputs.GetInput(constants.InputTask, false); err != nil {
		return nil, err
	}
	flags := []struct {
		input string
		dest  **bool
	}{
		{constants.InputAutoMerge, &req.AutoMerge},
		{constants.InputTransientEnvironment, &req.TransientEnvironment},
		{constants.InputProductionEnvironment, &req.ProductionEnvironment},
	}
	for _, f := range flags {
		if *f.dest, err = optionalBool(inputs, f.input); err != nil {
			return nil, err
		}
	}
	return
}

// ParseRequiredContexts splits a comma separated list, dropping blank entries.
// The result is never nil so that an empty list is sent rather than omitted.
func ParseRequiredContexts(raw string) []string {
	contexts := []string{}
	for _, rc := range strings.Split(raw, ",") {
		if rc = strings.TrimSpace(rc); rc != "" {
			contexts = append(contexts, rc)
		}
	}
	return contexts
}

// resolveRepo returns the repository input when set, the invocation's repository otherwise
func resolveRepo(invocation *model.Context, inputs Inputs) (model.Repo, error) {
	repository, err := inputs.GetInput(constants.InputRepository, false)
	if err != nil {
		return model.Repo{}, err
	}
	if repository == "" {
		return invocation.DefaultRepo()
	}
	return model.ParseRepo(repository)
}

// optionalBool reads a boolean input, nil when the input is empty
func optionalBool(inputs Inputs, name string) (*bool, error) {
	raw, err := inputs.GetInput(name, false)
	if err != nil || raw == "" {
		return nil, err
	}
	var b bool
	switch raw {
	case "true", "True", "TRUE":
		b = true
	case "false", "False", "FALSE":
		b = false
	default:
		return nil, fmt.Errorf("Input does not meet YAML 1.2 \"Core Schema\" specification: %s", name)
	}
	return &b, nil
}
