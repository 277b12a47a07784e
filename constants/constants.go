package constants

const (
	// Version is the application version reported by `create-deployment version` and `create-deployment --version`
	Version = "1.0.0"

	// DefaultDescription is used when the description input is empty
	DefaultDescription = "Deployed as a result of a code change"
	// DefaultAPIURL is the public github API root
	DefaultAPIURL = "https://api.github.com"

	// RefEnvVar holds the ref that triggered the workflow run
	RefEnvVar = "GITHUB_REF"
	// RepositoryEnvVar holds the owner/name of the repository running the workflow
	RepositoryEnvVar = "GITHUB_REPOSITORY"
	// APIURLEnvVar holds the API root of the github instance running the workflow
	APIURLEnvVar = "GITHUB_API_URL"
	// OutputEnvVar holds the path of the file that step outputs are appended to
	OutputEnvVar = "GITHUB_OUTPUT"
	// RunnerDebugEnvVar is set to 1 when debug logging is enabled for the run
	RunnerDebugEnvVar = "RUNNER_DEBUG"
	// StepDebugEnvVar is the secret that enables step debug logging
	StepDebugEnvVar = "ACTIONS_STEP_DEBUG"

	// InputEnvPrefix is prepended (with an underscore) to the upper cased input name by the runner
	InputEnvPrefix = "INPUT"
)

// Inputs read by the create command
const (
	InputToken                 = "token"
	InputEnvironment           = "environment"
	InputRequiredContexts      = "requiredContexts"
	InputDescription           = "description"
	InputRepository            = "repository"
	InputPayload               = "payload"
	InputTask                  = "task"
	InputAutoMerge             = "autoMerge"
	InputTransientEnvironment  = "transientEnvironment"
	InputProductionEnvironment = "productionEnvironment"
)

// OutputDeploymentID is the name of the step output carrying the created deployment's id
const OutputDeploymentID = "deployment_id"
