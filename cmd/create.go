package cmd

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/redbadger/create-deployment/actions"
	"github.com/redbadger/create-deployment/constants"
	"github.com/redbadger/create-deployment/deployment"
	gh "github.com/redbadger/create-deployment/github"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Request a deployment of the current commit",
	Long: `
Request a deployment of the current commit:

1. reads the step inputs (token, environment, requiredContexts, description, repository, payload, ...)
2. creates a deployment of GITHUB_REF in GITHUB_REPOSITORY (or the repository input)
3. sets the deployment_id output, or fails the step with the error returned by github
	`,
	Example: `create-deployment create --token=$GITHUB_TOKEN --environment=staging --requiredContexts=build,test`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		config := viper.GetViper()

		core := actions.NewCore(config, log.StandardLogger(), os.Stdout)
		invocation := actions.LoadContext(config, ".")
		apiURL := config.GetString(constants.APIURLEnvVar)

		newClient := func(token string) (deployment.Deployer, error) {
			client, err := gh.NewClient(ctx, apiURL, token)
			if err != nil {
				return nil, err
			}
			return client, nil
		}

		deployment.Run(ctx, invocation, newClient, core)
		if core.Failed() {
			os.Exit(1)
		}
	},
}

var inputFlags = []struct {
	name  string
	usage string
}{
	{constants.InputToken, "Github token used to create the deployment"},
	{constants.InputEnvironment, "Name of the environment to deploy to"},
	{constants.InputRequiredContexts, "Comma separated status contexts to verify against commit status checks"},
	{constants.InputDescription, "Short description of the deployment"},
	{constants.InputRepository, "Repository to deploy (owner/name), defaults to the repository running the workflow"},
	{constants.InputPayload, "JSON payload with extra information about the deployment"},
	{constants.InputTask, "Task to execute (e.g. deploy or deploy:migrations)"},
	{constants.InputAutoMerge, "Merge the default branch into the ref before deploying (true or false)"},
	{constants.InputTransientEnvironment, "Mark the environment as transient (true or false)"},
	{constants.InputProductionEnvironment, "Mark the environment as production (true or false)"},
}

func init() {
	rootCmd.AddCommand(createCmd)

	for _, f := range inputFlags {
		createCmd.Flags().String(f.name, "", f.usage)
		viper.BindPFlag(f.name, createCmd.Flags().Lookup(f.name))
	}

	createCmd.Flags().String("apiURL", constants.DefaultAPIURL, "Github API URL")
	viper.BindPFlag(constants.APIURLEnvVar, createCmd.Flags().Lookup("apiURL"))
}
