package actions

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/redbadger/create-deployment/constants"
)

// ConfigureInputs makes v resolve input keys from the INPUT_<NAME> environment
// variables the runner exports, and binds the runner's context variables.
func ConfigureInputs(v *viper.Viper) {
	v.SetEnvPrefix(constants.InputEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(" ", "_"))
	v.AutomaticEnv()

	for _, env := range []string{
		constants.RefEnvVar,
		constants.RepositoryEnvVar,
		constants.APIURLEnvVar,
		constants.OutputEnvVar,
		constants.RunnerDebugEnvVar,
		constants.StepDebugEnvVar,
	} {
		v.BindEnv(env, env)
	}
}

// GetInput returns the trimmed value of the named input
func (c *Core) GetInput(name string, required bool) (string, error) {
	value := strings.TrimSpace(c.config.GetString(name))
	if required && value == "" {
		return "", fmt.Errorf("Input required and not supplied: %s", name)
	}
	return value, nil
}

// DebugEnabled reports whether the runner asked for debug logging
func DebugEnabled(v *viper.Viper) bool {
	return v.GetString(constants.RunnerDebugEnvVar) == "1" ||
		strings.EqualFold(v.GetString(constants.StepDebugEnvVar), "true")
}
