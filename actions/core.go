package actions

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/redbadger/create-deployment/constants"
)

// Core is the interface to the GitHub Actions runner: it reads step inputs
// and reports logs, outputs and failure back to the workflow.
type Core struct {
	config *viper.Viper
	logger *log.Logger
	out    io.Writer
	failed bool
}

// NewCore creates a Core reading inputs from config and writing
// commands to out through logger
func NewCore(config *viper.Viper, logger *log.Logger, out io.Writer) *Core {
	logger.Out = out
	logger.Formatter = &CommandFormatter{}
	if DebugEnabled(config) {
		logger.SetLevel(log.DebugLevel)
	}
	return &Core{config: config, logger: logger, out: out}
}

// Info writes msg to the step log
func (c *Core) Info(msg string) {
	c.logger.Info(msg)
}

// SetOutput sets a step output. Outputs go to the GITHUB_OUTPUT file when the
// runner provides one, and to the deprecated set-output command otherwise.
func (c *Core) SetOutput(name, value string) {
	if path := c.config.GetString(constants.OutputEnvVar); path != "" {
		err := appendOutput(path, name, value)
		if err == nil {
			return
		}
		c.logger.WithError(err).Warn("writing output file, falling back to set-output")
	}
	fmt.Fprintln(c.out, command("set-output", map[string]string{"name": name}, value))
}

// SetFailed logs msg as an error and marks the step as failed
func (c *Core) SetFailed(msg string) {
	c.failed = true
	c.logger.Error(msg)
}

// Failed reports whether SetFailed has been called
func (c *Core) Failed() bool {
	return c.failed
}

func appendOutput(path, name, value string) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("cannot open output file %s: %v", path, err)
	}
	defer f.Close()

	delimiter := "ghadelimiter_" + uuid.New().String()
	_, err = fmt.Fprintf(f, "%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)
	if err != nil {
		return fmt.Errorf("cannot write output file %s: %v", path, err)
	}
	return
}
