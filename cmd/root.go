package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/redbadger/create-deployment/actions"
	"github.com/redbadger/create-deployment/constants"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "create-deployment",
	Short: "Create a github deployment for a commit",
	Long: `
	Create-deployment requests a deployment of the commit that triggered a workflow run
	and reports the created deployment's id as the deployment_id step output.

	Inputs are read from the INPUT_<NAME> environment variables set by the runner,
	from flags, or from a config file.
	`,
	Version: constants.Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.create-deployment.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".create-deployment")
	}

	actions.ConfigureInputs(viper.GetViper())

	log.SetFormatter(&actions.CommandFormatter{})
	if debug || actions.DebugEnabled(viper.GetViper()) {
		log.SetLevel(log.DebugLevel)
	}

	if err := viper.ReadInConfig(); err == nil {
		log.WithField("file", viper.ConfigFileUsed()).Debug("using config file")
	}
}
