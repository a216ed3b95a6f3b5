package cmd

import (
	"context"
	"fmt"

	"github.com/prometheus/common/version"
	"github.com/spf13/cobra"

	"github.com/aws-samples/eks-notifier/internal/config"
	"github.com/aws-samples/eks-notifier/internal/log"
)

var (
	cfgFile string
	conf    *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "eks-notifier",
	Short:        "Notify about EKS clusters reaching end of support",
	SilenceUsage: true,
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
}

// setup parses the configuration and initializes the logger, it is shared by every command.
func setup(cmd *cobra.Command, _ []string) error {
	var err error

	conf, err = config.Parse(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to parse config %s: %w", cfgFile, err)
	}

	// Init logger
	err = log.Init(conf.Logs)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	logger := log.Logger()

	// Dump generic information
	logger.Info("Starting eks-notifier",
		"command", cmd.Name(),
		"version", version.Info(),
		"buildContext", version.BuildContext(),
	)
	logger.Info("Using config", "config", fmt.Sprintf("%+v", *conf))

	err = conf.Validate()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
