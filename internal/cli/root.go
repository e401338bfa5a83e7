// Package cli implements the ytpilot command-line interface.
package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ytpilot/config"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "ytpilot",
	Short: "ytpilot - YouTube comment collection and dictionary coding",
	Long: `ytpilot collects YouTube comments through the Data API, stores them in
SQLite/CSV, and applies a deterministic dictionary labeler that codes each
comment into sociological categories (voting intention, efficacy, cynicism,
normative appeal, information seeking, mobilization).

The labeler is a rule engine, not a classifier: every prediction comes with
a trace of the priority rules that fired, so coding runs are auditable and
reproducible.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("ytpilot v0.3.0")
	},
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./ytpilot.yaml or ~/.config/ytpilot/ytpilot.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(versionCmd)
}

func initLogging() {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}

// loadConfig reads the effective configuration for a command.
func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}
