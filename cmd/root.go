package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jspark.dev/internal/config"
)

var cfgFile string
var appConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "site",
	Short: "Content and data layer for jspark.dev",
	Long: `site manages the content behind a personal website: a project
registry defined in data/projects.json and Markdown articles with
YAML front matter under content/. It can serve the data as a
read-only JSON API or build a static snapshot of it.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		appConfig, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}
