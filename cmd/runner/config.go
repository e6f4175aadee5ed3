package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the runner configuration",
	Long: `Print the embedded default configuration as YAML.

Save it, edit it and pass it back with --config. Config files are looked
up in this order: --config path, ~/.runner/configs/runner.yaml,
./configs/runner.yaml, then the embedded defaults.

With --resolved the configuration that would actually be used is printed.

Examples:
  runner config > my-runner.yaml
  runner config --resolved --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if !flagResolved {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, source, err := config.LoadRunnerFrom(flagConfig)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: cannot encode: %w", err)
	}
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
