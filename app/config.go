package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/superior-limousine/website/internal/config"
)

func init() { //nolint:gochecknoinits
	configCmd.Flags().BoolVar(&dumpJSON, "json", false, "print the config as JSON instead of TOML")

	rootCmd.AddCommand(configCmd)
}

var (
	dumpJSON bool

	configCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "config",
		Short: "Print the effective configuration including defaults and env overrides",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := config.ReadConfig(configPath)
			if err != nil {
				return err //nolint:wrapcheck
			}

			dump := config.DumpConfig
			if dumpJSON {
				dump = config.DumpConfigJSON
			}

			out, err := dump(&c)
			if err != nil {
				return err //nolint:wrapcheck
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err //nolint:wrapcheck
		},
	}
)
