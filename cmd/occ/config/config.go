// Package configcmder provides the config command for managing persistent
// occ configuration stored in the .occ/ directory.
package configcmder

import (
	"github.com/spf13/cobra"
)

const configLongDesc string = `Manage persistent occ configuration.

Configuration is stored as config.toml in the .occ/ directory and provides
default values for command flags. CLI flags always take precedence over
config file values.

Keys use dotted notation matching the TOML section structure:
  api.listen,
  gemini.api_key, gemini.model, gemini.base_url,
  client.api_target,
  log.json, log.file

Use subcommands to get, set, or list configuration values:
  occ config set <key> <value>    Set a configuration value
  occ config get <key>            Get a configuration value
  occ config list                 List all configuration values

Examples:
  occ config set gemini.model gemini-2.5-flash
  occ config set api.listen :9090
  occ config get gemini.model
  occ config list`

const configShortDesc string = "Manage persistent occ configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}
