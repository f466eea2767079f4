// Package occcmder
package occcmder

import (
	"github.com/spf13/cobra"

	chatcmder "github.com/jivsocc/commandcenter/cmd/occ/chat"
	configcmder "github.com/jivsocc/commandcenter/cmd/occ/config"
	servecmder "github.com/jivsocc/commandcenter/cmd/occ/serve"
	versioncmder "github.com/jivsocc/commandcenter/cmd/version"
)

const occLongDesc string = `occ is the migration command center for SAP-to-S/4HANA operations.

Run the dashboard backend using:
  occ serve            Run the API, chat, and MCP server
  occ chat             Chat with the migration data assistant
  occ config           Manage persistent configuration`

const occShortDesc string = "occ - Migration Command Center"

func NewOccCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "occ",
		Short: occShortDesc,
		Long:  occLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Directory holding config.toml (default: ./.occ or ~/.occ)")

	// Add subcommands
	cmd.AddCommand(servecmder.NewServeCmd())
	cmd.AddCommand(chatcmder.NewChatCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
