package cli

import (
	"web-audit-kit/internal/logging"
	"web-audit-kit/internal/routes"

	"github.com/spf13/cobra"
)

// NewRouteInventoryCommand route-inventory 명령 생성
func NewRouteInventoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "route-inventory",
		Short: "Print the app/[locale] route groups and their pages as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(false)
			defer log.Sync()

			b := &routes.Builder{Root: ".", Log: log}
			inv, err := b.Build()
			if err != nil {
				return err
			}
			return routes.WriteJSON(cmd.OutOrStdout(), inv)
		},
	}
}
