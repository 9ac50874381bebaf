package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aadhaar-sanket/sanket/internal/audit"
)

var freezeCmd = &cobra.Command{
	Use:   "freeze [district]",
	Short: "Acknowledge an operator freeze for a district",
	Long: `Print the operator freeze acknowledgment for a district.

Nothing is sent anywhere; this is the same local acknowledgment the dashboard
shows. Without a district the configured dashboard.freeze_district is used.

Examples:
  sanket freeze
  sanket freeze "Imphal West"`,
	RunE: runFreeze,
}

func init() {
	rootCmd.AddCommand(freezeCmd)
}

func runFreeze(cmd *cobra.Command, args []string) error {
	district := strings.TrimSpace(strings.Join(args, " "))
	if district == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		district = cfg.Dashboard.FreezeDistrict
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), audit.Acknowledge(district))
	return err
}
