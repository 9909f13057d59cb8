package claim

import (
	"github.com/spf13/cobra"
)

var Claim = &cobra.Command{
	Use:   "claim",
	Args:  cobra.ExactArgs(0),
	Short: "Manage the Bindstor's claims.",
	Long: "Manage the Bindstor's claims. A claim requests storage capacity with\n" +
		"access-mode constraints. The binder pairs each claim with a compatible\n" +
		"pool volume, a claim stays Pending while no volume fits.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// root cmd will show help only
		return cmd.Help()
	},
}

func init() {
	// Claim sub commands
	Claim.AddCommand(claimGet, claimList, claimSubmit, claimRelease)
}
