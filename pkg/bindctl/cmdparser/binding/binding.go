package binding

import (
	"github.com/spf13/cobra"
)

var Binding = &cobra.Command{
	Use:   "binding",
	Args:  cobra.ExactArgs(0),
	Short: "Inspect the Bindstor's claim-volume bindings.",
	Long:  "Inspect the live claim-volume bindings maintained by the binder.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// root cmd will show help only
		return cmd.Help()
	},
}

func init() {
	// Binding sub commands
	Binding.AddCommand(bindingList)
}
