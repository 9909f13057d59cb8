package mount

import (
	"github.com/spf13/cobra"
)

var Mount = &cobra.Command{
	Use:   "mount",
	Args:  cobra.ExactArgs(0),
	Short: "Manage the Bindstor's mount handles.",
	Long: "Manage the Bindstor's mount handles. A mount handle attaches a bound\n" +
		"claim's volume to a workload at a path. Requesting the same mount\n" +
		"twice returns the same handle.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// root cmd will show help only
		return cmd.Help()
	},
}

func init() {
	// Mount sub commands
	Mount.AddCommand(mountList, mountRequest, mountRelease)
}
