package volume

import (
	"github.com/spf13/cobra"
)

var Volume = &cobra.Command{
	Use:   "volume",
	Args:  cobra.ExactArgs(0),
	Short: "Manage the Bindstor's volumes.",
	Long: "Manage the Bindstor's volumes. A volume is a fixed-capacity unit of\n" +
		"storage registered into the pool. The binder reserves volumes for\n" +
		"compatible claims and releases them when the claims go away.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// root cmd will show help only
		return cmd.Help()
	},
}

func init() {
	// Volume sub commands
	Volume.AddCommand(volumeGet, volumeList, volumeAdd, volumeRemove, volumeDestroy)
}
