package volume

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bindstor/bindstor/pkg/bindctl/manager"
)

var volumeRemove = &cobra.Command{
	Use:     "remove {volumeName}",
	Args:    cobra.ExactArgs(1),
	Short:   "Remove an unbound volume from the Bindstor pool.",
	Long:    "Remove an unbound volume from the Bindstor pool. A bound volume cannot\n" + "be removed, release its claim first or use 'volume destroy'.",
	Example: "bindctl volume remove vol-ssd-10g",
	RunE:    volumeRemoveRunE,
}

func volumeRemoveRunE(_ *cobra.Command, args []string) error {
	if err := manager.NewClient().ReleaseVolume(args[0]); err != nil {
		return err
	}
	fmt.Printf("Volume %s removed\n", args[0])
	return nil
}
