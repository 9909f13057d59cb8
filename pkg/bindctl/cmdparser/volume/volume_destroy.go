package volume

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bindstor/bindstor/pkg/bindctl/manager"
)

var volumeDestroy = &cobra.Command{
	Use:     "destroy {volumeName}",
	Args:    cobra.ExactArgs(1),
	Short:   "Destroy a volume even while it is bound.",
	Long:    "Destroy a volume even while it is bound. The claim bound to it\n" + "becomes Lost and must be released by its owner.",
	Example: "bindctl volume destroy vol-ssd-10g",
	RunE:    volumeDestroyRunE,
}

func volumeDestroyRunE(_ *cobra.Command, args []string) error {
	if err := manager.NewClient().DestroyVolume(args[0]); err != nil {
		return err
	}
	fmt.Printf("Volume %s destroyed\n", args[0])
	return nil
}
