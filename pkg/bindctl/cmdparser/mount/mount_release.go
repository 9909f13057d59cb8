package mount

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bindstor/bindstor/pkg/bindctl/manager"
)

var mountRelease = &cobra.Command{
	Use:     "release {mountID}",
	Args:    cobra.ExactArgs(1),
	Short:   "Release a mount handle.",
	Long:    "Release a mount handle. Releasing an unknown handle is a no-op.",
	Example: "bindctl mount release 9f2d1c3a-5b6e-4d7f-8a9b-0c1d2e3f4a5b",
	RunE:    mountReleaseRunE,
}

func mountReleaseRunE(_ *cobra.Command, args []string) error {
	if err := manager.NewClient().ReleaseMount(args[0]); err != nil {
		return err
	}
	fmt.Printf("Mount %s released\n", args[0])
	return nil
}
