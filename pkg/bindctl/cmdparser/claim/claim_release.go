package claim

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bindstor/bindstor/pkg/bindctl/manager"
)

var claimRelease = &cobra.Command{
	Use:   "release {claimName}",
	Args:  cobra.ExactArgs(1),
	Short: "Release a claim and free its volume.",
	Long: "Release a claim and free its volume. A mounted claim cannot be\n" +
		"released, release its mount handles first.",
	Example: "bindctl claim release data-claim",
	RunE:    claimReleaseRunE,
}

func claimReleaseRunE(_ *cobra.Command, args []string) error {
	if err := manager.NewClient().ReleaseClaim(args[0]); err != nil {
		return err
	}
	fmt.Printf("Claim %s released\n", args[0])
	return nil
}
