package claim

import (
	"github.com/spf13/cobra"

	"github.com/bindstor/bindstor/pkg/bindctl/formatter"
	"github.com/bindstor/bindstor/pkg/bindctl/manager"
)

var claimGet = &cobra.Command{
	Use:     "get {claimName}",
	Args:    cobra.ExactArgs(1),
	Short:   "Get the Bindstor claim's detail information.",
	Long:    "Get the Bindstor claim's detail information.",
	Example: "bindctl claim get data-claim",
	RunE:    claimGetRunE,
}

func claimGetRunE(_ *cobra.Command, args []string) error {
	claim, err := manager.NewClient().GetClaim(args[0])
	if err != nil {
		return err
	}

	formatter.PrintParameters("Claim parameters", []formatter.Parameter{
		{Key: "Name", Value: claim.Name},
		{Key: "State", Value: claim.State},
		{Key: "RequiredCapacity", Value: formatter.FormatBytesToSize(claim.RequiredCapacityBytes)},
		{Key: "AccessMode", Value: claim.AccessMode},
		{Key: "StorageClass", Value: claim.StorageClass},
		{Key: "BoundVolume", Value: claim.BoundVolume},
	})
	return nil
}
