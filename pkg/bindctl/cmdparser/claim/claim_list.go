package claim

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/bindstor/bindstor/pkg/bindctl/formatter"
	"github.com/bindstor/bindstor/pkg/bindctl/manager"
)

var claimList = &cobra.Command{
	Use:     "list",
	Args:    cobra.ExactArgs(0),
	Short:   "List the Bindstor claims.",
	Long:    "You can use 'bindctl claim list' to obtain information about all registered claims.",
	Example: "bindctl claim list",
	RunE:    claimListRunE,
}

func claimListRunE(_ *cobra.Command, _ []string) error {
	claims, err := manager.NewClient().ListClaims()
	if err != nil {
		return err
	}

	claimHeader := table.Row{"#", "Name", "RequiredCapacity", "AccessMode", "StorageClass", "State", "BoundVolume"}
	claimRows := make([]table.Row, len(claims.Claims))
	for i, claim := range claims.Claims {
		claimRows[i] = table.Row{i + 1, claim.Name, formatter.FormatBytesToSize(claim.RequiredCapacityBytes),
			claim.AccessMode, claim.StorageClass, claim.State, claim.BoundVolume}
	}

	formatter.PrintTable("Claims", claimHeader, claimRows)
	return nil
}
