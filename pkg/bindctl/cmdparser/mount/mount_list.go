package mount

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/bindstor/bindstor/pkg/bindctl/formatter"
	"github.com/bindstor/bindstor/pkg/bindctl/manager"
)

var mountList = &cobra.Command{
	Use:     "list",
	Args:    cobra.ExactArgs(0),
	Short:   "List the Bindstor mount handles.",
	Long:    "You can use 'bindctl mount list' to obtain all the live mount handles.",
	Example: "bindctl mount list",
	RunE:    mountListRunE,
}

func mountListRunE(_ *cobra.Command, _ []string) error {
	mounts, err := manager.NewClient().ListMounts()
	if err != nil {
		return err
	}

	mountHeader := table.Row{"#", "ID", "Workload", "Claim", "Path", "Volume"}
	mountRows := make([]table.Row, len(mounts.Mounts))
	for i, m := range mounts.Mounts {
		mountRows[i] = table.Row{i + 1, m.ID, m.Workload, m.ClaimName, m.MountPath, m.VolumeName}
	}

	formatter.PrintTable("Mounts", mountHeader, mountRows)
	return nil
}
