package volume

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/bindstor/bindstor/pkg/bindctl/formatter"
	"github.com/bindstor/bindstor/pkg/bindctl/manager"
)

var volumeList = &cobra.Command{
	Use:     "list",
	Args:    cobra.ExactArgs(0),
	Short:   "List the Bindstor volumes.",
	Long:    "You can use 'bindctl volume list' to obtain information about all pool volumes.",
	Example: "bindctl volume list",
	RunE:    volumeListRunE,
}

func volumeListRunE(_ *cobra.Command, _ []string) error {
	volumes, err := manager.NewClient().ListVolumes()
	if err != nil {
		return err
	}

	volumeHeader := table.Row{"#", "Name", "Capacity", "AccessModes", "StorageClass", "State", "BoundClaim"}
	volumeRows := make([]table.Row, len(volumes.Volumes))
	for i, vol := range volumes.Volumes {
		volumeRows[i] = table.Row{i + 1, vol.Name, formatter.FormatBytesToSize(vol.TotalCapacityBytes),
			vol.AccessModes, vol.StorageClass, vol.State, vol.BoundClaim}
	}

	formatter.PrintTable("Volumes", volumeHeader, volumeRows)
	return nil
}
