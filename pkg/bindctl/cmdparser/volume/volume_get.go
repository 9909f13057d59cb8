package volume

import (
	"github.com/spf13/cobra"

	"github.com/bindstor/bindstor/pkg/bindctl/formatter"
	"github.com/bindstor/bindstor/pkg/bindctl/manager"
)

var volumeGet = &cobra.Command{
	Use:     "get {volumeName}",
	Args:    cobra.ExactArgs(1),
	Short:   "Get the Bindstor volume's detail information.",
	Long:    "Get the Bindstor volume's detail information.",
	Example: "bindctl volume get vol-ssd-10g",
	RunE:    volumeGetRunE,
}

func volumeGetRunE(_ *cobra.Command, args []string) error {
	vol, err := manager.NewClient().GetVolume(args[0])
	if err != nil {
		return err
	}

	formatter.PrintParameters("Volume parameters", []formatter.Parameter{
		{Key: "Name", Value: vol.Name},
		{Key: "State", Value: vol.State},
		{Key: "Capacity", Value: formatter.FormatBytesToSize(vol.TotalCapacityBytes)},
		{Key: "AccessModes", Value: vol.AccessModes},
		{Key: "StorageClass", Value: vol.StorageClass},
		{Key: "BoundClaim", Value: vol.BoundClaim},
	})
	return nil
}
