package volume

import (
	"github.com/spf13/cobra"

	apisv1alpha1 "github.com/bindstor/bindstor/pkg/apis/bindstor/v1alpha1"
	"github.com/bindstor/bindstor/pkg/bindctl/formatter"
	"github.com/bindstor/bindstor/pkg/bindctl/manager"
)

var volumeAddCapacity string
var volumeAddAccessModes []string
var volumeAddStorageClass string

var volumeAdd = &cobra.Command{
	Use:     "add {volumeName}",
	Args:    cobra.ExactArgs(1),
	Short:   "Register a volume into the Bindstor pool.",
	Long:    "Register a volume into the Bindstor pool. The capacity accepts the\n" + "quantity grammar, e.g. 1Gi, 500Mi, 2Ti.",
	Example: "bindctl volume add vol-ssd-10g --capacity 10Gi --access-mode ReadWriteOnce --storage-class fast-local",
	RunE:    volumeAddRunE,
}

func init() {
	volumeAdd.Flags().StringVar(&volumeAddCapacity, "capacity", "", "The volume's capacity, e.g. 10Gi")
	volumeAdd.Flags().StringSliceVar(&volumeAddAccessModes, "access-mode", []string{string(apisv1alpha1.ReadWriteOnce)}, "The volume's access modes")
	volumeAdd.Flags().StringVar(&volumeAddStorageClass, "storage-class", "", "The volume's storage class label")
	_ = volumeAdd.MarkFlagRequired("capacity")
}

func volumeAddRunE(_ *cobra.Command, args []string) error {
	desc := apisv1alpha1.VolumeDescriptor{
		Capacity:     volumeAddCapacity,
		StorageClass: volumeAddStorageClass,
	}
	for _, mode := range volumeAddAccessModes {
		desc.AccessModes = append(desc.AccessModes, apisv1alpha1.AccessMode(mode))
	}

	vol, err := manager.NewClient().RegisterVolume(args[0], desc)
	if err != nil {
		return err
	}

	formatter.PrintParameters("Registered volume", []formatter.Parameter{
		{Key: "Name", Value: vol.Name},
		{Key: "State", Value: vol.State},
		{Key: "Capacity", Value: formatter.FormatBytesToSize(vol.TotalCapacityBytes)},
		{Key: "AccessModes", Value: vol.AccessModes},
		{Key: "StorageClass", Value: vol.StorageClass},
	})
	return nil
}
