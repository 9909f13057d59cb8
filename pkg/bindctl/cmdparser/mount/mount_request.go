package mount

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	apisv1alpha1 "github.com/bindstor/bindstor/pkg/apis/bindstor/v1alpha1"
	"github.com/bindstor/bindstor/pkg/bindctl/formatter"
	"github.com/bindstor/bindstor/pkg/bindctl/manager"
)

var mountRequestClaim string
var mountRequestPath string
var mountRequestFile string

var mountRequest = &cobra.Command{
	Use:   "request {workloadName}",
	Args:  cobra.ExactArgs(1),
	Short: "Request mount handles for a workload.",
	Long: "Request mount handles for a workload, all-or-none. A single mount is\n" +
		"given by --claim and --path, multiple mounts by a JSON or YAML\n" +
		"workload descriptor file with --file.",
	Example: "bindctl mount request web-server --claim data-claim --path /var/lib/data",
	RunE:    mountRequestRunE,
}

func init() {
	mountRequest.Flags().StringVar(&mountRequestClaim, "claim", "", "The claim to mount")
	mountRequest.Flags().StringVar(&mountRequestPath, "path", "", "The mount path inside the workload")
	mountRequest.Flags().StringVar(&mountRequestFile, "file", "", "Read the workload descriptor from a JSON or YAML file")
}

func mountRequestRunE(_ *cobra.Command, args []string) error {
	var desc *apisv1alpha1.WorkloadDescriptor
	if mountRequestFile != "" {
		data, err := os.ReadFile(mountRequestFile)
		if err != nil {
			return err
		}
		desc, err = apisv1alpha1.DecodeWorkloadDescriptor(data)
		if err != nil {
			return err
		}
	} else {
		desc = &apisv1alpha1.WorkloadDescriptor{
			Mounts: []apisv1alpha1.WorkloadMount{{VolumeRef: mountRequestClaim, Path: mountRequestPath}},
		}
	}

	mounts, err := manager.NewClient().RequestWorkloadMounts(args[0], *desc)
	if err != nil {
		return err
	}

	mountHeader := table.Row{"#", "ID", "Claim", "Path", "Volume"}
	mountRows := make([]table.Row, len(mounts.Mounts))
	for i, m := range mounts.Mounts {
		mountRows[i] = table.Row{i + 1, m.ID, m.ClaimName, m.MountPath, m.VolumeName}
	}

	formatter.PrintTable("Issued mounts", mountHeader, mountRows)
	return nil
}
