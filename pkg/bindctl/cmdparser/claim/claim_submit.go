package claim

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apisv1alpha1 "github.com/bindstor/bindstor/pkg/apis/bindstor/v1alpha1"
	"github.com/bindstor/bindstor/pkg/bindctl/manager"
)

var claimSubmitStorage string
var claimSubmitAccessMode string
var claimSubmitStorageClass string
var claimSubmitFile string

var claimSubmit = &cobra.Command{
	Use:   "submit {claimName}",
	Args:  cobra.ExactArgs(1),
	Short: "Submit a claim and attempt an immediate bind.",
	Long: "Submit a claim and attempt an immediate bind. A Pending answer means\n" +
		"no compatible volume is free yet, the binder retries as the pool changes.\n" +
		"The descriptor can also be read from a JSON or YAML file with --file.",
	Example: "bindctl claim submit data-claim --storage 1Gi --access-mode ReadWriteOnce",
	RunE:    claimSubmitRunE,
}

func init() {
	claimSubmit.Flags().StringVar(&claimSubmitStorage, "storage", "", "The requested storage, e.g. 1Gi")
	claimSubmit.Flags().StringVar(&claimSubmitAccessMode, "access-mode", string(apisv1alpha1.ReadWriteOnce), "The requested access mode")
	claimSubmit.Flags().StringVar(&claimSubmitStorageClass, "storage-class", "", "Restrict eligible volumes to a storage class")
	claimSubmit.Flags().StringVar(&claimSubmitFile, "file", "", "Read the claim descriptor from a JSON or YAML file")
}

func claimSubmitRunE(_ *cobra.Command, args []string) error {
	var desc *apisv1alpha1.ClaimDescriptor
	if claimSubmitFile != "" {
		data, err := os.ReadFile(claimSubmitFile)
		if err != nil {
			return err
		}
		desc, err = apisv1alpha1.DecodeClaimDescriptor(data)
		if err != nil {
			return err
		}
	} else {
		desc = &apisv1alpha1.ClaimDescriptor{
			AccessModes:      []apisv1alpha1.AccessMode{apisv1alpha1.AccessMode(claimSubmitAccessMode)},
			RequestedStorage: claimSubmitStorage,
		}
		if claimSubmitStorageClass != "" {
			desc.StorageClass = &claimSubmitStorageClass
		}
	}

	rsp, err := manager.NewClient().SubmitClaim(args[0], *desc)
	if err != nil {
		return err
	}
	fmt.Printf("Claim %s submitted, state: %s\n", rsp.Name, rsp.State)
	return nil
}
