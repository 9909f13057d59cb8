package binding

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/bindstor/bindstor/pkg/bindctl/formatter"
	"github.com/bindstor/bindstor/pkg/bindctl/manager"
)

var bindingList = &cobra.Command{
	Use:     "list",
	Args:    cobra.ExactArgs(0),
	Short:   "List the Bindstor claim-volume bindings.",
	Long:    "You can use 'bindctl binding list' to obtain all the live bindings.",
	Example: "bindctl binding list",
	RunE:    bindingListRunE,
}

func bindingListRunE(_ *cobra.Command, _ []string) error {
	bindings, err := manager.NewClient().ListBindings()
	if err != nil {
		return err
	}

	bindingHeader := table.Row{"#", "Claim", "Volume", "CreateTime"}
	bindingRows := make([]table.Row, len(bindings.Bindings))
	for i, binding := range bindings.Bindings {
		bindingRows[i] = table.Row{i + 1, binding.ClaimName, binding.VolumeName,
			formatter.FormatTime(binding.CreateTime)}
	}

	formatter.PrintTable("Bindings", bindingHeader, bindingRows)
	return nil
}
