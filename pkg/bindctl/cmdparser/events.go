package cmdparser

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/bindstor/bindstor/pkg/bindctl/formatter"
	"github.com/bindstor/bindstor/pkg/bindctl/manager"
)

var events = &cobra.Command{
	Use:     "events",
	Args:    cobra.ExactArgs(0),
	Short:   "List the recent claim state transitions.",
	Long:    "List the recent claim state transitions recorded by the binder, oldest first.",
	Example: "bindctl events",
	RunE:    eventsRunE,
}

func eventsRunE(_ *cobra.Command, _ []string) error {
	eventList, err := manager.NewClient().ListEvents()
	if err != nil {
		return err
	}

	eventHeader := table.Row{"#", "Time", "Claim", "Volume", "From", "To", "Note"}
	eventRows := make([]table.Row, len(eventList.Events))
	for i, event := range eventList.Events {
		eventRows[i] = table.Row{i + 1, formatter.FormatTime(event.Time),
			event.Claim, event.Volume, event.From, event.To, event.Note}
	}

	formatter.PrintTable("Events", eventHeader, eventRows)
	return nil
}
