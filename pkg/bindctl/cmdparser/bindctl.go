package cmdparser

import (
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bindstor/bindstor/pkg/bindctl/cmdparser/binding"
	"github.com/bindstor/bindstor/pkg/bindctl/cmdparser/claim"
	"github.com/bindstor/bindstor/pkg/bindctl/cmdparser/definitions"
	"github.com/bindstor/bindstor/pkg/bindctl/cmdparser/mount"
	"github.com/bindstor/bindstor/pkg/bindctl/cmdparser/volume"
)

var Bindctl = &cobra.Command{
	Use:   "bindctl",
	Args:  cobra.ExactArgs(0),
	Short: "Bindctl is the command-line tool for Bindstor.",
	Long: "Bindctl is a tool that can manage the Bindstor volumes, claims,\n" +
		"bindings and mount handles through the Bindstor apiserver.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Root cmd will show help only
		return cmd.Help()
	},
}

func init() {
	// Bindctl flags
	Bindctl.PersistentFlags().BoolVar(&definitions.Debug, "debug", false, "Enable debug mode")
	Bindctl.PersistentFlags().StringVar(&definitions.ServerAddress, "server", definitions.DefaultServerAddress, "Specify the bindstor apiserver address")
	Bindctl.PersistentFlags().DurationVar(&definitions.Timeout, "timeout", 3*time.Second, "Set the request timeout")

	// Sub commands
	Bindctl.AddCommand(volume.Volume, claim.Claim, binding.Binding, mount.Mount, events)

	// Disable debug mode
	if !definitions.Debug {
		log.SetOutput(io.Discard)
	}
}
